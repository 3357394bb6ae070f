package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasmith/printtables/internal/model"
)

func TestViewResolvesNamesInOrder(t *testing.T) {
	t.Parallel()

	r := NewRepository()
	ctx := context.Background()

	bolt := &model.Part{ID: uuid.New(), Name: model.RestoreName("M3 Bolt")}
	require.NoError(t, r.Insert(ctx, bolt))

	p := &model.Project{ID: uuid.New(), Name: model.RestoreName("Desk Organizer"), CreatedAt: time.Now()}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	dangling := uuid.New()
	p.DefineParts([]model.ProjectPart{
		{PartID: dangling, Quantity: 1},
		{PartID: bolt.ID, Quantity: 12},
	})
	require.NoError(t, r.Update(ctx, p))

	view, err := r.ViewByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ProjectPartView{
		{PartID: dangling, Name: "", Quantity: 1},
		{PartID: bolt.ID, Name: "M3 Bolt", Quantity: 12},
	}, view.Parts)
}

func TestUpdateRejectsDuplicatesAndKeepsBOM(t *testing.T) {
	t.Parallel()

	r := NewRepository()
	ctx := context.Background()
	partID := uuid.New()

	p := &model.Project{ID: uuid.New(), Name: model.RestoreName("Desk Organizer")}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	p.DefineParts([]model.ProjectPart{{PartID: partID, Quantity: 12}})
	require.NoError(t, r.Update(ctx, p))

	p.DefineParts([]model.ProjectPart{{PartID: partID, Quantity: 1}, {PartID: partID, Quantity: 2}})
	require.Error(t, r.Update(ctx, p))

	got, err := r.ProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ProjectPart{{PartID: partID, Quantity: 12}}, got.Parts)
}

func TestStoredProjectIsNotAliased(t *testing.T) {
	t.Parallel()

	r := NewRepository()
	ctx := context.Background()

	p := &model.Project{ID: uuid.New(), Name: model.RestoreName("Desk Organizer")}
	p.DefineParts([]model.ProjectPart{{PartID: uuid.New(), Quantity: 1}})
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	p.Parts[0].Quantity = 100

	got, err := r.ProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.Parts[0].Quantity)
}

func TestMissingEntities(t *testing.T) {
	t.Parallel()

	r := NewRepository()
	ctx := context.Background()

	part, err := r.PartByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, part)

	view, err := r.ViewByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, view)

	err = r.Update(ctx, &model.Project{ID: uuid.New()})
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestConcurrentReplaceIsAtomicForReaders(t *testing.T) {
	t.Parallel()

	r := NewRepository()
	ctx := context.Background()

	p := &model.Project{ID: uuid.New(), Name: model.RestoreName("Desk Organizer")}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	boms := [][]model.ProjectPart{
		{{PartID: uuid.New(), Quantity: 1}, {PartID: uuid.New(), Quantity: 1}},
		{{PartID: uuid.New(), Quantity: 2}, {PartID: uuid.New(), Quantity: 2}, {PartID: uuid.New(), Quantity: 2}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(bom []model.ProjectPart) {
			defer wg.Done()
			upd := &model.Project{ID: p.ID, Name: p.Name}
			upd.DefineParts(bom)
			assert.NoError(t, r.Update(ctx, upd))
		}(boms[i%2])
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := r.ViewByID(ctx, p.ID)
			if !assert.NoError(t, err) {
				return
			}
			// Every line of a snapshot comes from the same BOM.
			if len(view.Parts) > 0 {
				for _, line := range view.Parts {
					assert.Equal(t, view.Parts[0].Quantity, line.Quantity)
				}
				assert.Equal(t, int(view.Parts[0].Quantity)+1, len(view.Parts))
			}
		}()
	}
	wg.Wait()
}
