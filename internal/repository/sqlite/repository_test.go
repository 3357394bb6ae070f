package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/migrations"
	"github.com/dimasmith/printtables/platform/db/migrator"
)

func newTestRepository(t *testing.T) *repository {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrator.NewMigrator(db, goose.DialectSQLite3, migrations.SQLite()).Up(ctx)
	require.NoError(t, err)

	return NewRepository(db)
}

func insertPart(t *testing.T, r *repository, raw string) *model.Part {
	t.Helper()

	name, err := model.ParsePartName(raw)
	require.NoError(t, err)
	part, err := model.NewPart(name)
	require.NoError(t, err)
	require.NoError(t, r.Insert(context.Background(), part))
	return part
}

func createProject(t *testing.T, r *repository, raw string) *model.Project {
	t.Helper()

	name, err := model.ParseProjectName(raw)
	require.NoError(t, err)
	p, err := model.NewProject(name, time.Now())
	require.NoError(t, err)
	id, err := r.Create(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, p.ID, id)
	return p
}

func TestPartRoundTrip(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)
	ctx := context.Background()
	raw := gofakeit.ProductName()

	part := insertPart(t, r, raw)

	got, err := r.PartByID(ctx, part.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, part.ID, got.ID)
	assert.Equal(t, part.Name.String(), got.Name.String())

	missing, err := r.PartByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectCreateHasEmptyBOM(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)
	ctx := context.Background()

	p := createProject(t, r, "Desk Organizer")

	got, err := r.ProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Desk Organizer", got.Name.String())
	assert.Equal(t, p.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
	assert.Empty(t, got.Parts)

	view, err := r.ViewByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, p.ID, view.ID)
	assert.Equal(t, "Desk Organizer", view.Name)
	assert.Empty(t, view.Parts)
}

func TestUpdateReplacesBOM(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)
	ctx := context.Background()

	bolt := insertPart(t, r, "M3 Bolt")
	nut := insertPart(t, r, "M3 Nut")
	dangling := uuid.New()
	p := createProject(t, r, "Desk Organizer")

	p.DefineParts([]model.ProjectPart{
		{PartID: nut.ID, Quantity: 4},
		{PartID: dangling, Quantity: 0},
		{PartID: bolt.ID, Quantity: 12},
	})
	require.NoError(t, r.Update(ctx, p))

	view, err := r.ViewByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ProjectPartView{
		{PartID: nut.ID, Name: "M3 Nut", Quantity: 4},
		{PartID: dangling, Name: "", Quantity: 0},
		{PartID: bolt.ID, Name: "M3 Bolt", Quantity: 12},
	}, view.Parts)

	p.DefineParts([]model.ProjectPart{{PartID: bolt.ID, Quantity: 4294967295}})
	require.NoError(t, r.Update(ctx, p))

	got, err := r.ProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ProjectPart{{PartID: bolt.ID, Quantity: 4294967295}}, got.Parts)
}

func TestUpdateKeepsPreviousBOMWhenInsertFails(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)
	ctx := context.Background()

	bolt := insertPart(t, r, "M3 Bolt")
	p := createProject(t, r, "Desk Organizer")

	p.DefineParts([]model.ProjectPart{{PartID: bolt.ID, Quantity: 12}})
	require.NoError(t, r.Update(ctx, p))

	// The second row violates the (project_id, part_id) key after the delete ran.
	p.Name = model.RestoreName("Renamed")
	p.DefineParts([]model.ProjectPart{
		{PartID: bolt.ID, Quantity: 1},
		{PartID: bolt.ID, Quantity: 2},
	})
	require.Error(t, r.Update(ctx, p))

	view, err := r.ViewByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Organizer", view.Name)
	assert.Equal(t, []model.ProjectPartView{
		{PartID: bolt.ID, Name: "M3 Bolt", Quantity: 12},
	}, view.Parts)
}

func TestUpdateMissingProject(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)

	name, err := model.ParseProjectName("Ghost")
	require.NoError(t, err)
	ghost, err := model.NewProject(name, time.Now())
	require.NoError(t, err)

	err = r.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}

func TestMissingProjectReadsAsNil(t *testing.T) {
	t.Parallel()

	r := newTestRepository(t)
	ctx := context.Background()

	p, err := r.ProjectByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, p)

	view, err := r.ViewByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, view)
}
