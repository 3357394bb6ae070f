//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pressly/goose/v3"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/migrations"
	"github.com/dimasmith/printtables/platform/db/migrator"
	"github.com/dimasmith/printtables/platform/logger"
	pgtc "github.com/dimasmith/printtables/platform/testcontainers/postgres"
)

var (
	ctx context.Context

	pgC  *pgtc.Container
	pool *pgxpool.Pool
	repo *repository
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Postgres Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = pgtc.NewContainer(ctx)
	Expect(err).NotTo(HaveOccurred())
	pool = pgC.Pool()

	By("running migrations")
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	_, err = migrator.NewMigrator(db, goose.DialectPostgres, migrations.Postgres()).Up(ctx)
	Expect(err).NotTo(HaveOccurred())

	repo = NewRepository(pool)
})

var _ = AfterSuite(func() {
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning tables")
	_, err := pool.Exec(ctx, "TRUNCATE TABLE bom, project, part")
	Expect(err).NotTo(HaveOccurred())
})

func newPart(raw string) *model.Part {
	name, err := model.ParsePartName(raw)
	Expect(err).NotTo(HaveOccurred())
	part, err := model.NewPart(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(repo.Insert(ctx, part)).To(Succeed())
	return part
}

func newProject(raw string) *model.Project {
	name, err := model.ParseProjectName(raw)
	Expect(err).NotTo(HaveOccurred())
	p, err := model.NewProject(name, time.Now().UTC())
	Expect(err).NotTo(HaveOccurred())
	id, err := repo.Create(ctx, p)
	Expect(err).NotTo(HaveOccurred())
	Expect(id).To(Equal(p.ID))
	return p
}

var _ = Describe("Postgres repository", func() {
	Context("parts", func() {
		It("stores a part and reads it back", func() {
			part := newPart("M3 Bolt")

			got, err := repo.PartByID(ctx, part.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).NotTo(BeNil())
			Expect(got.ID).To(Equal(part.ID))
			Expect(got.Name.String()).To(Equal("M3 Bolt"))
		})

		It("returns nil for a missing part", func() {
			got, err := repo.PartByID(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})
	})

	Context("projects", func() {
		It("creates a project with an empty BOM", func() {
			p := newProject("Desk Organizer")

			got, err := repo.ProjectByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name.String()).To(Equal("Desk Organizer"))
			Expect(got.Parts).To(BeEmpty())

			view, err := repo.ViewByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Parts).To(BeEmpty())
		})

		It("replaces the BOM and resolves part names in submission order", func() {
			bolt := newPart("M3 Bolt")
			nut := newPart("M3 Nut")
			p := newProject("Desk Organizer")
			dangling := uuid.New()

			p.DefineParts([]model.ProjectPart{
				{PartID: nut.ID, Quantity: 4},
				{PartID: dangling, Quantity: 1},
				{PartID: bolt.ID, Quantity: 12},
			})
			Expect(repo.Update(ctx, p)).To(Succeed())

			view, err := repo.ViewByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Parts).To(Equal([]model.ProjectPartView{
				{PartID: nut.ID, Name: "M3 Nut", Quantity: 4},
				{PartID: dangling, Name: "", Quantity: 1},
				{PartID: bolt.ID, Name: "M3 Bolt", Quantity: 12},
			}))

			p.DefineParts([]model.ProjectPart{{PartID: bolt.ID, Quantity: 2}})
			Expect(repo.Update(ctx, p)).To(Succeed())

			view, err = repo.ViewByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Parts).To(Equal([]model.ProjectPartView{
				{PartID: bolt.ID, Name: "M3 Bolt", Quantity: 2},
			}))
		})

		It("keeps the previous BOM when an insert fails", func() {
			bolt := newPart("M3 Bolt")
			p := newProject("Desk Organizer")

			p.DefineParts([]model.ProjectPart{{PartID: bolt.ID, Quantity: 12}})
			Expect(repo.Update(ctx, p)).To(Succeed())

			p.DefineParts([]model.ProjectPart{
				{PartID: bolt.ID, Quantity: 1},
				{PartID: bolt.ID, Quantity: 2},
			})
			Expect(repo.Update(ctx, p)).NotTo(Succeed())

			got, err := repo.ProjectByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Parts).To(Equal([]model.ProjectPart{{PartID: bolt.ID, Quantity: 12}}))
		})

		It("accepts the maximum quantity", func() {
			bolt := newPart("M3 Bolt")
			p := newProject("Desk Organizer")

			p.DefineParts([]model.ProjectPart{{PartID: bolt.ID, Quantity: 4294967295}})
			Expect(repo.Update(ctx, p)).To(Succeed())

			view, err := repo.ViewByID(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Parts[0].Quantity).To(Equal(uint32(4294967295)))
		})

		It("reports a missing project on update", func() {
			name, err := model.ParseProjectName("Ghost")
			Expect(err).NotTo(HaveOccurred())
			ghost, err := model.NewProject(name, time.Now())
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.Update(ctx, ghost)).To(MatchError(model.ErrProjectNotFound))
		})

		It("returns nil for a missing project view", func() {
			view, err := repo.ViewByID(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(view).To(BeNil())
		})
	})
})
