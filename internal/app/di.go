package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dimasmith/printtables/internal/config"
	envconfig "github.com/dimasmith/printtables/internal/config/env"
	"github.com/dimasmith/printtables/internal/converter"
	"github.com/dimasmith/printtables/internal/repository/memory"
	"github.com/dimasmith/printtables/internal/repository/postgres"
	"github.com/dimasmith/printtables/internal/repository/sqlite"
	partsvc "github.com/dimasmith/printtables/internal/service/part"
	projproducer "github.com/dimasmith/printtables/internal/service/producer/project"
	projsvc "github.com/dimasmith/printtables/internal/service/project"
	thttp "github.com/dimasmith/printtables/internal/transport/http/v1"
	"github.com/dimasmith/printtables/migrations"
	"github.com/dimasmith/printtables/platform/closer"
	"github.com/dimasmith/printtables/platform/db/migrator"
	"github.com/dimasmith/printtables/platform/kafka"
	"github.com/dimasmith/printtables/platform/kafka/producer"
	"github.com/dimasmith/printtables/platform/logger"
)

// Store is implemented by every storage backend.
type Store interface {
	partsvc.PartRepository
	projsvc.ProjectRepository
	projsvc.ProjectViewRepository
}

type Handler interface {
	Routes(r chi.Router)
}

type di struct {
	dbPool   *pgxpool.Pool
	sqlDB    *sql.DB
	migrator *migrator.Migrator
	store    Store

	syncProducer        sarama.SyncProducer
	bomReplacedProducer kafka.Producer
	projectProducer     projsvc.BOMReplacedSender

	inventoryService thttp.InventoryService
	projectService   thttp.ProjectService
	handler          Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

// SQLDB is the database/sql handle of the configured SQL store.
// For Postgres it shares the pgx pool.
func (d *di) SQLDB(ctx context.Context) *sql.DB {
	if d.sqlDB == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverPostgres:
			d.sqlDB = stdlib.OpenDBFromPool(d.DBPool(ctx))
		case envconfig.DriverSQLite:
			db, err := sqlite.Open(ctx, config.C().SQLite.Path())
			if err != nil {
				panic(fmt.Sprintf("failed to open sqlite: %v\n", err))
			}
			d.sqlDB = db
		default:
			panic(fmt.Sprintf("no sql database for storage driver %q", config.C().Storage.Driver()))
		}

		db := d.sqlDB
		closer.AddNamed("SQL DB",
			func(ctx context.Context) error {
				return db.Close()
			})
	}

	return d.sqlDB
}

// Migrator is nil for the in-memory store.
func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverPostgres:
			d.migrator = migrator.NewMigrator(d.SQLDB(ctx), goose.DialectPostgres, migrations.Postgres())
		case envconfig.DriverSQLite:
			d.migrator = migrator.NewMigrator(d.SQLDB(ctx), goose.DialectSQLite3, migrations.SQLite())
		}
	}

	return d.migrator
}

func (d *di) Store(ctx context.Context) Store {
	if d.store == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverPostgres:
			d.store = postgres.NewRepository(d.DBPool(ctx))
		case envconfig.DriverSQLite:
			d.store = sqlite.NewRepository(d.SQLDB(ctx))
		default:
			d.store = memory.NewRepository()
		}
	}

	return d.store
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProjectBOMReplacedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) BOMReplacedProducer(ctx context.Context) kafka.Producer {
	if d.bomReplacedProducer == nil {
		d.bomReplacedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ProjectBOMReplacedTopic(),
			logger.L(),
			kafka.Header{Key: "content-type", Value: "application/json"},
		)
	}

	return d.bomReplacedProducer
}

func (d *di) ProjectProducer(ctx context.Context) projsvc.BOMReplacedSender {
	if d.projectProducer == nil {
		if !config.C().Kafka.Enabled() {
			logger.Info(ctx, "KAFKA_BROKERS is empty, bom replaced events are dropped")
			d.projectProducer = projproducer.NewNoopProducer()
			return d.projectProducer
		}

		d.projectProducer = projproducer.NewProjectProducer(
			d.BOMReplacedProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.projectProducer
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = partsvc.NewInventoryService(
			d.Store(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) ProjectService(ctx context.Context) thttp.ProjectService {
	if d.projectService == nil {
		store := d.Store(ctx)
		d.projectService = projsvc.NewProjectService(
			store,
			store,
			d.ProjectProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.projectService
}

func (d *di) Handler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewHandler(d.InventoryService(ctx), d.ProjectService(ctx))
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
