package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/platform/logger"
)

type PartRepository interface {
	Insert(ctx context.Context, part *model.Part) error
	// PartByID returns nil and no error when the part does not exist.
	PartByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
}

type service struct {
	repo           PartRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInventoryService(
	repo PartRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Register(ctx context.Context, name model.Name) (uuid.UUID, error) {
	const op = "inventory.service.Register"
	log := logger.With(
		logger.String("part_name", name.String()),
	)

	part, err := model.NewPart(name)
	if err != nil {
		log.Error(ctx, "new part", logger.ErrorF(err))
		return uuid.Nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Insert(ctx, part); err != nil {
		log.Error(ctx, "repository insert part", logger.ErrorF(err))
		return uuid.Nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}

	log.Info(ctx, fmt.Sprintf("part %s registered with id %s", name, part.ID),
		logger.Stringer("part_id", part.ID),
	)
	return part.ID, nil
}

func (s *service) Part(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	const op = "inventory.service.Part"
	log := logger.With(
		logger.Stringer("part_id", id),
	)

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	part, err := s.repo.PartByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}
	if part == nil {
		log.Debug(ctx, "part not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	return part, nil
}

// withTimeout bounds ctx by d. A zero or negative d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

