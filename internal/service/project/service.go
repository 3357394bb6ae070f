package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dimasmith/printtables/internal/model"
	"github.com/dimasmith/printtables/platform/logger"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) (uuid.UUID, error)
	// ProjectByID returns nil and no error when the project does not exist.
	ProjectByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	// Update stores the project and replaces its BOM atomically.
	Update(ctx context.Context, p *model.Project) error
}

type ProjectViewRepository interface {
	// ViewByID returns nil and no error when the project does not exist.
	ViewByID(ctx context.Context, id uuid.UUID) (*model.ProjectView, error)
}

type BOMReplacedSender interface {
	SendBOMReplaced(ctx context.Context, event model.BOMReplaced) error
}

type service struct {
	repo           ProjectRepository
	views          ProjectViewRepository
	sender         BOMReplacedSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewProjectService(
	repo ProjectRepository,
	views ProjectViewRepository,
	sender BOMReplacedSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		views:          views,
		sender:         sender,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Register(ctx context.Context, name model.Name) (uuid.UUID, error) {
	const op = "project.service.Register"
	log := logger.With(
		logger.String("project_name", name.String()),
	)

	p, err := model.NewProject(name, s.now())
	if err != nil {
		log.Error(ctx, "new project", logger.ErrorF(err))
		return uuid.Nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error(ctx, "repository create project", logger.ErrorF(err))
		return uuid.Nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}

	log.Info(ctx, fmt.Sprintf("project %s registered with id %s", name, id),
		logger.Stringer("project_id", id),
	)
	return id, nil
}

func (s *service) View(ctx context.Context, id uuid.UUID) (*model.ProjectView, error) {
	const op = "project.service.View"
	log := logger.With(
		logger.Stringer("project_id", id),
	)

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	view, err := s.views.ViewByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository view by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}
	if view == nil {
		log.Debug(ctx, "project not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrProjectNotFound)
	}

	return view, nil
}

// SetBOM replaces the project's bill of materials with parts.
// Part ids are not checked against the inventory.
func (s *service) SetBOM(ctx context.Context, id uuid.UUID, parts []model.ProjectPart) error {
	const op = "project.service.SetBOM"
	log := logger.With(
		logger.Stringer("project_id", id),
		logger.Int("parts_count", len(parts)),
	)

	readCtx, cancelRead := withTimeout(ctx, s.readDBTimeout)
	p, err := s.repo.ProjectByID(readCtx, id)
	cancelRead()
	if err != nil {
		log.Error(ctx, "repository project by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}
	if p == nil {
		log.Debug(ctx, "project not found")
		return fmt.Errorf("%s: %w", op, model.ErrProjectNotFound)
	}

	p.DefineParts(parts)

	writeCtx, cancelWrite := withTimeout(ctx, s.writeDBTimeout)
	err = s.repo.Update(writeCtx, p)
	cancelWrite()
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			log.Debug(ctx, "project removed before update")
			return fmt.Errorf("%s: %w", op, model.ErrProjectNotFound)
		}
		log.Error(ctx, "repository update project", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrGeneral, err)
	}

	log.Info(ctx, "project bom replaced")

	eventID, err := uuid.NewV7()
	if err != nil {
		log.Warn(ctx, "bom replaced event id", logger.ErrorF(err))
		return nil
	}
	event := model.BOMReplaced{
		EventID:    eventID,
		ProjectID:  p.ID,
		Parts:      p.Parts,
		OccurredAt: s.now(),
	}
	if err := s.sender.SendBOMReplaced(ctx, event); err != nil {
		log.Warn(ctx, "send bom replaced event", logger.ErrorF(err))
	}

	return nil
}

// withTimeout bounds ctx by d. A zero or negative d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
