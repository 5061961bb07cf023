package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"najah/internal/modules/planner/domain"
	plannerout "najah/internal/modules/planner/port/out"
	"najah/internal/platform/clock"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/id"
)

// PlannerService keeps the study task list, newest first, and saves the
// whole list on every change.
type PlannerService struct {
	idGen  id.Generator
	clock  clock.Clock
	store  plannerout.TaskStore
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	tasks  []domain.Task
}

func NewPlannerService(idGen id.Generator, clk clock.Clock, store plannerout.TaskStore, logger *slog.Logger) *PlannerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerService{idGen: idGen, clock: clk, store: store, logger: logger}
}

func (s *PlannerService) ensureLoadedLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	tasks, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.tasks = tasks
	case errors.Is(err, apperrors.ErrNotFound):
		s.tasks = domain.Seed()
		if err := s.store.Save(ctx, s.tasks); err != nil {
			s.logger.Warn("planner seed not persisted", "error", err)
		}
	default:
		s.logger.Warn("planner storage unreadable, using seed", "error", err)
		s.tasks = domain.Seed()
	}
	s.loaded = true
}

func (s *PlannerService) List(ctx context.Context) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	return slices.Clone(s.tasks)
}

func (s *PlannerService) Add(ctx context.Context, text string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	taskID := s.idGen.New()
	for s.indexLocked(taskID) >= 0 {
		taskID = s.idGen.New()
	}
	task, err := domain.NewTask(taskID, text, s.clock.Now())
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	next := append([]domain.Task{task}, s.tasks...)
	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *PlannerService) Toggle(ctx context.Context, taskID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	idx := s.indexLocked(taskID)
	if idx < 0 {
		return domain.Task{}, notFound(taskID)
	}
	next := slices.Clone(s.tasks)
	next[idx].Completed = !next[idx].Completed
	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Task{}, err
	}
	return next[idx], nil
}

func (s *PlannerService) Delete(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	idx := s.indexLocked(taskID)
	if idx < 0 {
		return notFound(taskID)
	}
	return s.commitLocked(ctx, slices.Delete(slices.Clone(s.tasks), idx, idx+1))
}

func (s *PlannerService) commitLocked(ctx context.Context, next []domain.Task) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.tasks = next
	return nil
}

func (s *PlannerService) indexLocked(taskID string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool { return t.ID == taskID })
}

func notFound(taskID string) error {
	return fmt.Errorf("%w: task %s", apperrors.ErrNotFound, taskID)
}
