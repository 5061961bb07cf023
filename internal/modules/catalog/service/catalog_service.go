package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"najah/internal/modules/catalog/domain"
	catalogout "najah/internal/modules/catalog/port/out"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/id"
)

// CatalogService owns the in-process resource collection and writes the
// whole collection through to the store on every mutation.
type CatalogService struct {
	idGen  id.Generator
	store  catalogout.ResourceStore
	logger *slog.Logger

	mu        sync.Mutex
	loaded    bool
	resources []domain.Resource
}

func NewCatalogService(idGen id.Generator, store catalogout.ResourceStore, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{idGen: idGen, store: store, logger: logger}
}

// Load rehydrates the collection. An absent or undecodable stored value
// falls back to the seed set; Load itself never fails. A seed loaded for
// an absent key is written back so the store holds it from then on.
func (s *CatalogService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
}

func (s *CatalogService) loadLocked(ctx context.Context) {
	resources, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.resources = resources
	case errors.Is(err, apperrors.ErrNotFound):
		s.resources = domain.Seed()
		if err := s.store.Save(ctx, s.resources); err != nil {
			s.logger.Warn("catalog seed not persisted", "error", err)
		}
	default:
		s.logger.Warn("catalog storage unreadable, using seed", "error", err)
		s.resources = domain.Seed()
	}
	s.loaded = true
}

func (s *CatalogService) ensureLoadedLocked(ctx context.Context) {
	if !s.loaded {
		s.loadLocked(ctx)
	}
}

func (s *CatalogService) List(ctx context.Context, filter domain.Filter) []domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	out := make([]domain.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *CatalogService) Get(ctx context.Context, resourceID string) (domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	idx := s.indexLocked(resourceID)
	if idx < 0 {
		return domain.Resource{}, notFound(resourceID)
	}
	return s.resources[idx], nil
}

func (s *CatalogService) Add(ctx context.Context, draft domain.Draft) (domain.Resource, error) {
	if err := draft.Validate(); err != nil {
		return domain.Resource{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	resourceID := s.idGen.New()
	for s.indexLocked(resourceID) >= 0 {
		resourceID = s.idGen.New()
	}
	resource := draft.NewResource(resourceID)
	next := make([]domain.Resource, 0, len(s.resources)+1)
	next = append(next, resource)
	next = append(next, s.resources...)
	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Resource{}, err
	}
	return resource, nil
}

func (s *CatalogService) Update(ctx context.Context, resourceID string, patch domain.Patch) (domain.Resource, error) {
	if err := patch.Validate(); err != nil {
		return domain.Resource{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.replace(ctx, resourceID, patch.Apply)
}

func (s *CatalogService) ToggleStatus(ctx context.Context, resourceID string) (domain.Resource, error) {
	return s.replace(ctx, resourceID, func(r domain.Resource) domain.Resource {
		r.Status = r.Status.Toggle()
		return r
	})
}

// Remove deletes a resource. Callers confirm with the user first.
func (s *CatalogService) Remove(ctx context.Context, resourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	idx := s.indexLocked(resourceID)
	if idx < 0 {
		return notFound(resourceID)
	}
	next := slices.Delete(slices.Clone(s.resources), idx, idx+1)
	return s.commitLocked(ctx, next)
}

func (s *CatalogService) replace(ctx context.Context, resourceID string, change func(domain.Resource) domain.Resource) (domain.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	idx := s.indexLocked(resourceID)
	if idx < 0 {
		return domain.Resource{}, notFound(resourceID)
	}
	next := slices.Clone(s.resources)
	next[idx] = change(next[idx])
	if err := s.commitLocked(ctx, next); err != nil {
		return domain.Resource{}, err
	}
	return next[idx], nil
}

// commitLocked persists next and only then makes it current, so a failed
// save leaves the previous collection in place.
func (s *CatalogService) commitLocked(ctx context.Context, next []domain.Resource) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist resources: %w", err)
	}
	s.resources = next
	return nil
}

func (s *CatalogService) indexLocked(resourceID string) int {
	return slices.IndexFunc(s.resources, func(r domain.Resource) bool { return r.ID == resourceID })
}

func notFound(resourceID string) error {
	return fmt.Errorf("%w: resource %s", apperrors.ErrNotFound, resourceID)
}
