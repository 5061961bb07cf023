package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"najah/internal/modules/progress/domain"
	progressout "najah/internal/modules/progress/port/out"
	"najah/internal/platform/clock"
	apperrors "najah/internal/platform/errors"
)

type ProgressService struct {
	store  progressout.ProgressStore
	clock  clock.Clock
	examAt time.Time

	// mu serialises read-modify-write cycles on the store.
	mu sync.Mutex
}

func NewProgressService(store progressout.ProgressStore, clk clock.Clock, examAt time.Time) *ProgressService {
	return &ProgressService{store: store, clock: clk, examAt: examAt}
}

func (s *ProgressService) Get(ctx context.Context) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// ToggleSeen flips the seen mark of a chapter and reports the new state.
// Marking a chapter seen also makes it the last seen one.
func (s *ProgressService) ToggleSeen(ctx context.Context, chapterID string) (bool, error) {
	return s.toggle(ctx, chapterID, func(p *domain.Progress) bool {
		p.Seen = domain.Toggle(p.Seen, chapterID)
		seen := p.IsSeen(chapterID)
		if seen {
			p.LastSeen = chapterID
		}
		return seen
	})
}

func (s *ProgressService) ToggleFavorite(ctx context.Context, chapterID string) (bool, error) {
	return s.toggle(ctx, chapterID, func(p *domain.Progress) bool {
		p.Favorites = domain.Toggle(p.Favorites, chapterID)
		return p.IsFavorite(chapterID)
	})
}

func (s *ProgressService) toggle(ctx context.Context, chapterID string, change func(*domain.Progress) bool) (bool, error) {
	if _, ok := domain.FindChapter(chapterID); !ok {
		return false, fmt.Errorf("%w: chapter %s", apperrors.ErrNotFound, chapterID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	on := change(&p)
	if err := s.store.Save(ctx, p); err != nil {
		return false, fmt.Errorf("persist progress: %w", err)
	}
	return on, nil
}

func (s *ProgressService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	d := domain.Dashboard{
		Summary:   domain.Summarize(p.Seen, len(domain.Chapters())),
		ExamAt:    s.examAt,
		Countdown: domain.CountdownTo(s.clock.Now(), s.examAt),
	}
	if c, ok := domain.FindChapter(p.LastSeen); ok {
		d.LastSeen = &c
	}
	for _, chapterID := range p.Favorites {
		if c, ok := domain.FindChapter(chapterID); ok {
			d.Favorites = append(d.Favorites, c)
		}
	}
	return d, nil
}
