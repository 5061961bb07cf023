package service

import (
	"context"
	"fmt"

	"najah/internal/modules/profile/domain"
	profileout "najah/internal/modules/profile/port/out"
	apperrors "najah/internal/platform/errors"
)

type ProfileService struct {
	store profileout.PreferenceStore
}

func NewProfileService(store profileout.PreferenceStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.store.Load(ctx)
}

// Save validates prefs against the curriculum and marks onboarding done.
func (s *ProfileService) Save(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	prefs.Onboarded = true
	if err := s.store.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// Reset sends the user back through onboarding; other keys are kept.
func (s *ProfileService) Reset(ctx context.Context) error {
	return s.store.ClearOnboarded(ctx)
}
