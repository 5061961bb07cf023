package usecase

import (
	"context"

	"najah/internal/modules/profile/domain"
	"najah/internal/modules/profile/dto"
	profilein "najah/internal/modules/profile/port/in"
	"najah/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.PreferencesOutput, error) {
	prefs, err := i.svc.Get(ctx)
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.PreferencesOutput, error) {
	prefs, err := i.svc.Get(ctx)
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	if input.Language != "" {
		prefs.Language = input.Language
	}
	if input.Level != "" {
		prefs.Level = input.Level
	}
	if input.Track != "" {
		prefs.Track = input.Track
	}
	saved, err := i.svc.Save(ctx, prefs)
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func toOutput(p domain.Preferences) dto.PreferencesOutput {
	return dto.PreferencesOutput{Onboarded: p.Onboarded, Language: p.Language, Level: p.Level, Track: p.Track}
}
