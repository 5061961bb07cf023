package usecase

import (
	"context"

	"najah/internal/modules/catalog/domain"
	"najah/internal/modules/catalog/dto"
	catalogin "najah/internal/modules/catalog/port/in"
	"najah/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.ResourceOutput, error) {
	resources := i.svc.List(ctx, domain.Filter{
		Text:       input.Text,
		SubjectID:  input.SubjectID,
		Track:      input.Track,
		ActiveOnly: input.ActiveOnly,
	})
	out := make([]dto.ResourceOutput, 0, len(resources))
	for _, r := range resources {
		out = append(out, toOutput(r))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.ResourceOutput, error) {
	r, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toOutput(r), nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.ResourceOutput, error) {
	r, err := i.svc.Add(ctx, domain.Draft{
		Title:     input.Title,
		Type:      domain.ResourceType(input.Type),
		Link:      input.Link,
		Provider:  input.Provider,
		SubjectID: input.SubjectID,
		Track:     input.Track,
		Year:      input.Year,
	})
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toOutput(r), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.ResourceOutput, error) {
	patch := domain.Patch{
		Title:     input.Title,
		Link:      input.Link,
		Provider:  input.Provider,
		SubjectID: input.SubjectID,
		Track:     input.Track,
		Year:      input.Year,
	}
	if input.Type != nil {
		typ := domain.ResourceType(*input.Type)
		patch.Type = &typ
	}
	r, err := i.svc.Update(ctx, input.ID, patch)
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toOutput(r), nil
}

func (i *Interactor) ToggleStatus(ctx context.Context, id string) (dto.ResourceOutput, error) {
	r, err := i.svc.ToggleStatus(ctx, id)
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toOutput(r), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) ([]byte, error) {
	return i.svc.Export(ctx, input.Format)
}

func toOutput(r domain.Resource) dto.ResourceOutput {
	return dto.ResourceOutput{
		ID:        r.ID,
		Title:     r.Title,
		Type:      string(r.Type),
		Status:    string(r.Status),
		Link:      r.Link,
		Provider:  r.Provider,
		SubjectID: r.SubjectID,
		Track:     r.Track,
		Year:      r.Year,
	}
}
