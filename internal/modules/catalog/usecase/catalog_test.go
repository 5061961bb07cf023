package usecase_test

import (
	"context"
	"errors"
	"testing"

	cataloghandler "najah/internal/modules/catalog/adapter/in"
	catalogstore "najah/internal/modules/catalog/adapter/out"
	"najah/internal/modules/catalog/dto"
	"najah/internal/modules/catalog/service"
	"najah/internal/modules/catalog/usecase"
	apperrors "najah/internal/platform/errors"
	"najah/internal/platform/id"
	"najah/internal/platform/kv"
	"najah/internal/platform/logging"
)

func newHandler() cataloghandler.CLIHandler {
	svc := service.NewCatalogService(id.TimeOrdered{}, catalogstore.NewKVResourceStore(kv.NewMemoryStore()), logging.Discard())
	return cataloghandler.NewCLIHandler(usecase.NewInteractor(svc))
}

func TestHandlerAddEditToggleRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHandler()

	added, err := h.Add(ctx, dto.AddInput{Title: "Série limites", Type: "Exercise", Link: "https://drive.google.com/x", Provider: "Prof", SubjectID: "math", Track: "Toutes"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" || added.Status != "Active" || added.Type != "Exercise" {
		t.Fatalf("unexpected added resource: %+v", added)
	}

	quiz := "Quiz"
	updated, err := h.Update(ctx, dto.UpdateInput{ID: added.ID, Type: &quiz})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != "Quiz" || updated.Title != added.Title {
		t.Fatalf("unexpected update: %+v", updated)
	}

	toggled, err := h.Toggle(ctx, added.ID)
	if err != nil || toggled.Status != "Inactive" {
		t.Fatalf("toggle = %+v, %v", toggled, err)
	}

	active, err := h.List(ctx, "", "", "Sciences Physiques", true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range active {
		if r.ID == added.ID {
			t.Fatalf("inactive resource listed as active")
		}
	}

	if err := h.Remove(ctx, added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := h.Get(ctx, added.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after remove, got %v", err)
	}
}

func TestHandlerRejectsUnknownType(t *testing.T) {
	t.Parallel()
	if _, err := newHandler().Add(context.Background(), dto.AddInput{Title: "t", Link: "l", Type: "Podcast"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestHandlerExport(t *testing.T) {
	t.Parallel()
	raw, err := newHandler().Export(context.Background(), "yaml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected yaml output")
	}
}
