package domain_test

import (
	"testing"

	"najah/internal/modules/catalog/domain"
	"najah/internal/platform/curriculum"
)

func strPtr(s string) *string { return &s }

func TestDraftValidateChecksRawEmptiness(t *testing.T) {
	t.Parallel()
	if err := (domain.Draft{Title: "Fiche A", Link: "https://x"}).Validate(); err != nil {
		t.Fatalf("draft should be valid: %v", err)
	}
	if err := (domain.Draft{Link: "https://x"}).Validate(); err == nil {
		t.Fatalf("missing title should fail")
	}
	if err := (domain.Draft{Title: "Fiche A"}).Validate(); err == nil {
		t.Fatalf("missing link should fail")
	}
	if err := (domain.Draft{Title: "   ", Link: " "}).Validate(); err != nil {
		t.Fatalf("whitespace-only values pass the raw check: %v", err)
	}
	if err := (domain.Draft{Title: "a", Link: "b", Type: "Podcast"}).Validate(); err == nil {
		t.Fatalf("unknown type should fail")
	}
}

func TestDraftNewResourceDefaults(t *testing.T) {
	t.Parallel()
	r := domain.Draft{Title: "Fiche A", Link: "https://x"}.NewResource("id-1")
	if r.ID != "id-1" || r.Status != domain.StatusActive || r.Type != domain.TypeCourse {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("new resource should validate: %v", err)
	}
}

func TestPatchApplyAndValidate(t *testing.T) {
	t.Parallel()
	base := domain.Seed()[1]
	exam := domain.TypeQuiz
	patched := domain.Patch{Title: strPtr("Nouveau titre"), Type: &exam, Year: strPtr("")}.Apply(base)
	if patched.Title != "Nouveau titre" || patched.Type != domain.TypeQuiz || patched.Year != "" {
		t.Fatalf("patch not applied: %+v", patched)
	}
	if patched.ID != base.ID || patched.Link != base.Link || patched.Status != base.Status {
		t.Fatalf("untouched fields changed: %+v", patched)
	}
	if err := (domain.Patch{Title: strPtr("")}).Validate(); err == nil {
		t.Fatalf("emptying the title should fail")
	}
	if err := (domain.Patch{Link: strPtr("")}).Validate(); err == nil {
		t.Fatalf("emptying the link should fail")
	}
	bad := domain.ResourceType("Podcast")
	if err := (domain.Patch{Type: &bad}).Validate(); err == nil {
		t.Fatalf("unknown type should fail")
	}
}

func TestStatusToggle(t *testing.T) {
	t.Parallel()
	if domain.StatusActive.Toggle() != domain.StatusInactive || domain.StatusInactive.Toggle() != domain.StatusActive {
		t.Fatalf("toggle must flip status")
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()
	seed := domain.Seed()
	shared := domain.Resource{ID: "4", Title: "Méthodologie", Provider: "NAJAH", SubjectID: "phil", Track: curriculum.AllTracks, Status: domain.StatusActive}

	tests := []struct {
		name   string
		filter domain.Filter
		r      domain.Resource
		want   bool
	}{
		{name: "empty filter", filter: domain.Filter{}, r: seed[2], want: true},
		{name: "title case-insensitive", filter: domain.Filter{Text: "FICHE"}, r: seed[0], want: true},
		{name: "provider match", filter: domain.Filter{Text: "allo"}, r: seed[2], want: true},
		{name: "text miss", filter: domain.Filter{Text: "svt"}, r: seed[0], want: false},
		{name: "subject exact", filter: domain.Filter{SubjectID: "pc"}, r: seed[1], want: true},
		{name: "subject miss", filter: domain.Filter{SubjectID: "pc"}, r: seed[0], want: false},
		{name: "subject sentinel", filter: domain.Filter{SubjectID: domain.AllSubjects}, r: seed[0], want: true},
		{name: "both predicates", filter: domain.Filter{Text: "fiche", SubjectID: "math"}, r: seed[0], want: true},
		{name: "both predicates one fails", filter: domain.Filter{Text: "fiche", SubjectID: "pc"}, r: seed[0], want: false},
		{name: "track match", filter: domain.Filter{Track: curriculum.TrackSMA}, r: seed[2], want: true},
		{name: "track miss", filter: domain.Filter{Track: curriculum.TrackSMA}, r: seed[0], want: false},
		{name: "resource for all tracks", filter: domain.Filter{Track: curriculum.TrackLET}, r: shared, want: true},
		{name: "track sentinel", filter: domain.Filter{Track: curriculum.AllTracks}, r: seed[0], want: true},
		{name: "active only", filter: domain.Filter{ActiveOnly: true}, r: seed[2], want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.Matches(tt.r); got != tt.want {
				t.Fatalf("Matches() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSeedIsValid(t *testing.T) {
	t.Parallel()
	seed := domain.Seed()
	if len(seed) != 3 {
		t.Fatalf("expected 3 seed records, got %d", len(seed))
	}
	for i, r := range seed {
		if err := r.Validate(); err != nil {
			t.Fatalf("seed %d invalid: %v", i, err)
		}
	}
	seed[0].Title = "changed"
	if domain.Seed()[0].Title == "changed" {
		t.Fatalf("Seed must return a fresh slice")
	}
}
