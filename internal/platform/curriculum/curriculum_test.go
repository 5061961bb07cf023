package curriculum_test

import (
	"testing"

	"najah/internal/platform/curriculum"
)

func TestLookups(t *testing.T) {
	t.Parallel()
	if !curriculum.IsTrack("Sciences Physiques") {
		t.Fatalf("PC should be a track")
	}
	if curriculum.IsTrack(curriculum.AllTracks) {
		t.Fatalf("the all-tracks sentinel is not a real track")
	}
	if !curriculum.IsLevel("2ème Bac") || curriculum.IsLevel("3ème Bac") {
		t.Fatalf("unexpected level lookup")
	}
	if !curriculum.IsLanguage("AR") || curriculum.IsLanguage("DE") {
		t.Fatalf("unexpected language lookup")
	}
}
