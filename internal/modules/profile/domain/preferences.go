package domain

import (
	"fmt"

	"najah/internal/platform/curriculum"
)

const (
	KeyOnboarded = "najah_onboarded"
	KeyLanguage  = "najah_lang"
	KeyLevel     = "bac_level"
	KeyTrack     = "filiere"
)

type Preferences struct {
	Onboarded bool
	Language  string
	Level     string
	Track     string
}

func DefaultPreferences() Preferences {
	return Preferences{
		Language: "FR",
		Level:    curriculum.LevelBac2,
		Track:    curriculum.TrackPC,
	}
}

func (p Preferences) Validate() error {
	if !curriculum.IsLanguage(p.Language) {
		return fmt.Errorf("unsupported language %q", p.Language)
	}
	if !curriculum.IsLevel(p.Level) {
		return fmt.Errorf("unsupported level %q", p.Level)
	}
	if !curriculum.IsTrack(p.Track) {
		return fmt.Errorf("unsupported track %q", p.Track)
	}
	return nil
}
