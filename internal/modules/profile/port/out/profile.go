package out

import (
	"context"

	"najah/internal/modules/profile/domain"
)

// PreferenceStore reads missing keys as defaults.
type PreferenceStore interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
	ClearOnboarded(ctx context.Context) error
}
