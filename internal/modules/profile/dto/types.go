package dto

type PreferencesOutput struct {
	Onboarded bool
	Language  string
	Level     string
	Track     string
}

// SaveInput leaves a preference at its current value when the field is
// empty.
type SaveInput struct {
	Language string
	Level    string
	Track    string
}
