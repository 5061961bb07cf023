package dto

type ListInput struct {
	Text       string
	SubjectID  string
	Track      string
	ActiveOnly bool
}

type AddInput struct {
	Title     string
	Type      string
	Link      string
	Provider  string
	SubjectID string
	Track     string
	Year      string
}

// UpdateInput leaves fields untouched when nil.
type UpdateInput struct {
	ID        string
	Title     *string
	Type      *string
	Link      *string
	Provider  *string
	SubjectID *string
	Track     *string
	Year      *string
}

type ExportInput struct {
	Format string
}

type ResourceOutput struct {
	ID        string
	Title     string
	Type      string
	Status    string
	Link      string
	Provider  string
	SubjectID string
	Track     string
	Year      string
}
