package domain

import (
	"fmt"
	"strings"

	"najah/internal/platform/curriculum"
)

type ResourceType string

const (
	TypeCourse   ResourceType = "Course"
	TypeExercise ResourceType = "Exercise"
	TypeExam     ResourceType = "Exam"
	TypeVideo    ResourceType = "Video"
	TypeQuiz     ResourceType = "Quiz"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// AllSubjects is the subject filter sentinel matching every subject.
const AllSubjects = "All"

// StorageKey is the key holding the serialized collection.
const StorageKey = "najah_admin_resources_v2"

func (t ResourceType) Validate() error {
	switch t {
	case TypeCourse, TypeExercise, TypeExam, TypeVideo, TypeQuiz:
		return nil
	default:
		return fmt.Errorf("unsupported resource type %q", string(t))
	}
}

func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return fmt.Errorf("unsupported resource status %q", string(s))
	}
}

func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Resource is one catalog entry pointing at an external document.
// SubjectID is not checked against any subject list.
type Resource struct {
	ID        string
	Title     string
	Type      ResourceType
	Status    Status
	Link      string
	Provider  string
	SubjectID string
	Track     string
	Year      string
}

// Validate checks required fields on their raw value: a whitespace-only
// title or link is accepted.
func (r Resource) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Link == "" {
		return fmt.Errorf("link is required")
	}
	if err := r.Type.Validate(); err != nil {
		return err
	}
	return r.Status.Validate()
}

// Draft carries the fields of a resource about to be created.
type Draft struct {
	Title     string
	Type      ResourceType
	Link      string
	Provider  string
	SubjectID string
	Track     string
	Year      string
}

func (d Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.Link == "" {
		return fmt.Errorf("link is required")
	}
	if d.Type == "" {
		return nil
	}
	return d.Type.Validate()
}

// NewResource builds an Active resource from d. Type defaults to Course.
func (d Draft) NewResource(id string) Resource {
	typ := d.Type
	if typ == "" {
		typ = TypeCourse
	}
	return Resource{
		ID:        id,
		Title:     d.Title,
		Type:      typ,
		Status:    StatusActive,
		Link:      d.Link,
		Provider:  d.Provider,
		SubjectID: d.SubjectID,
		Track:     d.Track,
		Year:      d.Year,
	}
}

// Patch replaces the non-nil fields of a resource. ID and Status are
// not patchable.
type Patch struct {
	Title     *string
	Type      *ResourceType
	Link      *string
	Provider  *string
	SubjectID *string
	Track     *string
	Year      *string
}

func (p Patch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Link != nil && *p.Link == "" {
		return fmt.Errorf("link is required")
	}
	if p.Type != nil {
		return p.Type.Validate()
	}
	return nil
}

func (p Patch) Apply(r Resource) Resource {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Link != nil {
		r.Link = *p.Link
	}
	if p.Provider != nil {
		r.Provider = *p.Provider
	}
	if p.SubjectID != nil {
		r.SubjectID = *p.SubjectID
	}
	if p.Track != nil {
		r.Track = *p.Track
	}
	if p.Year != nil {
		r.Year = *p.Year
	}
	return r
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	// Text matches title or provider, case-insensitively.
	Text string
	// SubjectID matches exactly unless empty or AllSubjects.
	SubjectID string
	// Track keeps resources for that track or for every track.
	Track      string
	ActiveOnly bool
}

func (f Filter) Matches(r Resource) bool {
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(r.Title), needle) && !strings.Contains(strings.ToLower(r.Provider), needle) {
			return false
		}
	}
	if f.SubjectID != "" && f.SubjectID != AllSubjects && r.SubjectID != f.SubjectID {
		return false
	}
	if f.Track != "" && f.Track != curriculum.AllTracks && r.Track != f.Track && r.Track != curriculum.AllTracks {
		return false
	}
	if f.ActiveOnly && r.Status != StatusActive {
		return false
	}
	return true
}

// Seed is the collection used when nothing usable is stored.
func Seed() []Resource {
	return []Resource{
		{ID: "1", Title: "Fiche 01: Étude des fonctions", Type: TypeCourse, Status: StatusActive, Link: "https://drive.google.com/file/d/1", Provider: "Prof Fayssal", SubjectID: "math", Track: curriculum.TrackPC},
		{ID: "2", Title: "Correction National 2024 PC", Type: TypeExam, Status: StatusActive, Link: "https://drive.google.com/file/d/2", Provider: "Moutamadris", SubjectID: "pc", Track: curriculum.TrackPC, Year: "2024"},
		{ID: "3", Title: "Résumé Ondes Mécaniques", Type: TypeExercise, Status: StatusInactive, Link: "https://drive.google.com/file/d/3", Provider: "AlloSchool", SubjectID: "pc", Track: curriculum.TrackSMA},
	}
}
