package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"najah/internal/modules/catalog/domain"
	apperrors "najah/internal/platform/errors"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type exportRecord struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Type      string `json:"type" yaml:"type"`
	Status    string `json:"status" yaml:"status"`
	Link      string `json:"link" yaml:"link"`
	Provider  string `json:"provider,omitempty" yaml:"provider,omitempty"`
	SubjectID string `json:"subjectId,omitempty" yaml:"subject_id,omitempty"`
	Track     string `json:"filiere,omitempty" yaml:"filiere,omitempty"`
	Year      string `json:"year,omitempty" yaml:"year,omitempty"`
}

// Export renders the full collection in collection order.
func (s *CatalogService) Export(ctx context.Context, format string) ([]byte, error) {
	resources := s.List(ctx, domain.Filter{})
	records := make([]exportRecord, 0, len(resources))
	for _, r := range resources {
		records = append(records, exportRecord{
			ID:        r.ID,
			Title:     r.Title,
			Type:      string(r.Type),
			Status:    string(r.Status),
			Link:      r.Link,
			Provider:  r.Provider,
			SubjectID: r.SubjectID,
			Track:     r.Track,
			Year:      r.Year,
		})
	}
	switch format {
	case "", FormatJSON:
		return json.MarshalIndent(records, "", "  ")
	case FormatYAML:
		return yaml.Marshal(records)
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrInvalidInput, format)
	}
}
