package questionnaire

import (
	"fmt"

	"github.com/legalbridge/legalbridge/internal/catalog"
)

// Template is a lawyer-authored ordered list of fields for one process type.
// ID is empty until the first save. Field order is render order.
type Template struct {
	ID          string              `json:"id,omitempty"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	ProcessType catalog.ProcessType `json:"process_type"`
	Fields      []Field             `json:"fields"`
}

// NewTemplate seeds the in-memory template used when a lawyer opens the
// builder for a process type that has no persisted template yet.
func NewTemplate(pt catalog.ProcessType) *Template {
	return &Template{
		Title:       fmt.Sprintf("Questionário - %s", pt),
		Description: nil,
		ProcessType: pt,
		Fields:      []Field{},
	}
}

// Validate checks the template and every field it contains.
func (t *Template) Validate() error {
	if !catalog.ValidProcessType(t.ProcessType) {
		return fmt.Errorf("unknown process type %q", t.ProcessType)
	}
	if t.Title == "" {
		return fmt.Errorf("template title is required")
	}

	seen := make(map[string]struct{}, len(t.Fields))
	for i, f := range t.Fields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("field %d: duplicate id %s", i, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return nil
}
