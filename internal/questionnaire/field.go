// Package questionnaire implements the data-driven form subsystem: the field
// schema authored through the template builder, the builder's interactive
// editing rules, and the per-category response forms the renderer dispatches
// to. The builder-authored template and the built-in category forms are two
// independent sources of truth for the same category, matching the original
// product behavior.
package questionnaire

import (
	"fmt"

	"github.com/google/uuid"
)

// FieldType is the type tag of one questionnaire question. The wire values
// match the persisted template JSON.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldBoolean  FieldType = "boolean"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
)

// fieldTypeLabels maps each field type to its builder display label.
var fieldTypeLabels = map[FieldType]string{
	FieldText:     "Texto (linha única)",
	FieldTextarea: "Texto (multilinha)",
	FieldNumber:   "Número",
	FieldBoolean:  "Sim/Não",
	FieldSelect:   "Seleção",
	FieldDate:     "Data",
	FieldEmail:    "Email",
}

// ValidFieldType reports whether t is a supported field type.
func ValidFieldType(t FieldType) bool {
	_, ok := fieldTypeLabels[t]
	return ok
}

// FieldTypeLabel returns the builder display label for a field type.
func FieldTypeLabel(t FieldType) string {
	return fieldTypeLabels[t]
}

// FieldTypes returns the builder's field-type vocabulary in display order,
// pairing each wire value with its display label.
func FieldTypes() []SelectOption {
	ordered := []FieldType{FieldText, FieldTextarea, FieldNumber, FieldBoolean, FieldSelect, FieldDate, FieldEmail}
	out := make([]SelectOption, 0, len(ordered))
	for _, t := range ordered {
		out = append(out, SelectOption{Value: string(t), Label: FieldTypeLabel(t)})
	}
	return out
}

// SelectOption is one (value, label) pair of a select field.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is one question definition within a template. Type is immutable after
// creation; Options is non-nil iff Type is select.
type Field struct {
	ID           string         `json:"id"`
	Type         FieldType      `json:"type"`
	Label        string         `json:"label"`
	Required     bool           `json:"required"`
	Placeholder  string         `json:"placeholder,omitempty"`
	HelpText     string         `json:"helpText,omitempty"`
	Options      []SelectOption `json:"options,omitempty"`
	DefaultValue any            `json:"defaultValue,omitempty"`
}

// NewField constructs a field of the given type with a fresh id and the
// creation defaults: label "Nova pergunta", not required, two seeded options
// for select fields, defaultValue false for boolean fields.
func NewField(t FieldType) Field {
	f := Field{
		ID:       "field_" + uuid.NewString(),
		Type:     t,
		Label:    "Nova pergunta",
		Required: false,
	}

	if t == FieldSelect {
		f.Options = []SelectOption{
			{Value: "option1", Label: "Opção 1"},
			{Value: "option2", Label: "Opção 2"},
		}
	}

	if t == FieldBoolean {
		f.DefaultValue = false
	}

	return f
}

// Clone returns a deep copy of the field, detaching the options slice so
// scratch edits never reach the committed sequence.
func (f Field) Clone() Field {
	c := f
	if f.Options != nil {
		c.Options = make([]SelectOption, len(f.Options))
		copy(c.Options, f.Options)
	}
	return c
}

// Validate checks the field invariants.
func (f Field) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("field has no id")
	}
	if !ValidFieldType(f.Type) {
		return fmt.Errorf("field %s: unknown type %q", f.ID, f.Type)
	}
	if f.Label == "" {
		return fmt.Errorf("field %s: label is required", f.ID)
	}
	if f.Type == FieldSelect {
		if len(f.Options) == 0 {
			return fmt.Errorf("field %s: select field needs at least one option", f.ID)
		}
	} else if f.Options != nil {
		return fmt.Errorf("field %s: options are only valid on select fields", f.ID)
	}
	return nil
}
