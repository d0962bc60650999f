package questionnaire

// noEditing marks the editor panel as closed.
const noEditing = -1

// Builder holds the interactive editing state of one template: the committed
// field sequence plus a single scratch copy of the field currently open in the
// editor panel. All field-level mutations apply to the scratch copy until
// SaveFieldChanges commits it back at its original index.
type Builder struct {
	Template *Template

	editing      *Field
	editingIndex int
}

// NewBuilder wraps a template for interactive editing.
func NewBuilder(t *Template) *Builder {
	return &Builder{Template: t, editingIndex: noEditing}
}

// AddField appends a new field of the given type with creation defaults and
// opens it in the editor panel. Always succeeds.
func (b *Builder) AddField(t FieldType) *Field {
	f := NewField(t)
	b.Template.Fields = append(b.Template.Fields, f)

	scratch := f.Clone()
	b.editing = &scratch
	b.editingIndex = len(b.Template.Fields) - 1
	return b.editing
}

// RemoveField deletes the field at index. The caller passes an index from an
// enumeration of the current sequence; out-of-range is a precondition
// violation and is ignored. If the removed field was open in the editor the
// editor closes; an open field after the removed index keeps pointing at the
// same field.
func (b *Builder) RemoveField(index int) {
	if index < 0 || index >= len(b.Template.Fields) {
		return
	}

	b.Template.Fields = append(b.Template.Fields[:index], b.Template.Fields[index+1:]...)

	if b.editingIndex == index {
		b.CancelFieldEdit()
	} else if b.editingIndex != noEditing && b.editingIndex > index {
		b.editingIndex--
	}
}

// MoveFieldUp swaps the field at index with its predecessor. No-op at the
// first position. The editor selection follows the open field.
func (b *Builder) MoveFieldUp(index int) {
	if index <= 0 || index >= len(b.Template.Fields) {
		return
	}

	fields := b.Template.Fields
	fields[index], fields[index-1] = fields[index-1], fields[index]

	if b.editingIndex == index {
		b.editingIndex = index - 1
	} else if b.editingIndex == index-1 {
		b.editingIndex = index
	}
}

// MoveFieldDown swaps the field at index with its successor. No-op at the last
// position. The editor selection follows the open field.
func (b *Builder) MoveFieldDown(index int) {
	if index < 0 || index >= len(b.Template.Fields)-1 {
		return
	}

	fields := b.Template.Fields
	fields[index], fields[index+1] = fields[index+1], fields[index]

	if b.editingIndex == index {
		b.editingIndex = index + 1
	} else if b.editingIndex == index+1 {
		b.editingIndex = index
	}
}

// EditField opens the field at index for editing by cloning it into the
// scratch slot.
func (b *Builder) EditField(index int) *Field {
	if index < 0 || index >= len(b.Template.Fields) {
		return nil
	}

	scratch := b.Template.Fields[index].Clone()
	b.editing = &scratch
	b.editingIndex = index
	return b.editing
}

// Editing returns the scratch field and its tracked index, or (nil, -1) when
// the editor panel is closed. Mutations through the returned pointer stay in
// the scratch copy until SaveFieldChanges.
func (b *Builder) Editing() (*Field, int) {
	return b.editing, b.editingIndex
}

// SaveFieldChanges commits the scratch copy back into the sequence at its
// tracked index and closes the editor.
func (b *Builder) SaveFieldChanges() {
	if b.editing == nil || b.editingIndex == noEditing {
		return
	}

	b.Template.Fields[b.editingIndex] = b.editing.Clone()
	b.editing = nil
	b.editingIndex = noEditing
}

// CancelFieldEdit discards the scratch copy without committing.
func (b *Builder) CancelFieldEdit() {
	b.editing = nil
	b.editingIndex = noEditing
}

// AddSelectOption appends a default-named option to the scratch field. Only
// meaningful while editing a select field.
func (b *Builder) AddSelectOption() {
	if b.editing == nil || b.editing.Type != FieldSelect {
		return
	}

	n := len(b.editing.Options) + 1
	b.editing.Options = append(b.editing.Options, SelectOption{
		Value: optionValue(n),
		Label: optionLabel(n),
	})
}

// RemoveSelectOption removes the option at index from the scratch field.
func (b *Builder) RemoveSelectOption(index int) {
	if b.editing == nil || b.editing.Type != FieldSelect {
		return
	}
	if index < 0 || index >= len(b.editing.Options) {
		return
	}

	b.editing.Options = append(b.editing.Options[:index], b.editing.Options[index+1:]...)
}

// SetOptionValue updates one option's value on the scratch field.
func (b *Builder) SetOptionValue(index int, value string) {
	if b.editing == nil || b.editing.Type != FieldSelect {
		return
	}
	if index < 0 || index >= len(b.editing.Options) {
		return
	}

	b.editing.Options[index].Value = value
}

// SetOptionLabel updates one option's label on the scratch field.
func (b *Builder) SetOptionLabel(index int, label string) {
	if b.editing == nil || b.editing.Type != FieldSelect {
		return
	}
	if index < 0 || index >= len(b.editing.Options) {
		return
	}

	b.editing.Options[index].Label = label
}
