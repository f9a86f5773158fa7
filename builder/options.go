package builder

import (
	"fmt"

	"github.com/geodatos/geoforms/model"
)

// OptionField names the editable field of an option row.
type OptionField int

const (
	OptionValue OptionField = iota
	OptionLabel
)

// AddOption appends a default option "opcion{N+1}" / "Opción {N+1}" to the
// question, where N is the current option count.
func (b *Builder) AddOption(questionID string) error {
	q, ok := b.doc.Question(questionID)
	if !ok {
		return model.NotFoundError{ID: questionID}
	}

	n := len(q.Options)
	opts := make([]model.Option, 0, n+1)
	opts = append(opts, q.Options...)
	opts = append(opts, model.Option{
		Value: fmt.Sprintf("opcion%d", n+1),
		Label: fmt.Sprintf("Opción %d", n+1),
	})

	return b.UpdateQuestion(questionID, model.QuestionPatch{Options: opts})
}

// UpdateOption overwrites one field of the option at index. Positions out
// of range are a no-op. Duplicate option values are not rejected; the wire
// format tolerates them.
func (b *Builder) UpdateOption(questionID string, index int, field OptionField, value string) error {
	q, ok := b.doc.Question(questionID)
	if !ok {
		return model.NotFoundError{ID: questionID}
	}
	if index < 0 || index >= len(q.Options) {
		return nil
	}

	opts := make([]model.Option, len(q.Options))
	copy(opts, q.Options)
	switch field {
	case OptionValue:
		opts[index].Value = value
	case OptionLabel:
		opts[index].Label = value
	}

	return b.UpdateQuestion(questionID, model.QuestionPatch{Options: opts})
}

// RemoveOption deletes the option at index. Positions out of range are a
// no-op.
func (b *Builder) RemoveOption(questionID string, index int) error {
	q, ok := b.doc.Question(questionID)
	if !ok {
		return model.NotFoundError{ID: questionID}
	}
	if index < 0 || index >= len(q.Options) {
		return nil
	}

	opts := make([]model.Option, 0, len(q.Options)-1)
	opts = append(opts, q.Options[:index]...)
	opts = append(opts, q.Options[index+1:]...)

	return b.UpdateQuestion(questionID, model.QuestionPatch{Options: opts})
}
