package model

import (
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/geodatos/geoforms/registry"
)

// Document operations are pure: they return a new document and leave the
// receiver's slices untouched, so callers can keep references to the old
// state (undo, preview snapshots).

func newQuestionID() string {
	return "q_" + uuid.Must(uuid.NewV4()).String()
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

func cloneQuestion(q Question) Question {
	if q.Options != nil {
		opts := make([]Option, len(q.Options))
		copy(opts, q.Options)
		q.Options = opts
	}
	if q.Validation != nil {
		v := make(map[string]float64, len(q.Validation))
		for k, val := range q.Validation {
			v[k] = val
		}
		q.Validation = v
	}
	if q.MinValue != nil {
		min := *q.MinValue
		q.MinValue = &min
	}
	if q.MaxValue != nil {
		max := *q.MaxValue
		q.MaxValue = &max
	}
	return q
}

// AddQuestion appends a new question of the given type with type-appropriate
// defaults. Fails with UnknownTypeError for unregistered types.
func AddQuestion(doc FormDocument, questionType string) (FormDocument, error) {
	desc, ok := registry.Lookup(questionType)
	if !ok {
		return doc, UnknownTypeError{Type: questionType}
	}

	q := Question{
		ID:         newQuestionID(),
		Type:       questionType,
		Label:      fmt.Sprintf("Nueva pregunta %s", desc.Label),
		Required:   false,
		Order:      len(doc.Questions),
		Options:    []Option{},
		Validation: map[string]float64{},
	}
	switch questionType {
	case "select_one", "select_multiple":
		q.Options = []Option{
			{Value: "opcion1", Label: "Opción 1"},
			{Value: "opcion2", Label: "Opción 2"},
		}
	case "rating":
		min, max := 1.0, 5.0
		q.MinValue, q.MaxValue = &min, &max
	}

	doc.Questions = append(cloneQuestions(doc.Questions), q)
	return doc, nil
}

// QuestionPatch carries the fields UpdateQuestion may change. Nil fields are
// left as they are; id and order are never touched through a patch.
type QuestionPatch struct {
	Label       *string
	Description *string
	Placeholder *string
	Required    *bool
	Page        *int
	Options     []Option
	MinValue    *float64
	MaxValue    *float64
	Validation  map[string]float64
}

func (p QuestionPatch) apply(q Question) Question {
	q = cloneQuestion(q)
	if p.Label != nil {
		q.Label = *p.Label
	}
	if p.Description != nil {
		q.Description = *p.Description
	}
	if p.Placeholder != nil {
		q.Placeholder = *p.Placeholder
	}
	if p.Required != nil {
		q.Required = *p.Required
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Options != nil {
		q.Options = p.Options
	}
	if p.MinValue != nil {
		min := *p.MinValue
		q.MinValue = &min
	}
	if p.MaxValue != nil {
		max := *p.MaxValue
		q.MaxValue = &max
	}
	if p.Validation != nil {
		q.Validation = p.Validation
	}
	return q
}

// UpdateQuestion merges a patch into the question with the given id. Fails
// with NotFoundError when the id is absent.
func UpdateQuestion(doc FormDocument, id string, patch QuestionPatch) (FormDocument, error) {
	qs := cloneQuestions(doc.Questions)
	for i, q := range qs {
		if q.ID == id {
			qs[i] = patch.apply(q)
			doc.Questions = qs
			return doc, nil
		}
	}
	return doc, NotFoundError{ID: id}
}

// DeleteQuestion removes the question with the given id. Remaining order
// values are NOT compacted here; the builder re-indexes after every
// structural change.
func DeleteQuestion(doc FormDocument, id string) (FormDocument, error) {
	for i, q := range doc.Questions {
		if q.ID == id {
			qs := cloneQuestions(doc.Questions)
			doc.Questions = append(qs[:i], qs[i+1:]...)
			return doc, nil
		}
	}
	return doc, NotFoundError{ID: id}
}

// DuplicateQuestion appends a copy of the question with a fresh id and the
// label suffixed " (Copia)". The copy goes to the end of the list, not next
// to the original.
func DuplicateQuestion(doc FormDocument, id string) (FormDocument, error) {
	orig, ok := doc.Question(id)
	if !ok {
		return doc, NotFoundError{ID: id}
	}

	dup := cloneQuestion(orig)
	dup.ID = newQuestionID()
	dup.Label = orig.Label + " (Copia)"
	dup.Order = len(doc.Questions)

	doc.Questions = append(cloneQuestions(doc.Questions), dup)
	return doc, nil
}

// ReindexQuestions re-assigns Order = position for every question,
// restoring the dense 0..n-1 invariant.
func ReindexQuestions(doc FormDocument) FormDocument {
	qs := cloneQuestions(doc.Questions)
	for i := range qs {
		qs[i].Order = i
	}
	doc.Questions = qs
	return doc
}
