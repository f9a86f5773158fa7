// Package templates ships the built-in form templates used to seed new
// drafts. Instantiating a template produces a normal draft document with
// fresh question ids, so the builder treats it like any other form.
package templates

import (
	"strings"

	"github.com/geodatos/geoforms/model"
)

// Template is a canned form definition.
type Template struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Form        model.FormDocument `json:"template_data"`
}

// Instantiate clones the template into a fresh draft: new question ids,
// dense order, default settings, zero id and timestamps.
func (t Template) Instantiate() model.FormDocument {
	draft := model.NewDraft()
	draft.Title = t.Form.Title
	draft.Description = t.Form.Description

	for _, q := range t.Form.Questions {
		doc, err := model.AddQuestion(draft, q.Type)
		if err != nil {
			// unknown type in a canned template: skip it
			continue
		}
		draft = doc
		added := draft.Questions[len(draft.Questions)-1]

		patch := model.QuestionPatch{
			Label:    &q.Label,
			Required: &q.Required,
		}
		if len(q.Options) > 0 {
			opts := make([]model.Option, len(q.Options))
			copy(opts, q.Options)
			patch.Options = opts
		}
		if q.MinValue != nil {
			patch.MinValue = q.MinValue
		}
		if q.MaxValue != nil {
			patch.MaxValue = q.MaxValue
		}
		draft, _ = model.UpdateQuestion(draft, added.ID, patch)
	}

	return model.ReindexQuestions(draft)
}

// All returns the built-in catalog.
func All() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// ByCategory filters the catalog.
func ByCategory(category string) []Template {
	var out []Template
	for _, t := range builtin {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Search matches template names case-insensitively.
func Search(query string) []Template {
	var out []Template
	q := strings.ToLower(query)
	for _, t := range builtin {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}
