// Package viewer maps raw submission records back onto a form's question
// labels for tabular display, and assembles export requests. Export
// execution itself stays on the backend.
package viewer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/geodatos/geoforms/model"
)

// PageSize is the default submission-list page size.
const PageSize = 20

// Skip returns the record offset requested for a 1-based page. The same
// size must drive the offset, the fetch limit and TotalPages, or adjacent
// pages overlap; sizes below 1 fall back to PageSize.
func Skip(page, size int) int {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = PageSize
	}
	return (page - 1) * size
}

// TotalPages derives the page count from the server-maintained submission
// count, falling back to the loaded batch size when the count is absent.
func TotalPages(form model.FormDocument, loaded, size int) int {
	if size < 1 {
		size = PageSize
	}
	total := form.SubmissionCount
	if total == 0 {
		total = loaded
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// LabelFor resolves a 1-based answer question id to the question's label.
// Ids that do not index into the form fall back to "Pregunta {id}".
func LabelFor(form model.FormDocument, questionID int) string {
	idx := questionID - 1
	if idx < 0 || idx >= len(form.Questions) {
		return fmt.Sprintf("Pregunta %d", questionID)
	}
	return form.Questions[idx].Label
}

// DisplayValue resolves an answer to display text: value_text, else
// value_number, else the JSON rendering of value_json, else "-".
func DisplayValue(a model.Answer) string {
	if a.ValueText != "" {
		return a.ValueText
	}
	if a.ValueNumber != nil {
		return strconv.FormatFloat(*a.ValueNumber, 'f', -1, 64)
	}
	if a.ValueJSON != nil {
		raw, err := json.Marshal(a.ValueJSON)
		if err == nil {
			return string(raw)
		}
	}
	return "-"
}

// AnswerCell returns the display value of the answer to the question at
// the given 0-based index, or "-" when the submission has no answer for it.
func AnswerCell(sub model.Submission, questionIndex int) string {
	for _, a := range sub.Answers {
		if a.QuestionID == questionIndex+1 {
			return DisplayValue(a)
		}
	}
	return "-"
}

// Stats summarizes a loaded submission batch for the header cards.
type Stats struct {
	Total    int
	Today    int
	ThisWeek int
}

// ComputeStats counts totals the way the responses screen shows them:
// overall total from the form's submission count (or the batch), plus
// same-day and trailing-seven-day counts from the loaded batch.
func ComputeStats(form model.FormDocument, subs []model.Submission, now time.Time) Stats {
	s := Stats{Total: form.SubmissionCount}
	if s.Total == 0 {
		s.Total = len(subs)
	}

	weekAgo := now.AddDate(0, 0, -7)
	y, m, d := now.Date()
	for _, sub := range subs {
		sy, sm, sd := sub.CreatedAt.Date()
		if sy == y && sm == m && sd == d {
			s.Today++
		}
		if !sub.CreatedAt.Before(weekAgo) {
			s.ThisWeek++
		}
	}
	return s
}
