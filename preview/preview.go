// Package preview runs a form document as an interactive questionnaire:
// paginated question walk, answer collection, and a terminal submitted
// state. It is presentation-agnostic; the shell decides how widgets look.
package preview

import (
	"sort"

	"github.com/geodatos/geoforms/model"
)

// PageQuestion is a question placed on a page, carrying its index in the
// owning form's question list. Answers are keyed by that index.
type PageQuestion struct {
	model.Question
	Index int
}

// Session walks one respondent through a read-only form document.
type Session struct {
	doc       model.FormDocument
	pages     [][]PageQuestion
	current   int
	answers   map[int]any
	submitted bool
}

// NewSession groups the document's questions into pages. Questions carry an
// optional page attribute defaulting to 0; pages appear in ascending page
// order and page 0 always exists even when empty.
func NewSession(doc model.FormDocument) *Session {
	grouped := map[int][]PageQuestion{0: nil}
	for i, q := range doc.Questions {
		page := q.Page
		if page < 0 {
			page = 0
		}
		grouped[page] = append(grouped[page], PageQuestion{Question: q, Index: i})
	}

	keys := make([]int, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	pages := make([][]PageQuestion, 0, len(keys))
	for _, k := range keys {
		pages = append(pages, grouped[k])
	}

	return &Session{
		doc:     doc,
		pages:   pages,
		answers: map[int]any{},
	}
}

// Document returns the form being rendered.
func (s *Session) Document() model.FormDocument {
	return s.doc
}

// PageCount returns the number of pages.
func (s *Session) PageCount() int {
	return len(s.pages)
}

// CurrentPage returns the 0-based page the respondent is on.
func (s *Session) CurrentPage() int {
	return s.current
}

// CurrentQuestions returns the questions of the current page.
func (s *Session) CurrentQuestions() []PageQuestion {
	return s.pages[s.current]
}

// ShowPrev reports whether a Previous control is rendered: hidden on the
// first page and on single-page forms.
func (s *Session) ShowPrev() bool {
	return len(s.pages) > 1 && s.current > 0
}

// ShowNext reports whether a Next control is rendered; on the last page it
// gives way to Submit.
func (s *Session) ShowNext() bool {
	return s.current < len(s.pages)-1
}

// ShowSubmit reports whether the Submit control is rendered.
func (s *Session) ShowSubmit() bool {
	return s.current == len(s.pages)-1
}

// ShowPageDots reports whether the page indicator is rendered.
func (s *Session) ShowPageDots() bool {
	return len(s.pages) > 1
}

// Next advances one page; it stops at the last page. The walk is strictly
// linear, with no skip logic based on answers.
func (s *Session) Next() {
	if s.current < len(s.pages)-1 {
		s.current++
	}
}

// Prev goes back one page, stopping at the first.
func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

// Submit moves the session into its terminal submitted state.
func (s *Session) Submit() {
	s.submitted = true
}

// Submitted reports whether the thank-you state is showing.
func (s *Session) Submitted() bool {
	return s.submitted
}

// SuccessMessage returns the text shown in the submitted state.
func (s *Session) SuccessMessage() string {
	return s.doc.Settings.SuccessMessage
}

// Restart clears all collected answers and returns to the first page.
func (s *Session) Restart() {
	s.submitted = false
	s.current = 0
	s.answers = map[int]any{}
}

// SetAnswer stores the raw answer for the question at the given index.
func (s *Session) SetAnswer(index int, value any) {
	s.answers[index] = value
}

// Answer returns the collected answer for a question index.
func (s *Session) Answer(index int) (any, bool) {
	v, ok := s.answers[index]
	return v, ok
}

// ToggleOption accumulates or removes a multi-select value: checking adds
// it to the collected slice, unchecking filters it out.
func (s *Session) ToggleOption(index int, value string) {
	current, _ := s.answers[index].([]string)

	for i, v := range current {
		if v == value {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			s.answers[index] = next
			return
		}
	}

	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, value)
	s.answers[index] = next
}

// SetRating stores a star rating clamped to [1, max].
func (s *Session) SetRating(index, stars int, q model.Question) {
	max := 5
	if q.MaxValue != nil {
		max = int(*q.MaxValue)
	}
	if stars < 1 {
		stars = 1
	}
	if stars > max {
		stars = max
	}
	s.answers[index] = stars
}

// SetScale stores a numeric-scale pick clamped to [min, max].
func (s *Session) SetScale(index, value int, q model.Question) {
	min, max := 1, 10
	if q.MinValue != nil {
		min = int(*q.MinValue)
	}
	if q.MaxValue != nil {
		max = int(*q.MaxValue)
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	s.answers[index] = value
}

// BuildSubmission converts the collected answers into wire-format answer
// records with 1-based question ids, in question order.
func (s *Session) BuildSubmission() []model.Answer {
	indexes := make([]int, 0, len(s.answers))
	for i := range s.answers {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	out := make([]model.Answer, 0, len(indexes))
	for _, i := range indexes {
		a := model.Answer{QuestionID: i + 1}
		switch v := s.answers[i].(type) {
		case string:
			if v == "" {
				continue
			}
			a.ValueText = v
		case int:
			n := float64(v)
			a.ValueNumber = &n
		case float64:
			n := v
			a.ValueNumber = &n
		case []string:
			if len(v) == 0 {
				continue
			}
			a.ValueJSON = v
		default:
			continue
		}
		out = append(out, a)
	}
	return out
}
