// Package builder sequences form document mutations in response to user
// actions. It owns the transient view state of the authoring UI (selection,
// modals, drag tracking), which is never serialized and never reaches the
// save collaborator.
package builder

import (
	"time"

	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/registry"
)

// Modal identifies the overlay currently open in the authoring UI.
type Modal int

const (
	ModalNone Modal = iota
	ModalQuestionTypes
	ModalSettings
)

// ViewState is UI-only state. It lives next to the document but is not part
// of it.
type ViewState struct {
	SelectedQuestion string
	ActiveModal      Modal
	ActiveCategory   registry.Category
	DraggedIndex     int
	PreviewMode      bool
}

// Builder mutates one form document through the model's pure operations,
// re-indexing question order after every structural change.
type Builder struct {
	doc  model.FormDocument
	view ViewState
	now  func() time.Time
}

// New wraps an existing document for editing.
func New(doc model.FormDocument) *Builder {
	return &Builder{
		doc:  doc,
		view: ViewState{ActiveCategory: registry.CategoryBasic, DraggedIndex: -1},
		now:  time.Now,
	}
}

// NewDraft starts the builder on an empty draft.
func NewDraft() *Builder {
	return New(model.NewDraft())
}

// Document returns the current document state.
func (b *Builder) Document() model.FormDocument {
	return b.doc
}

// View returns the current transient view state.
func (b *Builder) View() ViewState {
	return b.view
}

func (b *Builder) SetTitle(title string) { b.doc.Title = title }

func (b *Builder) SetDescription(desc string) { b.doc.Description = desc }

func (b *Builder) SetStatus(status model.FormStatus) { b.doc.Status = status }

// UpdateSettings replaces the form settings wholesale.
func (b *Builder) UpdateSettings(s model.Settings) {
	b.doc.Settings = s
}

// AddQuestion appends a question of the given type, selects it, and closes
// the type picker.
func (b *Builder) AddQuestion(questionType string) error {
	doc, err := model.AddQuestion(b.doc, questionType)
	if err != nil {
		return err
	}
	b.doc = model.ReindexQuestions(doc)
	b.view.SelectedQuestion = doc.Questions[len(doc.Questions)-1].ID
	b.view.ActiveModal = ModalNone
	return nil
}

// UpdateQuestion merges a patch into one question.
func (b *Builder) UpdateQuestion(id string, patch model.QuestionPatch) error {
	doc, err := model.UpdateQuestion(b.doc, id, patch)
	if err != nil {
		return err
	}
	b.doc = doc
	return nil
}

// DeleteQuestion removes a question and restores the dense-order invariant.
func (b *Builder) DeleteQuestion(id string) error {
	doc, err := model.DeleteQuestion(b.doc, id)
	if err != nil {
		return err
	}
	b.doc = model.ReindexQuestions(doc)
	if b.view.SelectedQuestion == id {
		b.view.SelectedQuestion = ""
	}
	return nil
}

// DuplicateQuestion appends a copy of a question to the end of the list.
func (b *Builder) DuplicateQuestion(id string) error {
	doc, err := model.DuplicateQuestion(b.doc, id)
	if err != nil {
		return err
	}
	b.doc = model.ReindexQuestions(doc)
	return nil
}

// MoveQuestion swaps the question at index with its neighbour in the given
// direction (-1 up, +1 down). Out-of-bounds targets are a no-op. Order is
// re-normalized for the whole list, not just the two swapped entries.
func (b *Builder) MoveQuestion(index, direction int) {
	target := index + direction
	if index < 0 || index >= len(b.doc.Questions) {
		return
	}
	if target < 0 || target >= len(b.doc.Questions) {
		return
	}

	qs := make([]model.Question, len(b.doc.Questions))
	copy(qs, b.doc.Questions)
	qs[index], qs[target] = qs[target], qs[index]
	b.doc.Questions = qs
	b.doc = model.ReindexQuestions(b.doc)
}

// MoveItem removes the question at from and re-inserts it at to. This is
// the device-independent form of a drag gesture.
func (b *Builder) MoveItem(from, to int) {
	n := len(b.doc.Questions)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	qs := make([]model.Question, 0, n)
	qs = append(qs, b.doc.Questions...)
	moved := qs[from]
	qs = append(qs[:from], qs[from+1:]...)

	rest := make([]model.Question, 0, n)
	rest = append(rest, qs[:to]...)
	rest = append(rest, moved)
	rest = append(rest, qs[to:]...)

	b.doc.Questions = rest
	b.doc = model.ReindexQuestions(b.doc)
}

// DragStart records the index being dragged.
func (b *Builder) DragStart(index int) {
	b.view.DraggedIndex = index
}

// DragOver moves the dragged question over index and re-targets the tracked
// drag index so successive drag-over events compose within one gesture.
func (b *Builder) DragOver(index int) {
	if b.view.DraggedIndex < 0 || b.view.DraggedIndex == index {
		return
	}
	b.MoveItem(b.view.DraggedIndex, index)
	b.view.DraggedIndex = index
}

// DragEnd clears drag tracking.
func (b *Builder) DragEnd() {
	b.view.DraggedIndex = -1
}

func (b *Builder) SelectQuestion(id string) {
	b.view.SelectedQuestion = id
}

func (b *Builder) ClearSelection() {
	b.view.SelectedQuestion = ""
}

// OpenTypePicker opens the add-question modal on the given category tab.
func (b *Builder) OpenTypePicker(category registry.Category) {
	b.view.ActiveModal = ModalQuestionTypes
	b.view.ActiveCategory = category
}

func (b *Builder) OpenSettings() {
	b.view.ActiveModal = ModalSettings
}

func (b *Builder) CloseModal() {
	b.view.ActiveModal = ModalNone
}

func (b *Builder) SetActiveCategory(category registry.Category) {
	b.view.ActiveCategory = category
}

func (b *Builder) TogglePreview() {
	b.view.PreviewMode = !b.view.PreviewMode
}

// ValidationGates reports which validation inputs the editor may render for
// a question, per the type's declared capabilities. Unknown types gate
// everything off except length constraints, matching their text fallback.
type ValidationGates struct {
	Length  bool
	Numeric bool
	Range   bool
}

func GatesFor(questionType string) ValidationGates {
	desc, ok := registry.Lookup(questionType)
	if !ok {
		return ValidationGates{Length: true}
	}
	return ValidationGates{
		Length:  desc.Capabilities.LengthValidation,
		Numeric: desc.Capabilities.NumericValidation,
		Range:   desc.Capabilities.Range,
	}
}
