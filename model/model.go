package model

import "time"

// FormStatus is a form's lifecycle state.
type FormStatus string

const (
	StatusDraft     FormStatus = "draft"
	StatusPublished FormStatus = "published"
	StatusArchived  FormStatus = "archived"
)

// Option is one choice of a select/rating/ranking question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one field definition within a form document.
type Question struct {
	ID          string             `json:"id"`
	Type        string             `json:"question_type"`
	Label       string             `json:"label"`
	Description string             `json:"description,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
	Required    bool               `json:"required"`
	Order       int                `json:"order"`
	Page        int                `json:"page,omitempty"`
	Options     []Option           `json:"options"`
	MinValue    *float64           `json:"min_value,omitempty"`
	MaxValue    *float64           `json:"max_value,omitempty"`
	Validation  map[string]float64 `json:"validation,omitempty"`
}

// Settings holds per-form presentation and submission options.
type Settings struct {
	Theme          string `json:"theme"`
	ShowProgress   bool   `json:"show_progress"`
	AllowSaveDraft bool   `json:"allow_save_draft"`
	SuccessMessage string `json:"success_message"`
}

// DefaultSettings returns the settings a newly created draft starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:          "default",
		ShowProgress:   true,
		AllowSaveDraft: true,
		SuccessMessage: "¡Gracias por completar el formulario!",
	}
}

// FormDocument is the persisted definition of a questionnaire. ID is zero
// until the first save. SubmissionCount is maintained by the server and is
// read-only here.
type FormDocument struct {
	ID              int64      `json:"id,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          FormStatus `json:"status"`
	Questions       []Question `json:"questions"`
	Settings        Settings   `json:"settings"`
	CreatedAt       time.Time  `json:"created_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at,omitempty"`
	SubmissionCount int        `json:"submission_count"`
}

// NewDraft returns an empty draft document with default settings.
func NewDraft() FormDocument {
	return FormDocument{
		Status:    StatusDraft,
		Questions: []Question{},
		Settings:  DefaultSettings(),
	}
}

// Question returns the question with the given id, or false.
func (doc FormDocument) Question(id string) (Question, bool) {
	for _, q := range doc.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Answer is one answered question within a submission. QuestionID is the
// 1-based index of the question in the owning form; exactly one of the
// value fields is populated.
type Answer struct {
	QuestionID  int      `json:"question_id"`
	ValueText   string   `json:"value_text,omitempty"`
	ValueNumber *float64 `json:"value_number,omitempty"`
	ValueJSON   any      `json:"value_json,omitempty"`
}

// Submission is one completed response to a form.
type Submission struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	UserID    *int64    `json:"user_id"`
	Answers   []Answer  `json:"answers"`
}
