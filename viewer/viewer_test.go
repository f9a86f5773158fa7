package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodatos/geoforms/model"
)

func twoQuestionForm() model.FormDocument {
	return model.FormDocument{
		ID:    1,
		Title: "Encuesta Anual",
		Questions: []model.Question{
			{ID: "q1", Type: "text", Label: "Nombre", Order: 0},
			{ID: "q2", Type: "rating", Label: "Satisfacción", Order: 1},
		},
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 0, Skip(1, PageSize))
	assert.Equal(t, 20, Skip(2, PageSize))
	assert.Equal(t, 80, Skip(5, PageSize))
	assert.Equal(t, 0, Skip(0, PageSize), "page floors at 1")
	assert.Equal(t, 0, Skip(-3, PageSize))

	assert.Equal(t, 50, Skip(2, 50), "the configured size drives the offset")
	assert.Equal(t, 20, Skip(2, 0), "a bad size falls back to the default")
}

func TestTotalPages(t *testing.T) {
	form := twoQuestionForm()

	form.SubmissionCount = 0
	assert.Equal(t, 1, TotalPages(form, 0, PageSize))
	assert.Equal(t, 1, TotalPages(form, 15, PageSize), "falls back to loaded batch")

	form.SubmissionCount = 20
	assert.Equal(t, 1, TotalPages(form, 20, PageSize))

	form.SubmissionCount = 21
	assert.Equal(t, 2, TotalPages(form, 20, PageSize))

	form.SubmissionCount = 1250
	assert.Equal(t, 63, TotalPages(form, 20, PageSize))

	form.SubmissionCount = 100
	assert.Equal(t, 2, TotalPages(form, 50, 50), "page count follows the configured size")
	assert.Equal(t, 5, TotalPages(form, 20, 0))
}

func TestLabelFor(t *testing.T) {
	form := twoQuestionForm()

	assert.Equal(t, "Nombre", LabelFor(form, 1))
	assert.Equal(t, "Satisfacción", LabelFor(form, 2))
	assert.Equal(t, "Pregunta 3", LabelFor(form, 3))
	assert.Equal(t, "Pregunta 0", LabelFor(form, 0))
}

func TestDisplayValue(t *testing.T) {
	four := 4.0
	half := 2.5

	tests := []struct {
		name   string
		answer model.Answer
		want   string
	}{
		{"text", model.Answer{ValueText: "hola"}, "hola"},
		{"integer number", model.Answer{ValueNumber: &four}, "4"},
		{"decimal number", model.Answer{ValueNumber: &half}, "2.5"},
		{"json slice", model.Answer{ValueJSON: []string{"a", "b"}}, `["a","b"]`},
		{"empty", model.Answer{}, "-"},
		{"text wins over number", model.Answer{ValueText: "x", ValueNumber: &four}, "x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DisplayValue(tc.answer))
		})
	}
}

func TestAnswerCell(t *testing.T) {
	four := 4.0
	sub := model.Submission{
		Answers: []model.Answer{
			{QuestionID: 1, ValueText: "Ana"},
			{QuestionID: 2, ValueNumber: &four},
		},
	}

	assert.Equal(t, "Ana", AnswerCell(sub, 0))
	assert.Equal(t, "4", AnswerCell(sub, 1))
	assert.Equal(t, "-", AnswerCell(sub, 2), "unanswered question")
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	form := twoQuestionForm()
	form.SubmissionCount = 40

	subs := []model.Submission{
		{ID: 1, CreatedAt: now.Add(-2 * time.Hour)},            // today
		{ID: 2, CreatedAt: now.AddDate(0, 0, -3)},              // this week
		{ID: 3, CreatedAt: now.AddDate(0, 0, -10)},             // older
		{ID: 4, CreatedAt: now.Truncate(24 * time.Hour)},       // today, midnight
	}

	stats := ComputeStats(form, subs, now)
	assert.Equal(t, 40, stats.Total, "total comes from the server count")
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 3, stats.ThisWeek)

	form.SubmissionCount = 0
	stats = ComputeStats(form, subs, now)
	assert.Equal(t, len(subs), stats.Total, "falls back to the batch size")
}

func TestBuildExportRequest(t *testing.T) {
	req := BuildExportRequest(FormatCSV, DateFilter{})
	assert.Equal(t, "csv", req.Format)
	assert.True(t, req.IncludeMetadata, "metadata is always requested")
	assert.Nil(t, req.DateFrom)
	assert.Nil(t, req.DateTo)

	req = BuildExportRequest(FormatXLSX, DateFilter{From: "2026-01-01", To: "2026-06-30"})
	require.NotNil(t, req.DateFrom)
	require.NotNil(t, req.DateTo)
	assert.Equal(t, "2026-01-01", *req.DateFrom)
	assert.Equal(t, "2026-06-30", *req.DateTo)
}

func TestExportFilename(t *testing.T) {
	form := twoQuestionForm()
	assert.Equal(t, "Encuesta Anual_export.xlsx", ExportFilename(form, FormatXLSX))
	assert.Equal(t, "Encuesta Anual_export.json", ExportFilename(form, FormatJSON))
}

func TestMockSubmissionsDeterministic(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	a := MockSubmissions(now)
	b := MockSubmissions(now)
	require.Len(t, a, 10)
	assert.Equal(t, a, b)

	first := a[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, now.AddDate(0, 0, -1), first.CreatedAt)
	assert.Equal(t, "completed", first.Status)
	require.Len(t, first.Answers, 3)
	assert.Equal(t, "Respuesta 1", first.Answers[0].ValueText)
	require.NotNil(t, first.Answers[1].ValueNumber)
	assert.Equal(t, 2.0, *first.Answers[1].ValueNumber)
}
