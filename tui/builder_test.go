package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/builder"
	"github.com/geodatos/geoforms/client"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/registry"
	"github.com/geodatos/geoforms/session"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m builderModel, keys ...string) builderModel {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func newTestBuilder() builderModel {
	doc := model.NewDraft()
	doc.Title = "Encuesta"
	return newBuilderModel(app.App{}, doc, false)
}

func TestBuilderAddQuestionThroughPicker(t *testing.T) {
	m := newTestBuilder()

	m = press(t, m, "a")
	assert.Equal(t, modePicker, m.mode)

	m = press(t, m, "enter")
	assert.Equal(t, modeList, m.mode)

	doc := m.b.Document()
	require.Len(t, doc.Questions, 1)
	first := registry.ListByCategory(registry.CategoryBasic)[0]
	assert.Equal(t, first.Type, doc.Questions[0].Type)
	assert.Equal(t, 0, m.cursor, "cursor lands on the new question")
}

func TestBuilderPickerCategoryTabs(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "right", "right", "enter")

	doc := m.b.Document()
	require.Len(t, doc.Questions, 1)
	third := registry.Categories()[2]
	assert.Equal(t, third, registry.ListByCategory(third)[0].Category)
	got, _ := registry.Lookup(doc.Questions[0].Type)
	assert.Equal(t, third, got.Category)
}

func TestBuilderPickerCancel(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "esc")

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.b.Document().Questions)
}

func TestBuilderDeleteMovesCursorUp(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "enter", "a", "enter", "j", "d")

	assert.Len(t, m.b.Document().Questions, 1)
	assert.Equal(t, 0, m.cursor)
}

func TestBuilderMoveKeysKeepDenseOrder(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "enter", "a", "enter", "a", "enter")
	first := m.b.Document().Questions[0].ID

	m = press(t, m, "k", "k", "J") // cursor to top, move down

	doc := m.b.Document()
	assert.Equal(t, first, doc.Questions[1].ID)
	for i, q := range doc.Questions {
		assert.Equal(t, i, q.Order)
	}
	assert.Equal(t, 1, m.cursor, "cursor follows the moved question")
}

func TestBuilderEditLabel(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "enter", "e")
	require.Equal(t, modeEditLabel, m.mode)

	m = press(t, m, "X", "enter")
	assert.Equal(t, modeList, m.mode)
	// the input was prefilled with the default label
	assert.Contains(t, m.b.Document().Questions[0].Label, "X")
}

func TestBuilderRequiredToggle(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "enter", "r")
	assert.True(t, m.b.Document().Questions[0].Required)

	m = press(t, m, "r")
	assert.False(t, m.b.Document().Questions[0].Required)
}

func TestBuilderOptionKeysOnlyApplyToOptionTypes(t *testing.T) {
	m := newTestBuilder()
	m = press(t, m, "a", "enter", "o") // a basic text question
	assert.Empty(t, m.b.Document().Questions[0].Options)
}

func TestBuilderValidationBlocksSave(t *testing.T) {
	m := newTestBuilder()
	m.b.SetTitle("")

	var cmd tea.Cmd
	m, cmd = m.Update(key("s"))
	assert.Nil(t, cmd, "invalid documents never reach the save collaborator")
	assert.Contains(t, m.status, "title is required")
}

func TestBuilderSaveSnapshotIsolatedFromLaterEdits(t *testing.T) {
	var received model.FormDocument
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		reply := received
		reply.ID = 99
		_ = json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	a := app.App{Client: client.New(srv.URL, session.New("tok123"))}
	doc := model.NewDraft()
	doc.Title = "Encuesta"
	m := newBuilderModel(a, doc, false)

	var cmd tea.Cmd
	m, cmd = m.Update(key("s"))
	require.NotNil(t, cmd)

	// edits made after the keypress must not leak into the request
	m.b.SetTitle("Editada")

	msg := cmd()
	done, ok := msg.(saveDoneMsg)
	require.True(t, ok)
	require.False(t, done.local)
	assert.Equal(t, "Encuesta", received.Title)

	m, _ = m.Update(done)
	assert.True(t, m.persisted)
	assert.Equal(t, int64(99), m.b.Document().ID, "persisted state is adopted on the update loop")
	assert.Equal(t, "Formulario 99 guardado", m.status)
}

func TestBuilderSaveFallsBackToLocalSnapshot(t *testing.T) {
	a := app.App{Client: client.New("http://127.0.0.1:1", session.New("tok123"))}
	doc := model.NewDraft()
	doc.Title = "Encuesta"
	m := newBuilderModel(a, doc, false)

	var cmd tea.Cmd
	m, cmd = m.Update(key("s"))
	require.NotNil(t, cmd)

	done, ok := cmd().(saveDoneMsg)
	require.True(t, ok)
	assert.True(t, done.local)
	assert.Equal(t, "Encuesta", done.doc.Title)

	m, _ = m.Update(done)
	assert.False(t, m.persisted)
	assert.Zero(t, m.b.Document().ID, "a failed save adopts nothing")
}

func TestBuilderSettingsMode(t *testing.T) {
	m := newTestBuilder()

	m = press(t, m, "C")
	require.Equal(t, modeSettings, m.mode)
	assert.Equal(t, builder.ModalSettings, m.b.View().ActiveModal)

	m = press(t, m, "enter") // cycle the theme
	assert.Equal(t, "modern", m.b.Document().Settings.Theme)

	m = press(t, m, "j", "enter")
	assert.False(t, m.b.Document().Settings.ShowProgress)

	m = press(t, m, "j", "enter")
	assert.False(t, m.b.Document().Settings.AllowSaveDraft)

	m = press(t, m, "j", "enter")
	require.Equal(t, modeEditSuccess, m.mode)
	m = press(t, m, "!", "enter")
	assert.Equal(t, modeSettings, m.mode)
	assert.Contains(t, m.b.Document().Settings.SuccessMessage, "!")

	m = press(t, m, "esc")
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, builder.ModalNone, m.b.View().ActiveModal)
}
