package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/builder"
	"github.com/geodatos/geoforms/log"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/registry"
)

type builderMode int

const (
	modeList builderMode = iota
	modePicker
	modeEditLabel
	modeEditTitle
	modeSettings
	modeEditSuccess
)

// themes mirrors the selector offered by the settings modal.
var themes = []struct{ value, label string }{
	{"default", "Por defecto"},
	{"modern", "Moderno"},
	{"minimal", "Minimalista"},
	{"dark", "Oscuro"},
}

type saveDoneMsg struct {
	doc   model.FormDocument
	local bool
}

// builderModel drives the authoring screen. The document lives in the
// builder; only cursor/input state lives here.
type builderModel struct {
	app       app.App
	b         *builder.Builder
	persisted bool

	mode        builderMode
	cursor      int
	pickerCat   int
	pickerIdx   int
	settingsIdx int
	input       textinput.Model
	status      string
}

func newBuilderModel(a app.App, doc model.FormDocument, persisted bool) builderModel {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 50

	return builderModel{
		app:       a,
		b:         builder.New(doc),
		persisted: persisted,
		input:     input,
	}
}

func (m *builderModel) selectedQuestion() (model.Question, bool) {
	doc := m.b.Document()
	if m.cursor < 0 || m.cursor >= len(doc.Questions) {
		return model.Question{}, false
	}
	return doc.Questions[m.cursor], true
}

func (m *builderModel) syncSelection() {
	if q, ok := m.selectedQuestion(); ok {
		m.b.SelectQuestion(q.ID)
	} else {
		m.b.ClearSelection()
	}
}

// save runs only the network call. The snapshot is taken on the update
// loop before the command is scheduled, so the command goroutine never
// touches the builder; the persisted document is adopted back on the loop
// when saveDoneMsg arrives.
func (m builderModel) save(snapshot model.FormDocument) tea.Cmd {
	c := m.app.Client
	persisted := m.persisted
	return func() tea.Msg {
		var (
			saved model.FormDocument
			err   error
		)
		if persisted {
			saved, err = c.UpdateForm(context.Background(), snapshot)
		} else {
			saved, err = c.CreateForm(context.Background(), snapshot)
		}
		if err != nil {
			// backend unreachable: keep the local snapshot
			log.Warn("builder.save: backend unavailable, keeping local snapshot")
			return saveDoneMsg{doc: snapshot, local: true}
		}
		return saveDoneMsg{doc: saved}
	}
}

func (m builderModel) Update(msg tea.Msg) (builderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.local {
			m.status = "Guardado localmente (backend no disponible)"
		} else {
			m.b.Adopt(msg.doc)
			m.persisted = true
			m.status = fmt.Sprintf("Formulario %d guardado", msg.doc.ID)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modePicker:
			return m.updatePicker(msg)
		case modeSettings:
			return m.updateSettings(msg)
		case modeEditLabel, modeEditTitle, modeEditSuccess:
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m builderModel) updateList(msg tea.KeyMsg) (builderModel, tea.Cmd) {
	doc := m.b.Document()
	m.status = ""

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncSelection()
	case "down", "j":
		if m.cursor < len(doc.Questions)-1 {
			m.cursor++
		}
		m.syncSelection()
	case "K", "shift+up":
		m.b.MoveQuestion(m.cursor, -1)
		if m.cursor > 0 {
			m.cursor--
		}
	case "J", "shift+down":
		m.b.MoveQuestion(m.cursor, +1)
		if m.cursor < len(doc.Questions)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modePicker
		m.pickerCat, m.pickerIdx = 0, 0
		m.b.OpenTypePicker(registry.Categories()[0])
	case "d":
		if q, ok := m.selectedQuestion(); ok {
			if err := m.b.DeleteQuestion(q.ID); err == nil && m.cursor > 0 {
				m.cursor--
			}
			m.syncSelection()
		}
	case "c":
		if q, ok := m.selectedQuestion(); ok {
			if err := m.b.DuplicateQuestion(q.ID); err != nil {
				m.status = err.Error()
			}
		}
	case "r":
		if q, ok := m.selectedQuestion(); ok {
			req := !q.Required
			_ = m.b.UpdateQuestion(q.ID, model.QuestionPatch{Required: &req})
		}
	case "o":
		if q, ok := m.selectedQuestion(); ok && hasOptionCapability(q.Type) {
			_ = m.b.AddOption(q.ID)
		}
	case "O":
		if q, ok := m.selectedQuestion(); ok && len(q.Options) > 0 {
			_ = m.b.RemoveOption(q.ID, len(q.Options)-1)
		}
	case "e":
		if q, ok := m.selectedQuestion(); ok {
			m.mode = modeEditLabel
			m.input.SetValue(q.Label)
			m.input.Focus()
		}
	case "T":
		m.mode = modeEditTitle
		m.input.SetValue(doc.Title)
		m.input.Focus()
	case "S":
		switch doc.Status {
		case model.StatusDraft:
			m.b.SetStatus(model.StatusPublished)
		case model.StatusPublished:
			m.b.SetStatus(model.StatusArchived)
		default:
			m.b.SetStatus(model.StatusDraft)
		}
	case "v":
		m.b.TogglePreview()
		preview := m.b.Document()
		return m, func() tea.Msg { return openPreviewMsg{doc: preview} }
	case "C":
		m.mode = modeSettings
		m.settingsIdx = 0
		m.b.OpenSettings()
	case "s":
		if err := model.Validate(doc); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.save(m.b.Snapshot())
	case "esc":
		return m, func() tea.Msg { return backToFormsMsg{} }
	}
	return m, nil
}

func hasOptionCapability(questionType string) bool {
	desc, ok := registry.Lookup(questionType)
	return ok && desc.Capabilities.Options
}

func (m builderModel) updatePicker(msg tea.KeyMsg) (builderModel, tea.Cmd) {
	cats := registry.Categories()
	types := registry.ListByCategory(cats[m.pickerCat])

	switch msg.String() {
	case "left", "h":
		if m.pickerCat > 0 {
			m.pickerCat--
			m.pickerIdx = 0
			m.b.SetActiveCategory(cats[m.pickerCat])
		}
	case "right", "l", "tab":
		if m.pickerCat < len(cats)-1 {
			m.pickerCat++
			m.pickerIdx = 0
			m.b.SetActiveCategory(cats[m.pickerCat])
		}
	case "up", "k":
		if m.pickerIdx > 0 {
			m.pickerIdx--
		}
	case "down", "j":
		if m.pickerIdx < len(types)-1 {
			m.pickerIdx++
		}
	case "enter":
		if m.pickerIdx < len(types) {
			if err := m.b.AddQuestion(types[m.pickerIdx].Type); err != nil {
				m.status = err.Error()
			} else {
				m.cursor = len(m.b.Document().Questions) - 1
			}
		}
		m.mode = modeList
	case "esc":
		m.b.CloseModal()
		m.mode = modeList
	}
	return m, nil
}

func (m builderModel) updateSettings(msg tea.KeyMsg) (builderModel, tea.Cmd) {
	s := m.b.Document().Settings

	switch msg.String() {
	case "up", "k":
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
	case "down", "j":
		if m.settingsIdx < 3 {
			m.settingsIdx++
		}
	case "enter", " ":
		switch m.settingsIdx {
		case 0:
			s.Theme = nextTheme(s.Theme)
			m.b.UpdateSettings(s)
		case 1:
			s.ShowProgress = !s.ShowProgress
			m.b.UpdateSettings(s)
		case 2:
			s.AllowSaveDraft = !s.AllowSaveDraft
			m.b.UpdateSettings(s)
		case 3:
			m.mode = modeEditSuccess
			m.input.SetValue(s.SuccessMessage)
			m.input.Focus()
		}
	case "esc":
		m.b.CloseModal()
		m.mode = modeList
	}
	return m, nil
}

func nextTheme(current string) string {
	for i, t := range themes {
		if t.value == current {
			return themes[(i+1)%len(themes)].value
		}
	}
	return themes[0].value
}

func themeLabel(value string) string {
	for _, t := range themes {
		if t.value == value {
			return t.label
		}
	}
	return value
}

func (m builderModel) updateInput(msg tea.KeyMsg) (builderModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeEditTitle:
			m.b.SetTitle(value)
		case modeEditSuccess:
			s := m.b.Document().Settings
			s.SuccessMessage = value
			m.b.UpdateSettings(s)
		default:
			if q, ok := m.selectedQuestion(); ok {
				_ = m.b.UpdateQuestion(q.ID, model.QuestionPatch{Label: &value})
			}
		}
		m.input.Blur()
		if m.mode == modeEditSuccess {
			m.mode = modeSettings
		} else {
			m.mode = modeList
		}
		return m, nil
	case "esc":
		m.input.Blur()
		if m.mode == modeEditSuccess {
			m.mode = modeSettings
		} else {
			m.mode = modeList
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m builderModel) View(s Styles) string {
	doc := m.b.Document()

	title := doc.Title
	if title == "" {
		title = "Sin título"
	}
	header := s.Title.Render(title) + "  " + s.BadgeWarn.Render("["+statusLabel(doc.Status)+"]")

	switch m.mode {
	case modePicker:
		return m.pickerView(s)
	case modeSettings:
		return m.settingsView(s)
	case modeEditSuccess:
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("Mensaje de éxito"), m.input.View(),
			s.Help.Render("enter: guardar • esc: cancelar")))
	case modeEditLabel:
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("Etiqueta de la pregunta"), m.input.View(),
			s.Help.Render("enter: guardar • esc: cancelar")))
	case modeEditTitle:
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render("Título del formulario"), m.input.View(),
			s.Help.Render("enter: guardar • esc: cancelar")))
	}

	var list []string
	list = append(list, s.Subtitle.Render(fmt.Sprintf("Preguntas (%d)", len(doc.Questions))))
	if len(doc.Questions) == 0 {
		list = append(list, s.Muted.Render("No hay preguntas. Pulsa 'a' para agregar"))
	}
	for i, q := range doc.Questions {
		typeLabel := q.Type
		if desc, ok := registry.Lookup(q.Type); ok {
			typeLabel = desc.Label
		}
		line := fmt.Sprintf("%d. %s %s", q.Order+1, q.Label, s.Muted.Render("("+typeLabel+")"))
		if q.Required {
			line += s.Required.Render(" *")
		}
		if i == m.cursor {
			line = s.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		list = append(list, line)
	}

	editor := m.editorView(s)

	parts := []string{header, "", lipgloss.JoinHorizontal(lipgloss.Top,
		s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, list...)),
		" ",
		editor,
	)}
	if m.status != "" {
		parts = append(parts, s.Success.Render(m.status))
	}
	parts = append(parts, s.Help.Render(
		"a: agregar • e: etiqueta • d: eliminar • c: duplicar • r: obligatorio • o/O: opciones\n"+
			"K/J: mover • T: título • S: estado • C: configuración • v: vista previa • s: guardar • esc: volver"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m builderModel) settingsView(s Styles) string {
	cfg := m.b.Document().Settings

	onOff := func(v bool) string {
		if v {
			return "sí"
		}
		return "no"
	}
	rows := []string{
		"Tema: " + themeLabel(cfg.Theme),
		"Mostrar barra de progreso: " + onOff(cfg.ShowProgress),
		"Permitir guardar borrador: " + onOff(cfg.AllowSaveDraft),
		"Mensaje de éxito: " + cfg.SuccessMessage,
	}

	parts := []string{s.Title.Render("Configuración del Formulario"), ""}
	for i, row := range rows {
		if i == m.settingsIdx {
			parts = append(parts, s.Selected.Render("> "+row))
		} else {
			parts = append(parts, "  "+row)
		}
	}
	parts = append(parts, "", s.Help.Render("↑/↓: campo • enter: cambiar • esc: cerrar"))
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m builderModel) editorView(s Styles) string {
	q, ok := m.selectedQuestion()
	if !ok {
		return s.Panel.Render(s.Muted.Render("Selecciona una pregunta\npara editarla"))
	}

	gates := builder.GatesFor(q.Type)
	var parts []string
	parts = append(parts, s.Subtitle.Render("Editar Pregunta"))
	parts = append(parts, "Etiqueta: "+q.Label)
	obligatorio := "no"
	if q.Required {
		obligatorio = "sí"
	}
	parts = append(parts, "Obligatorio: "+obligatorio)

	if hasOptionCapability(q.Type) {
		parts = append(parts, "Opciones:")
		for _, opt := range q.Options {
			parts = append(parts, fmt.Sprintf("  • %s (%s)", opt.Label, opt.Value))
		}
	}
	if gates.Range {
		min, max := 1.0, 5.0
		if q.MinValue != nil {
			min = *q.MinValue
		}
		if q.MaxValue != nil {
			max = *q.MaxValue
		}
		parts = append(parts, fmt.Sprintf("Rango: %v a %v", min, max))
	}
	if gates.Length {
		parts = append(parts, s.Muted.Render("Validación: longitud mín/máx"))
	}
	if gates.Numeric {
		parts = append(parts, s.Muted.Render("Validación: valor mín/máx"))
	}

	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m builderModel) pickerView(s Styles) string {
	cats := registry.Categories()

	var tabs []string
	for i, c := range cats {
		label := registry.CategoryLabel(c)
		if i == m.pickerCat {
			tabs = append(tabs, s.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, s.Muted.Render(" "+label+" "))
		}
	}

	var rows []string
	rows = append(rows, s.Title.Render("Agregar Pregunta"), strings.Join(tabs, " "), "")
	for i, d := range registry.ListByCategory(cats[m.pickerCat]) {
		line := d.Label
		if i == m.pickerIdx {
			line = s.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	rows = append(rows, "", s.Help.Render("←/→: categoría • ↑/↓: tipo • enter: agregar • esc: cancelar"))
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
