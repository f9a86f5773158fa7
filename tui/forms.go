package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/log"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/templates"
)

type formsLoadedMsg struct {
	forms []model.FormDocument
}

type templatesLoadedMsg struct {
	tpls []templates.Template
}

// formsModel lists the user's forms and launches the other screens. When
// the backend cannot be reached the list degrades to local mock data.
type formsModel struct {
	app          app.App
	table        table.Model
	forms        []model.FormDocument
	templates    []templates.Template
	pickTemplate bool
	templateIdx  int
}

func newFormsModel(a app.App) formsModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 14},
			{Title: "Título", Width: 34},
			{Title: "Estado", Width: 10},
			{Title: "Respuestas", Width: 10},
			{Title: "Actualizado", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return formsModel{app: a, table: t, templates: templates.All()}
}

// loadTemplates refreshes the template catalog from the backend, keeping
// the built-in catalog when the call fails.
func (m formsModel) loadTemplates() tea.Cmd {
	c := m.app.Client
	return func() tea.Msg {
		tpls, err := c.ListTemplates(context.Background())
		if err != nil || len(tpls) == 0 {
			return templatesLoadedMsg{tpls: templates.All()}
		}
		return templatesLoadedMsg{tpls: tpls}
	}
}

func (m formsModel) load() tea.Cmd {
	c := m.app.Client
	return func() tea.Msg {
		forms, err := c.ListForms(context.Background())
		if err != nil {
			log.Debug("forms.load: falling back to mock data")
			return formsLoadedMsg{forms: mockForms()}
		}
		return formsLoadedMsg{forms: forms}
	}
}

// mockForms is the deterministic catalog shown without a backend.
func mockForms() []model.FormDocument {
	mk := func(id int64, title string, status model.FormStatus, count int, created string) model.FormDocument {
		createdAt, _ := time.Parse("2006-01-02", created)
		doc := model.NewDraft()
		doc.ID = id
		doc.Title = title
		doc.Status = status
		doc.SubmissionCount = count
		doc.CreatedAt = createdAt
		doc.UpdatedAt = createdAt
		return doc
	}
	return []model.FormDocument{
		mk(1, "Encuesta de Satisfacción", model.StatusPublished, 1250, "2026-01-15"),
		mk(2, "Registro de Eventos", model.StatusPublished, 890, "2026-01-20"),
		mk(3, "Feedback de Producto", model.StatusArchived, 654, "2026-02-01"),
		mk(4, "Solicitud de Soporte", model.StatusPublished, 432, "2026-02-05"),
		mk(5, "Evaluación de Servicio", model.StatusDraft, 321, "2026-02-10"),
		mk(6, "Registro de Capacitación", model.StatusPublished, 198, "2026-02-12"),
	}
}

func statusLabel(s model.FormStatus) string {
	switch s {
	case model.StatusDraft:
		return "Borrador"
	case model.StatusPublished:
		return "Publicado"
	case model.StatusArchived:
		return "Archivado"
	}
	return string(s)
}

func (m formsModel) selected() (model.FormDocument, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.forms) {
		return model.FormDocument{}, false
	}
	return m.forms[idx], true
}

func (m formsModel) Update(msg tea.Msg) (formsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formsLoadedMsg:
		m.forms = msg.forms
		rows := make([]table.Row, len(msg.forms))
		for i, f := range msg.forms {
			rows[i] = table.Row{
				strconv.FormatInt(f.ID, 10),
				f.Title,
				statusLabel(f.Status),
				strconv.Itoa(f.SubmissionCount),
				f.UpdatedAt.Format("2006-01-02 15:04"),
			}
		}
		m.table.SetRows(rows)
		return m, nil

	case templatesLoadedMsg:
		m.templates = msg.tpls
		if m.templateIdx >= len(msg.tpls) {
			m.templateIdx = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.pickTemplate {
			return m.updateTemplatePicker(msg)
		}

		switch msg.String() {
		case "n":
			return m, func() tea.Msg {
				return openBuilderMsg{doc: model.NewDraft()}
			}
		case "t":
			m.pickTemplate = true
			m.templateIdx = 0
			return m, m.loadTemplates()
		case "enter", "e":
			if f, ok := m.selected(); ok {
				return m, func() tea.Msg { return openBuilderMsg{doc: f, persisted: true} }
			}
		case "p":
			if f, ok := m.selected(); ok {
				return m, func() tea.Msg { return openPreviewMsg{doc: f} }
			}
		case "r":
			if f, ok := m.selected(); ok {
				return m, func() tea.Msg { return openResponsesMsg{form: f} }
			}
		case "R":
			return m, m.load()
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m formsModel) updateTemplatePicker(msg tea.KeyMsg) (formsModel, tea.Cmd) {
	all := m.templates
	switch msg.String() {
	case "up", "k":
		if m.templateIdx > 0 {
			m.templateIdx--
		}
	case "down", "j":
		if m.templateIdx < len(all)-1 {
			m.templateIdx++
		}
	case "enter":
		m.pickTemplate = false
		tpl := all[m.templateIdx]
		return m, func() tea.Msg {
			return openBuilderMsg{doc: tpl.Instantiate()}
		}
	case "esc":
		m.pickTemplate = false
	}
	return m, nil
}

func (m formsModel) View(s Styles) string {
	if m.pickTemplate {
		parts := []string{s.Title.Render("Nueva desde plantilla"), ""}
		for i, t := range m.templates {
			line := fmt.Sprintf("%s: %s", t.Name, t.Description)
			if i == m.templateIdx {
				line = s.Selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			parts = append(parts, line)
		}
		parts = append(parts, "", s.Help.Render("enter: usar plantilla • esc: cancelar"))
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	header := s.Title.Render("Gestión de Formularios")
	sub := s.Subtitle.Render("Crea y administra los formularios de la aplicación")
	help := s.Help.Render("enter: editar • p: vista previa • r: respuestas • n: nuevo • t: plantilla • R: recargar • q: salir")
	return lipgloss.JoinVertical(lipgloss.Left, header, sub, "", m.table.View(), "", help)
}
