package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/client"
	"github.com/geodatos/geoforms/log"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/viewer"
)

type submissionsLoadedMsg struct {
	subs []model.Submission
	mock bool
}

type submissionDeletedMsg struct {
	id  int64
	err error
}

type exportDoneMsg struct {
	filename string
	err      error
}

// responsesModel lists a form's submissions with stats, detail view,
// date filtering and export.
type responsesModel struct {
	app  app.App
	form model.FormDocument

	table    table.Model
	subs     []model.Submission
	page     int
	pageSize int
	filter   viewer.DateFilter
	mock     bool

	detail *model.Submission
	status string
}

func newResponsesModel(a app.App, form model.FormDocument) responsesModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Fecha", Width: 17},
		{Title: "Estado", Width: 11},
	}
	for i := 0; i < len(form.Questions) && i < 4; i++ {
		columns = append(columns, table.Column{Title: form.Questions[i].Label, Width: 18})
	}

	pageSize := a.Config.PageSize
	if pageSize < 1 {
		pageSize = viewer.PageSize
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(pageSize),
	)

	return responsesModel{app: a, form: form, table: t, page: 1, pageSize: pageSize}
}

func (m responsesModel) load() tea.Cmd {
	c := m.app.Client
	formID := m.form.ID
	skip := viewer.Skip(m.page, m.pageSize)
	limit := m.pageSize
	filter := m.filter
	return func() tea.Msg {
		subs, err := c.ListSubmissions(context.Background(), formID, client.ListParams{
			Skip:  skip,
			Limit: limit,
			Date:  filter,
		})
		if err != nil {
			log.Warn("responses.load: backend unavailable, using sample data")
			return submissionsLoadedMsg{subs: viewer.MockSubmissions(time.Now()), mock: true}
		}
		return submissionsLoadedMsg{subs: subs}
	}
}

func (m responsesModel) export(format string) tea.Cmd {
	c := m.app.Client
	form := m.form
	req := viewer.BuildExportRequest(format, m.filter)
	return func() tea.Msg {
		blob, err := c.ExportSubmissions(context.Background(), form.ID, req)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		name := viewer.ExportFilename(form, format)
		if err := os.WriteFile(name, blob, 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{filename: name}
	}
}

func (m responsesModel) deleteSelected() (responsesModel, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.subs) {
		return m, nil
	}
	id := m.subs[idx].ID

	// optimistic removal
	m.subs = append(m.subs[:idx:idx], m.subs[idx+1:]...)
	m.refreshRows()

	c := m.app.Client
	return m, func() tea.Msg {
		err := c.DeleteSubmission(context.Background(), id)
		return submissionDeletedMsg{id: id, err: err}
	}
}

func (m *responsesModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.subs))
	for _, sub := range m.subs {
		row := table.Row{
			fmt.Sprintf("%d", sub.ID),
			sub.CreatedAt.Format("2006-01-02 15:04"),
			sub.Status,
		}
		for i := 0; i < len(m.form.Questions) && i < 4; i++ {
			row = append(row, viewer.AnswerCell(sub, i))
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
}

func (m responsesModel) Update(msg tea.Msg) (responsesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case submissionsLoadedMsg:
		m.subs = msg.subs
		m.mock = msg.mock
		m.refreshRows()
		if msg.mock {
			m.status = "Mostrando datos de ejemplo (backend no disponible)"
		} else {
			m.status = ""
		}
		return m, nil

	case submissionDeletedMsg:
		// the row stays removed either way; the alert is the only
		// signal a failed delete leaves behind
		if msg.err != nil {
			m.status = fmt.Sprintf("No se pudo eliminar la respuesta %d", msg.id)
			return m, nil
		}
		m.status = fmt.Sprintf("Respuesta %d eliminada", msg.id)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "Error al exportar: " + msg.err.Error()
		} else {
			m.status = "Exportado a " + msg.filename
		}
		return m, nil

	case tea.KeyMsg:
		if m.detail != nil {
			switch msg.String() {
			case "esc", "q", "enter":
				m.detail = nil
			}
			return m, nil
		}

		switch msg.String() {
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.subs) {
				sub := m.subs[idx]
				m.detail = &sub
			}
			return m, nil
		case "d":
			return m.deleteSelected()
		case "x":
			return m, m.export(viewer.FormatXLSX)
		case "C":
			return m, m.export(viewer.FormatCSV)
		case "J":
			return m, m.export(viewer.FormatJSON)
		case "n", "right":
			if m.page < viewer.TotalPages(m.form, len(m.subs), m.pageSize) {
				m.page++
				return m, m.load()
			}
			return m, nil
		case "p", "left":
			if m.page > 1 {
				m.page--
				return m, m.load()
			}
			return m, nil
		case "f":
			// last 7 days; a second press clears the filter
			if m.filter.From == "" {
				m.filter.From = time.Now().AddDate(0, 0, -7).Format("2006-01-02")
			} else {
				m.filter = viewer.DateFilter{}
			}
			m.page = 1
			return m, m.load()
		case "R":
			return m, m.load()
		case "esc":
			return m, func() tea.Msg { return backToFormsMsg{} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m responsesModel) View(s Styles) string {
	if m.detail != nil {
		return m.detailView(s)
	}

	stats := viewer.ComputeStats(m.form, m.subs, time.Now())
	header := s.Title.Render("Respuestas: " + m.form.Title)
	statsLine := fmt.Sprintf("Total: %d   Hoy: %d   Esta semana: %d",
		stats.Total, stats.Today, stats.ThisWeek)
	pageLine := fmt.Sprintf("Página %d de %d", m.page, viewer.TotalPages(m.form, len(m.subs), m.pageSize))
	if m.filter.From != "" {
		pageLine += s.BadgeWarn.Render("  [desde " + m.filter.From + "]")
	}

	parts := []string{header, s.Muted.Render(statsLine), s.Muted.Render(pageLine), "", m.table.View()}
	if m.status != "" {
		parts = append(parts, s.Success.Render(m.status))
	}
	parts = append(parts, s.Help.Render(
		"enter: detalle • d: eliminar • x/C/J: exportar xlsx/csv/json • f: filtrar fecha\n"+
			"←/→: página • R: recargar • esc: volver"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m responsesModel) detailView(s Styles) string {
	sub := *m.detail

	var parts []string
	parts = append(parts, s.Title.Render(fmt.Sprintf("Respuesta %d", sub.ID)))
	parts = append(parts, s.Muted.Render(sub.CreatedAt.Format("2006-01-02 15:04")+"  "+sub.Status))
	parts = append(parts, "")
	for _, a := range sub.Answers {
		label := viewer.LabelFor(m.form, a.QuestionID)
		parts = append(parts, s.Subtitle.Render(label))
		parts = append(parts, "  "+viewer.DisplayValue(a))
	}
	parts = append(parts, "", s.Help.Render("esc: volver a la lista"))
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
