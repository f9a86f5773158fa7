package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/preview"
)

// previewModel walks a form the way a respondent would see it, one
// page at a time. Answers are held in the session and never sent
// anywhere.
type previewModel struct {
	session *preview.Session
	cursor  int
	input   textinput.Model
	typing  bool
}

func newPreviewModel(doc model.FormDocument) previewModel {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 40

	return previewModel{
		session: preview.NewSession(doc),
		input:   input,
	}
}

func (m *previewModel) currentQuestion() (preview.PageQuestion, bool) {
	qs := m.session.CurrentQuestions()
	if m.cursor < 0 || m.cursor >= len(qs) {
		return preview.PageQuestion{}, false
	}
	return qs[m.cursor], true
}

func (m previewModel) Update(msg tea.Msg) (previewModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter":
			if q, ok := m.currentQuestion(); ok {
				m.session.SetAnswer(q.Index, m.input.Value())
			}
			m.input.Blur()
			m.typing = false
			return m, nil
		case "esc":
			m.input.Blur()
			m.typing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}

	if m.session.Submitted() {
		switch key.String() {
		case "r":
			m.session.Restart()
			m.cursor = 0
		case "esc", "q", "enter":
			return m, func() tea.Msg { return closePreviewMsg{} }
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.session.CurrentQuestions())-1 {
			m.cursor++
		}
	case "left", "h":
		if m.session.ShowPrev() {
			m.session.Prev()
			m.cursor = 0
		}
	case "right", "l":
		if m.session.ShowNext() {
			m.session.Next()
			m.cursor = 0
		}
	case "enter", " ":
		return m.activate(key.String())
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m.digit(int(key.String()[0] - '0'))
	case "s":
		if m.session.ShowSubmit() {
			m.session.Submit()
		}
	case "esc":
		return m, func() tea.Msg { return closePreviewMsg{} }
	}
	return m, nil
}

// activate handles enter/space on the highlighted question according
// to its widget.
func (m previewModel) activate(key string) (previewModel, tea.Cmd) {
	q, ok := m.currentQuestion()
	if !ok {
		return m, nil
	}

	switch preview.WidgetFor(q.Type) {
	case preview.WidgetText, preview.WidgetTextarea, preview.WidgetNumber,
		preview.WidgetDate, preview.WidgetTime, preview.WidgetDateTime:
		if key == "enter" {
			if prev, ok := m.session.Answer(q.Index); ok {
				if s, ok := prev.(string); ok {
					m.input.SetValue(s)
				}
			} else {
				m.input.SetValue("")
			}
			m.input.Placeholder = q.Placeholder
			if m.input.Placeholder == "" {
				m.input.Placeholder = preview.Placeholder(q.Type)
			}
			m.input.Focus()
			m.typing = true
		}
	case preview.WidgetFile, preview.WidgetGeopoint:
		m.session.SetAnswer(q.Index, preview.Placeholder(q.Type))
	}
	return m, nil
}

// digit selects an option, a star or a scale step for the highlighted
// question.
func (m previewModel) digit(n int) (previewModel, tea.Cmd) {
	q, ok := m.currentQuestion()
	if !ok {
		return m, nil
	}

	switch preview.WidgetFor(q.Type) {
	case preview.WidgetRadio:
		if n <= len(q.Options) {
			m.session.SetAnswer(q.Index, q.Options[n-1].Value)
		}
	case preview.WidgetCheckbox:
		if n <= len(q.Options) {
			m.session.ToggleOption(q.Index, q.Options[n-1].Value)
		}
	case preview.WidgetRating:
		m.session.SetRating(q.Index, n, q.Question)
	case preview.WidgetScale:
		m.session.SetScale(q.Index, n, q.Question)
	}
	return m, nil
}

func (m previewModel) View(s Styles) string {
	sess := m.session
	doc := sess.Document()

	if sess.Submitted() {
		return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.Success.Render("✓ "+sess.SuccessMessage()),
			"",
			s.Help.Render("r: responder de nuevo • esc: volver")))
	}

	var parts []string
	parts = append(parts, s.Title.Render("Vista Previa: "+doc.Title))
	if doc.Description != "" {
		parts = append(parts, s.Muted.Render(doc.Description))
	}
	if sess.ShowPageDots() {
		parts = append(parts, m.dots(s))
	}
	parts = append(parts, "")

	for i, q := range sess.CurrentQuestions() {
		parts = append(parts, m.questionView(s, q, i == m.cursor))
	}

	var nav []string
	if sess.ShowPrev() {
		nav = append(nav, "←: anterior")
	}
	if sess.ShowNext() {
		nav = append(nav, "→: siguiente")
	}
	if sess.ShowSubmit() {
		nav = append(nav, "s: enviar")
	}
	nav = append(nav, "esc: volver")
	parts = append(parts, "", s.Help.Render(strings.Join(nav, " • ")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m previewModel) dots(s Styles) string {
	var dots []string
	for i := 0; i < m.session.PageCount(); i++ {
		if i == m.session.CurrentPage() {
			dots = append(dots, s.DotActive.Render("●"))
		} else {
			dots = append(dots, s.Dot.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

func (m previewModel) questionView(s Styles, q preview.PageQuestion, active bool) string {
	label := q.Label
	if q.Required {
		label += s.Required.Render(" *")
	}
	if active {
		label = s.Selected.Render("> ") + label
	} else {
		label = "  " + label
	}

	var body string
	answer, answered := m.session.Answer(q.Index)

	switch preview.WidgetFor(q.Type) {
	case preview.WidgetRadio:
		body = m.optionsView(s, q, answer, false)
	case preview.WidgetCheckbox:
		body = m.optionsView(s, q, answer, true)
	case preview.WidgetRating:
		max := 5
		if q.MaxValue != nil {
			max = int(*q.MaxValue)
		}
		stars := 0
		if v, ok := answer.(int); ok {
			stars = v
		}
		body = "  " + strings.Repeat("★", stars) + strings.Repeat("☆", max-stars)
	case preview.WidgetScale:
		if v, ok := answer.(int); ok {
			body = fmt.Sprintf("  valor: %d", v)
		} else {
			body = s.Muted.Render("  1-9: elegir valor")
		}
	case preview.WidgetNote:
		body = s.Muted.Render("  " + q.Description)
	default:
		if active && m.typing {
			body = "  " + m.input.View()
		} else if answered {
			body = fmt.Sprintf("  %v", answer)
		} else {
			hint := q.Placeholder
			if hint == "" {
				hint = preview.Placeholder(q.Type)
			}
			if hint == "" {
				hint = "enter: responder"
			}
			body = s.Muted.Render("  " + hint)
		}
	}

	return label + "\n" + body
}

func (m previewModel) optionsView(s Styles, q preview.PageQuestion, answer any, multi bool) string {
	selected := map[string]bool{}
	if multi {
		if vs, ok := answer.([]string); ok {
			for _, v := range vs {
				selected[v] = true
			}
		}
	} else if v, ok := answer.(string); ok {
		selected[v] = true
	}

	var lines []string
	for i, opt := range q.Options {
		mark := "( )"
		if multi {
			mark = "[ ]"
		}
		if selected[opt.Value] {
			if multi {
				mark = "[x]"
			} else {
				mark = "(•)"
			}
		}
		lines = append(lines, fmt.Sprintf("  %s %d. %s", mark, i+1, opt.Label))
	}
	return strings.Join(lines, "\n")
}
