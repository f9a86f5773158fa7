package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/session"
)

// loginModel is the client-side login stub: any non-empty credential pair
// is accepted. The backend is the authority on the token itself.
type loginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errText  string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "admin@ejemplo.com"
	email.CharLimit = 100
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "••••••••"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 100
	password.Width = 40

	return loginModel{email: email, password: password}
}

func (m loginModel) Update(msg tea.Msg, a app.App) (loginModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, nil
		case "enter":
			err := a.Session.Login(m.email.Value(), m.password.Value())
			if errors.Is(err, session.ErrMissingCredentials) {
				m.errText = "Por favor complete todos los campos"
				return m, nil
			}
			m.errText = ""
			return m, func() tea.Msg { return loggedInMsg{} }
		}
	}

	var cmds [2]tea.Cmd
	m.email, cmds[0] = m.email.Update(msg)
	m.password, cmds[1] = m.password.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}

func (m loginModel) View(s Styles) string {
	parts := []string{
		s.Title.Render("Admin Panel"),
		s.Subtitle.Render("Inicia sesión para continuar"),
		"",
		"Correo electrónico",
		m.email.View(),
		"",
		"Contraseña",
		m.password.View(),
	}
	if m.errText != "" {
		parts = append(parts, "", s.Error.Render(m.errText))
	}
	parts = append(parts, "", s.Help.Render("enter: entrar • tab: cambiar campo • ctrl+c: salir"))
	return s.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
