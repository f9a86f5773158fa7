package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/model"
)

type route int

const (
	routeLogin route = iota
	routeForms
	routeBuilder
	routePreview
	routeResponses
)

// Navigation messages emitted by page models.
type (
	loggedInMsg    struct{}
	backToFormsMsg struct{}

	openBuilderMsg struct {
		doc       model.FormDocument
		persisted bool
	}
	openPreviewMsg struct {
		doc model.FormDocument
	}
	closePreviewMsg struct{}
	openResponsesMsg struct {
		form model.FormDocument
	}
)

// Model is the root shell. It owns which page is showing; pages talk to
// it through the navigation messages above.
type Model struct {
	app    app.App
	route  route
	width  int
	height int
	styles Styles

	login     loginModel
	forms     formsModel
	builder   builderModel
	preview   previewModel
	responses responsesModel

	previewFrom route
}

func New(a app.App) Model {
	m := Model{
		app:    a,
		styles: DefaultStyles(),
		login:  newLoginModel(),
		forms:  newFormsModel(a),
	}
	if a.Session.LoggedIn() {
		m.route = routeForms
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.route == routeForms {
		return m.forms.load()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case loggedInMsg:
		m.route = routeForms
		return m, m.forms.load()

	case backToFormsMsg:
		m.route = routeForms
		return m, m.forms.load()

	case openBuilderMsg:
		m.builder = newBuilderModel(m.app, msg.doc, msg.persisted)
		m.route = routeBuilder
		return m, nil

	case openPreviewMsg:
		m.preview = newPreviewModel(msg.doc)
		m.previewFrom = m.route
		m.route = routePreview
		return m, nil

	case closePreviewMsg:
		m.route = m.previewFrom
		if m.route == routeForms {
			return m, m.forms.load()
		}
		return m, nil

	case openResponsesMsg:
		m.responses = newResponsesModel(m.app, msg.form)
		m.route = routeResponses
		return m, m.responses.load()
	}

	var cmd tea.Cmd
	switch m.route {
	case routeLogin:
		m.login, cmd = m.login.Update(msg, m.app)
	case routeForms:
		m.forms, cmd = m.forms.Update(msg)
	case routeBuilder:
		m.builder, cmd = m.builder.Update(msg)
	case routePreview:
		m.preview, cmd = m.preview.Update(msg)
	case routeResponses:
		m.responses, cmd = m.responses.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.route {
	case routeLogin:
		return m.login.View(m.styles)
	case routeForms:
		return m.forms.View(m.styles)
	case routeBuilder:
		return m.builder.View(m.styles)
	case routePreview:
		return m.preview.View(m.styles)
	case routeResponses:
		return m.responses.View(m.styles)
	}
	return ""
}
