package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/session"
	"github.com/shreeramghimire/salmonometer/internal/storage"
	"github.com/shreeramghimire/salmonometer/internal/tui/components/artifacts"
	"github.com/shreeramghimire/salmonometer/internal/tui/components/preview"
)

type Model struct {
	ctrl          *session.Controller
	sink          storage.Sink
	formats       []export.Format
	guidelines    *catalog.Guidelines
	state         constants.ViewState
	keys          KeyMap
	help          help.Model
	form          *huh.Form
	configForm    *ConfigFormModel
	recordForm    *RecordFormModel
	previewModel  preview.Model
	artifactsList artifacts.Model
	showFiles     bool
	exporting     bool
	quitting      bool
	width         int
	height        int
	formError     string // Error message shown above the active form
	status        string // Result of the last export
}

// NewModel drives ctrl interactively; exports go to sink in the given formats
func NewModel(ctrl *session.Controller, sink storage.Sink, formats []export.Format, guidelines *catalog.Guidelines) Model {
	m := Model{
		ctrl:          ctrl,
		sink:          sink,
		formats:       formats,
		guidelines:    guidelines,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		previewModel:  preview.New(0, 0),
		artifactsList: artifacts.New(0, 0),
	}
	m.syncView()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.ViewExporting:
		return []key.Binding{m.keys.NextSet, m.keys.Export, m.keys.Files, m.keys.Return, m.keys.Quit, m.keys.Help}
	case constants.ViewRecording:
		return []key.Binding{m.keys.Back}
	default:
		return nil
	}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state != constants.ViewExporting {
		return [][]key.Binding{m.ShortHelp()}
	}
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// syncView rebuilds the screen for the controller's current phase
func (m *Model) syncView() tea.Cmd {
	st := m.ctrl.State()
	switch st.Phase {
	case session.Configuring:
		m.state = constants.ViewConfigure
		m.configForm = NewConfigFormModel(st.Draft)
		m.recordForm = nil
		m.form = NewConfigForm(m.configForm)
		return m.form.Init()
	case session.Recording:
		m.state = constants.ViewRecording
		plan, _ := st.ActivePlan()
		m.recordForm = NewRecordFormModel(st.Config, plan)
		m.form = NewRecordForm(m.recordForm, m.guidelines)
		return m.form.Init()
	default:
		m.state = constants.ViewExporting
		m.form = nil
		m.showFiles = false
		m.previewModel.SetSets(m.ctrl.Preview())
		m.resize()
		return nil
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.previewModel.SetSize(m.width-4, m.height-10)
	m.artifactsList.SetSize(m.width-4, m.height-10)
}
