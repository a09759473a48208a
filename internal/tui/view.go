package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shreeramghimire/salmonometer/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.ViewConfigure, constants.ViewRecording:
		content = m.form.View()
	case constants.ViewExporting:
		content = m.viewExporting()
	}

	var formErr string
	if m.formError != "" {
		formErr = dangerStyle.Render(m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewWarnings(),
		formErr,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	st := m.ctrl.State()
	titles := []string{"Configure", "Record", "Export"}
	if done, total := st.Progress(); m.state == constants.ViewRecording {
		titles[1] = fmt.Sprintf("Record %d/%d", done+1, total)
	}

	var tabs []string
	for i, title := range titles {
		if m.state == constants.ViewState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWarnings() string {
	warnings := m.ctrl.State().Warnings
	if len(warnings) == 0 || m.state == constants.ViewConfigure {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return warningStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewExporting() string {
	body := m.previewModel.View()
	if m.showFiles {
		body = m.artifactsList.View()
	}
	if m.status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, m.status, body)
	}
	return docStyle.Render(body)
}
