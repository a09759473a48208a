package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/shreeramghimire/salmonometer/internal/constants"
	apperrors "github.com/shreeramghimire/salmonometer/internal/errors"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/logger"
	"github.com/shreeramghimire/salmonometer/internal/storage"
)

type exportedMsg struct {
	artifacts []storage.Artifact
	err       error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
	case exportedMsg:
		m.exporting = false
		m.artifactsList.SetArtifacts(msg.artifacts)
		if msg.err != nil {
			m.status = dangerStyle.Render(apperrors.Format(msg.err))
		} else {
			m.status = successStyle.Render(fmt.Sprintf("✓ %d file(s) written to %s", len(msg.artifacts), m.sink.Describe()))
			m.showFiles = true
		}
		return m, nil
	}

	switch m.state {
	case constants.ViewConfigure:
		return m.updateConfigure(msg)
	case constants.ViewRecording:
		return m.updateRecording(msg)
	default:
		return m.updateExporting(msg)
	}
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return cmd
}

func (m Model) updateConfigure(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.updateForm(msg)

	switch m.form.State {
	case huh.StateCompleted:
		cfg, err := m.configForm.Config()
		if err == nil {
			err = m.ctrl.Configure(cfg)
		}
		if err == nil {
			err = m.ctrl.Start()
		}
		if err != nil {
			// Keep the entered values and reopen the form
			m.formError = apperrors.Format(err)
			m.form = NewConfigForm(m.configForm)
			return m, m.form.Init()
		}
		m.formError = ""
		return m, m.syncView()
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateRecording(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		return m.returnToSelection()
	}

	cmd := m.updateForm(msg)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.ctrl.Submit(m.recordForm.RawRows()); err != nil {
			m.formError = apperrors.Format(err)
			m.form = NewRecordForm(m.recordForm, m.guidelines)
			return m, m.form.Init()
		}
		m.formError = ""
		return m, m.syncView()
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextSet):
			m.showFiles = false
			m.previewModel.Next()
			return m, nil
		case key.Matches(msg, m.keys.PrevSet):
			m.showFiles = false
			m.previewModel.Prev()
			return m, nil
		case key.Matches(msg, m.keys.Files):
			m.showFiles = !m.showFiles
			return m, nil
		case key.Matches(msg, m.keys.Return), key.Matches(msg, m.keys.Back):
			return m.returnToSelection()
		case key.Matches(msg, m.keys.Export):
			if m.exporting {
				return m, nil
			}
			files, err := m.ctrl.Export(m.formats)
			if err != nil {
				m.status = dangerStyle.Render(apperrors.Format(err))
				return m, nil
			}
			m.exporting = true
			m.status = warningStyle.Render("Exporting...")
			return m, uploadCmd(m.sink, files)
		}
	}

	var cmd tea.Cmd
	if m.showFiles {
		m.artifactsList, cmd = m.artifactsList.Update(msg)
	} else {
		m.previewModel, cmd = m.previewModel.Update(msg)
	}
	return m, cmd
}

func (m Model) returnToSelection() (tea.Model, tea.Cmd) {
	if err := m.ctrl.ReturnToSelection(); err != nil {
		m.formError = apperrors.Format(err)
		return m, nil
	}
	m.formError = ""
	m.status = ""
	m.artifactsList.SetArtifacts(nil)
	return m, m.syncView()
}

// uploadCmd writes every file to the sink; it stops at the first failure
func uploadCmd(sink storage.Sink, files []export.File) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		arts := make([]storage.Artifact, 0, len(files))
		for _, f := range files {
			art, err := sink.Put(ctx, f.Name, f.Data, f.ContentType)
			if err != nil {
				logger.Error("Failed to store export", "file", f.Name, "error", err)
				return exportedMsg{artifacts: arts, err: err}
			}
			logger.Info("Stored export", "file", art.Name, "location", art.Location, "size", art.Size)
			arts = append(arts, art)
		}
		return exportedMsg{artifacts: arts}
	}
}
