package artifacts

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shreeramghimire/salmonometer/internal/storage"
)

type Item struct {
	Artifact storage.Artifact
}

func (i Item) Title() string { return i.Artifact.Name }
func (i Item) Description() string {
	return fmt.Sprintf("%s | %s | %s", formatSize(i.Artifact.Size), i.Artifact.ContentType, i.Artifact.Location)
}
func (i Item) FilterValue() string { return i.Artifact.Name }

// Model lists the files written by the last export
type Model struct {
	list list.Model
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Exported files"
	l.SetShowHelp(false) // help is rendered by the main model
	l.SetFilteringEnabled(false)
	return Model{list: l}
}

func (m *Model) SetArtifacts(arts []storage.Artifact) {
	items := make([]list.Item, len(arts))
	for i, a := range arts {
		items[i] = Item{Artifact: a}
	}
	m.list.SetItems(items)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  Nothing exported yet.\n  Press 'e' to export."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
