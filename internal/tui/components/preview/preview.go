package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const minColumnWidth = 6

// Model shows one record set at a time as a scrollable table
type Model struct {
	table  table.Model
	sets   []models.RecordSet
	index  int
	width  int
	height int
}

func New(width, height int) Model {
	t := table.New(table.WithFocused(true), table.WithHeight(height))
	return Model{table: t, width: width, height: height}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.sets) == 0 {
		return "No rows recorded."
	}
	set := m.sets[m.index]
	header := fmt.Sprintf("%s %s",
		titleStyle.Render(set.Sheet),
		countStyle.Render(fmt.Sprintf("(%d rows, %d/%d)", set.Len(), m.index+1, len(m.sets))),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View())
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(height)
	m.Render()
}

func (m *Model) SetSets(sets []models.RecordSet) {
	m.sets = sets
	if m.index >= len(sets) {
		m.index = 0
	}
	m.Render()
}

// Next and Prev cycle through the record sets
func (m *Model) Next() {
	if len(m.sets) == 0 {
		return
	}
	m.index = (m.index + 1) % len(m.sets)
	m.Render()
}

func (m *Model) Prev() {
	if len(m.sets) == 0 {
		return
	}
	m.index = (m.index - 1 + len(m.sets)) % len(m.sets)
	m.Render()
}

func (m *Model) Render() {
	if len(m.sets) == 0 {
		m.table.SetRows(nil)
		m.table.SetColumns(nil)
		return
	}
	set := m.sets[m.index]

	cols := make([]table.Column, len(set.Columns))
	for i, c := range set.Columns {
		w := len([]rune(c.Name))
		if w < minColumnWidth {
			w = minColumnWidth
		}
		cols[i] = table.Column{Title: c.Name, Width: w}
	}

	rows := make([]table.Row, 0, set.Len())
	for _, cells := range set.Table() {
		row := make(table.Row, len(cells))
		for i, v := range cells {
			row[i] = export.FormatCell(v, set.Columns[i])
		}
		rows = append(rows, row)
	}

	// rows must be cleared before the column count changes
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.GotoTop()
}
