package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextSet key.Binding
	PrevSet key.Binding
	Up      key.Binding
	Down    key.Binding
	Export  key.Binding
	Files   key.Binding
	Return  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Export, k.Return, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSet, k.PrevSet, k.Up, k.Down},
		{k.Export, k.Files, k.Return, k.Back, k.Quit, k.Help},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSet: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next category"),
		),
		PrevSet: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev category"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Files: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "exported files"),
		),
		Return: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "return to selection"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to selection"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
