package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Scroll     key.Binding
	Search     key.Binding
	DoneSearch key.Binding
	Clear      key.Binding
	Stats      key.Binding
	Dismiss    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "j", "k", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		DoneSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc/enter", "done"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Stats: key.NewBinding(
			key.WithKeys("+", "s"),
			key.WithHelp("+", "statistics"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", "+", "s", "q"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Search, k.Stats, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Scroll},
		{k.Search, k.Clear, k.Stats},
		{k.Help, k.Quit},
	}
}

// searchKeys is shown while the search field has focus.
type searchKeys struct {
	done key.Binding
}

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.done}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.done}}
}
