package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the calculator. Printable keys belong to
// the input line, so every command uses a control or function key.
type KeyMap struct {
	Submit      key.Binding
	Compare     key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	CycleBase   key.Binding
	CycleOutput key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Compare:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "compare strategies")),
		HistoryPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous input")),
		HistoryNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next input")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		CycleBase:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "input base")),
		CycleOutput: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "output base")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear history")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Compare, k.HistoryPrev, k.CycleOutput, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Compare, k.Clear},
		{k.HistoryPrev, k.HistoryNext, k.ScrollUp, k.ScrollDown},
		{k.CycleBase, k.CycleOutput, k.Help, k.Quit},
	}
}
