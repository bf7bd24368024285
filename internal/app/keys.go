package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the play-screen bindings. It satisfies help.KeyMap.
type keyMap struct {
	Complete  key.Binding
	CompleteN key.Binding
	Next      key.Binding
	Tasks     key.Binding
	Dismiss   key.Binding
	Rearm     key.Binding
	Scene     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Complete: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "complete current"),
		),
		CompleteN: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "complete by id"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next task"),
		),
		Tasks: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle tasks"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss notification"),
		),
		Rearm: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-arm level events"),
		),
		Scene: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Next, k.Tasks, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Complete, k.CompleteN, k.Next},
		{k.Tasks, k.Dismiss, k.Rearm},
		{k.Scene, k.Help, k.Quit},
	}
}
