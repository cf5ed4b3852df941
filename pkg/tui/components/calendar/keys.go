package calendar

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the calendar bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Prev       key.Binding
	Next       key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	SwipeUp    key.Binding
	SwipeDown  key.Binding
	ToggleMode key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "select"),
		),
		Prev: key.NewBinding(
			key.WithKeys("[", "p", "pgup"),
			key.WithHelp("[", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "n", "pgdown"),
			key.WithHelp("]", "next"),
		),
		SwipeLeft: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "swipe left"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "swipe right"),
		),
		SwipeUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "collapse to week"),
		),
		SwipeDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "expand to month"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month/week"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Prev, k.Next, k.ToggleMode, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Select},
		{k.Prev, k.Next, k.ToggleMode},
		{k.SwipeLeft, k.SwipeRight, k.SwipeUp, k.SwipeDown, k.Help},
	}
}
