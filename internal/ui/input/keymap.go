package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit          key.Binding
	Help          key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Top           key.Binding
	Bottom        key.Binding
	PrevTab       key.Binding
	NextTab       key.Binding
	Home          key.Binding
	Accommodation key.Binding
	Places        key.Binding
	Events        key.Binding
	GoZoNa        key.Binding
	Menu          key.Binding
	Discover      key.Binding
	Explore       key.Binding
	Back          key.Binding
	MoreStars     key.Binding
	FewerStars    key.Binding
	SubmitRating  key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Scroll down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Prev destination"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next destination"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " ", "f"),
		key.WithHelp("pgdn", "Page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "Bottom"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next section"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev section"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Home"),
	),
	Accommodation: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Accommodation"),
	),
	Places: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Places"),
	),
	Events: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Events"),
	),
	GoZoNa: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "GoZoNa"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Menu"),
	),
	Discover: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "Discover Batam"),
	),
	Explore: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Explore GoZoNa"),
	),
	Back: key.NewBinding(
		key.WithKeys("enter", "esc", "backspace"),
		key.WithHelp("enter", "Return to Home"),
	),
	MoreStars: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "More stars"),
	),
	FewerStars: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "Fewer stars"),
	),
	SubmitRating: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Submit rating"),
	),
}
