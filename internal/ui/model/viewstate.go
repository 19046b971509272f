package model

// ViewState tracks the common ui states that are shared between many models. The root model is its
// only owner; children receive copies of it as a tea.Msg whenever it changes.
type ViewState struct {
	// Active is the currently selected navigation section.
	Active SectionID
	// MenuOpen tracks whether the compact navigation panel is expanded.
	MenuOpen bool

	// Compact is set when the terminal is too narrow for the inline navbar.
	Compact bool
	// Scrolled is true once the home page has been scrolled past the header threshold.
	Scrolled bool

	// --------- h
	// | Navbar| e
	// |-------- i
	// | Body  | g
	// |-------- h
	// | Status| t
	// --------- W i d t h
	Body   int
	Height int
	Width  int
}

// NewViewState returns the startup state: home selected with the menu closed.
func NewViewState() ViewState {
	return ViewState{Active: SectionHome}
}

// SelectSection shows the section and closes the mobile menu. The id is not validated.
func (v ViewState) SelectSection(id SectionID) ViewState {
	v.Active = id
	v.MenuOpen = false

	return v
}

// ToggleMobileMenu flips the compact navigation panel.
func (v ViewState) ToggleMobileMenu() ViewState {
	v.MenuOpen = !v.MenuOpen

	return v
}

func (v ViewState) IsHome() bool {
	return v.Active == SectionHome
}
