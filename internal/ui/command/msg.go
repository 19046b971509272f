package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zona-batam/zona/internal/store"
	"github.com/zona-batam/zona/internal/ui/model"
)

// SelectSectionMsg asks the view state owner to show a section.
type SelectSectionMsg struct {
	Section model.SectionID
}

func SelectSection(section model.SectionID) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{Section: section} }
}

// ToggleMenuMsg asks the view state owner to open or close the compact navigation panel.
type ToggleMenuMsg struct{}

func ToggleMobileMenu() tea.Cmd {
	return func() tea.Msg { return ToggleMenuMsg{} }
}

// ScrolledMsg is emitted when the home page crosses the header threshold in either direction.
type ScrolledMsg struct {
	Past bool
}

func SetScrolled(past bool) tea.Cmd {
	return func() tea.Msg { return ScrolledMsg{Past: past} }
}

const ClearMessageTimeout = time.Second * 10

// ClearStatusMessageMsg clears the status message with the matching sequence number.
type ClearStatusMessageMsg struct {
	Seq int
}

func ClearErrorAfter(t time.Duration, seq int) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{Seq: seq}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// SubmitRatingMsg carries a star rating chosen by the user to the component that can persist it.
type SubmitRatingMsg struct {
	Stars int
}

func SubmitRating(stars int) tea.Cmd {
	return func() tea.Msg { return SubmitRatingMsg{Stars: stars} }
}

// RatingSummaryMsg delivers a freshly computed rating summary. Submitted is set when the summary
// follows a rating the user just saved.
type RatingSummaryMsg struct {
	Summary   store.RatingSummary
	Submitted bool
}
