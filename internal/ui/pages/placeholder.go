package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// Placeholder stands in for every section that is not built yet. Its only control returns home.
type Placeholder struct {
	viewState model.ViewState
	id        string
}

func NewPlaceholder() Placeholder {
	return Placeholder{viewState: model.NewViewState(), id: zone.NewPrefix()}
}

func (m Placeholder) Init() tea.Cmd {
	return nil
}

func (m Placeholder) Update(msg tea.Msg) (Placeholder, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if m.viewState.IsHome() {
			break
		}

		if key.Matches(msg, input.Default.Back) {
			return m, command.SelectSection(model.SectionHome)
		}
	case tea.MouseMsg:
		if m.viewState.IsHome() || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			break
		}

		if zone.Get(m.id + "home").InBounds(msg) {
			return m, command.SelectSection(model.SectionHome)
		}
	}

	return m, nil
}

func (m Placeholder) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.PlaceholderTitle.Render(m.viewState.Active.Title()),
		"",
		styles.PlaceholderText.Render("This section is under development"),
		"",
		zone.Mark(m.id+"home", styles.ButtonLight.Render(styles.IconHome+" Return to Home")))

	return lipgloss.Place(m.viewState.Width, m.viewState.Body, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(styles.Indigo))
}
