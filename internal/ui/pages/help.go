package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, databasePath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		databasePath: databasePath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	databasePath string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if viewState, ok := msg.(model.ViewState); ok {
		m.viewState = viewState
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Home,
			input.Default.Accommodation,
			input.Default.Places,
			input.Default.Events,
			input.Default.GoZoNa,
			input.Default.NextTab,
			input.Default.PrevTab,
			input.Default.Menu,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
			input.Default.Top,
			input.Default.Bottom,
			input.Default.Left,
			input.Default.Right,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Discover,
			input.Default.Explore,
			input.Default.MoreStars,
			input.Default.FewerStars,
			input.Default.SubmitRating,
			input.Default.Back,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.buildCommit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Database", m.databasePath),
	)

	return lipgloss.Place(m.viewState.Width, m.viewState.Body,
		lipgloss.Center, lipgloss.Center, content)
}
