package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zona-batam/zona/internal/config"
	"github.com/zona-batam/zona/internal/store"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/component"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/pages"
	"github.com/zona-batam/zona/internal/ui/scroll"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// RatingStore persists the ratings submitted from the reviews section.
type RatingStore interface {
	AddRating(ctx context.Context, rating store.Rating) error
	RatingSummary(ctx context.Context) (store.RatingSummary, error)
}

// rootModel is the top level model for the ui side of the app. It is the single owner of the
// model.ViewState: children request transitions with commands and receive the result as a message.
type rootModel struct {
	ctx          context.Context
	viewState    model.ViewState
	compactWidth int
	showHelp     bool
	navbar       component.NavbarModel
	status       component.StatusBarModel
	home         pages.Home
	placeholder  pages.Placeholder
	help         pages.Help
	ratings      RatingStore
	sessionID    uuid.UUID
}

func newRootModel(ctx context.Context, userConfig config.Config, ratings RatingStore, sessionID uuid.UUID,
	build BuildInfo, configPath string, databasePath string,
) rootModel {
	compactWidth := userConfig.CompactWidth
	if compactWidth <= 0 {
		compactWidth = config.DefaultCompactWidth
	}

	return rootModel{
		ctx:          ctx,
		viewState:    model.NewViewState(),
		compactWidth: compactWidth,
		navbar:       component.NewNavbarModel(),
		status:       component.NewStatusBarModel(build.Version),
		home:         pages.NewHome(scroll.New()),
		placeholder:  pages.NewPlaceholder(),
		help:         pages.NewHelp(build.Version, build.Date, build.Commit, configPath, databasePath),
		ratings:      ratings,
		sessionID:    sessionID,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ZoNa - Explore Batam"),
		m.navbar.Init(),
		m.status.Init(),
		m.home.Init(),
		m.placeholder.Init(),
		m.help.Init(),
		m.loadRatingSummary(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		switch inMsg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Compact = msg.Width < m.compactWidth

		return m.broadcast()
	case config.Config:
		m.compactWidth = msg.CompactWidth
		m.viewState.Compact = m.viewState.Width < m.compactWidth

		return m.broadcast(command.SetStatusMessage("Config reloaded", false))
	case command.SelectSectionMsg:
		m.viewState = m.viewState.SelectSection(msg.Section)
		if !m.viewState.IsHome() {
			m.viewState.Scrolled = false
		}

		return m.broadcast()
	case command.ToggleMenuMsg:
		m.viewState = m.viewState.ToggleMobileMenu()

		return m.broadcast()
	case command.ScrolledMsg:
		m.viewState.Scrolled = msg.Past

		return m.broadcast()
	case command.SubmitRatingMsg:
		return m, m.saveRating(msg.Stars)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			m = m.teardown()

			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			m.showHelp = !m.showHelp

			return m, nil
		case m.showHelp:
			if key.Matches(msg, input.Default.Back) {
				m.showHelp = false
			}

			return m, nil
		}
	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.navbar.View())
	footer := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.status.View())

	var content string
	switch {
	case m.showHelp:
		content = m.help.View()
	case m.viewState.IsHome():
		content = m.home.View()
	default:
		content = m.placeholder.View()
	}

	ctr := styles.ContentContainerStyle.Height(m.viewState.Body).MaxHeight(m.viewState.Body).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, ctr, footer))
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

// broadcast recomputes the body height for the current header and sends the view state to every child.
func (m rootModel) broadcast(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	navbar, _ := m.navbar.Update(m.viewState)
	status, _ := m.status.Update(m.viewState)
	m.viewState.Body = max(0, m.viewState.Height-lipgloss.Height(navbar.View())-lipgloss.Height(status.View()))

	next, cmd := m.propagate(m.viewState)

	return next, tea.Batch(append(cmds, cmd)...)
}

// propagate forwards a message to the children. Keyboard and mouse input only reaches the page that
// is currently shown.
func (m rootModel) propagate(msg tea.Msg) (rootModel, tea.Cmd) {
	cmds := make([]tea.Cmd, 5)

	isInput := false
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		isInput = true
	}

	m.navbar, cmds[0] = m.navbar.Update(msg)
	m.status, cmds[1] = m.status.Update(msg)
	m.help, cmds[2] = m.help.Update(msg)

	if !isInput || m.viewState.IsHome() {
		m.home, cmds[3] = m.home.Update(msg)
	}

	if !isInput || !m.viewState.IsHome() {
		m.placeholder, cmds[4] = m.placeholder.Update(msg)
	}

	return m, tea.Batch(cmds...)
}

// teardown releases the resources held by the pages.
func (m rootModel) teardown() rootModel {
	m.home = m.home.Teardown()

	return m
}

func (m rootModel) loadRatingSummary() tea.Cmd {
	ratings, ctx := m.ratings, m.ctx

	return func() tea.Msg {
		if ratings == nil {
			return nil
		}

		summary, err := ratings.RatingSummary(ctx)
		if err != nil {
			slog.Error("Failed to load rating summary", slog.String("error", err.Error()))

			return command.StatusMsg{Message: "Ratings are unavailable", Err: true}
		}

		return command.RatingSummaryMsg{Summary: summary}
	}
}

func (m rootModel) saveRating(stars int) tea.Cmd {
	ratings, ctx, sessionID := m.ratings, m.ctx, m.sessionID

	return func() tea.Msg {
		if ratings == nil {
			return command.StatusMsg{Message: "Ratings are unavailable", Err: true}
		}

		if err := ratings.AddRating(ctx, store.NewRating(sessionID, stars)); err != nil {
			slog.Error("Failed to save rating", slog.Int("stars", stars), slog.String("error", err.Error()))

			return command.StatusMsg{Message: "Failed to save rating", Err: true}
		}

		summary, err := ratings.RatingSummary(ctx)
		if err != nil {
			slog.Error("Failed to load rating summary", slog.String("error", err.Error()))

			return command.StatusMsg{Message: "Rating saved", Err: false}
		}

		return command.RatingSummaryMsg{Summary: summary, Submitted: true}
	}
}

// logMsg is useful for debugging events. Tail the log file ~/.config/zona/zona.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
	case model.ViewState:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
