package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	statusSeq   int
	version     string
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version, viewState: model.NewViewState()}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		return m.show(msg.Message, msg.Err)
	case command.RatingSummaryMsg:
		if !msg.Submitted {
			break
		}

		return m.show("Thanks for rating ZoNa!", false)
	case command.ClearStatusMessageMsg:
		// A newer message restarted the timer.
		if msg.Seq != m.statusSeq {
			break
		}
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatusBarModel) show(message string, isErr bool) (StatusBarModel, tea.Cmd) {
	m.statusSeq++
	m.statusMsg = message
	m.statusError = isErr

	return m, command.ClearErrorAfter(command.ClearMessageTimeout, m.statusSeq)
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusSection.Render(m.section()),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

// section names the active section, falling back to the raw id for unknown sections.
func (m StatusBarModel) section() string {
	if label, found := catalog.Label(m.viewState.Active); found {
		return label
	}

	return string(m.viewState.Active)
}

func (m StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
