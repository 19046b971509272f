package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

type navLabel struct {
	label   string
	section model.SectionID
}

// NavbarModel renders the header navigation: inline tabs on wide terminals, a menu button with an
// expandable item list on compact ones.
type NavbarModel struct {
	items     []navLabel
	viewState model.ViewState
	id        string
}

func NewNavbarModel() NavbarModel {
	var items []navLabel
	for _, item := range catalog.NavigationItems() {
		items = append(items, navLabel{label: item.Label, section: item.ID})
	}

	return NavbarModel{
		items:     items,
		viewState: model.NewViewState(),
		id:        zone.NewPrefix(),
	}
}

func (m NavbarModel) Init() tea.Cmd {
	return nil
}

func (m NavbarModel) Update(msg tea.Msg) (NavbarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if zone.Get(m.id + "logo").InBounds(msg) {
			return m, command.SelectSection(model.SectionHome)
		}

		if m.viewState.Compact && zone.Get(m.id+"menu").InBounds(msg) {
			return m, command.ToggleMobileMenu()
		}

		for _, item := range m.items {
			// Check each item to see if it's in bounds.
			if zone.Get(m.id + item.label).InBounds(msg) {
				return m, command.SelectSection(item.section)
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Home):
			return m, command.SelectSection(model.SectionHome)
		case key.Matches(msg, input.Default.Accommodation):
			return m, command.SelectSection(model.SectionAccommodation)
		case key.Matches(msg, input.Default.Places):
			return m, command.SelectSection(model.SectionPlaces)
		case key.Matches(msg, input.Default.Events):
			return m, command.SelectSection(model.SectionEvents)
		case key.Matches(msg, input.Default.GoZoNa):
			return m, command.SelectSection(model.SectionGoZoNa)
		case key.Matches(msg, input.Default.NextTab):
			return m, command.SelectSection(model.Sections.Next(m.viewState.Active, input.Right))
		case key.Matches(msg, input.Default.PrevTab):
			return m, command.SelectSection(model.Sections.Next(m.viewState.Active, input.Left))
		case key.Matches(msg, input.Default.Menu):
			// The toggle only exists while the compact layout is shown.
			if m.viewState.Compact {
				return m, command.ToggleMobileMenu()
			}
		}
	}

	return m, nil
}

func (m NavbarModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	base := styles.NavbarTranslucent
	if m.viewState.Scrolled {
		base = styles.NavbarSolid
	}

	logo := zone.Mark(m.id+"logo", styles.NavLogo.Render(styles.Brand("ZoNa")))

	if !m.viewState.Compact {
		var tabs []string
		for idx, item := range m.items {
			label := fmt.Sprintf("%d %s", idx+1, item.label)
			if item.section == m.viewState.Active {
				tabs = append(tabs, zone.Mark(m.id+item.label, styles.TabsActive.Render(label)))
			} else {
				tabs = append(tabs, zone.Mark(m.id+item.label, styles.TabsInactive.Render(label)))
			}
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, logo, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

		return base.Width(m.viewState.Width).Render(styles.TabContainer.Width(m.viewState.Width).Render(row))
	}

	icon := styles.IconMenu
	if m.viewState.MenuOpen {
		icon = styles.IconClose
	}

	button := zone.Mark(m.id+"menu", styles.MenuButton.Render(icon))
	gap := max(1, m.viewState.Width-lipgloss.Width(logo)-lipgloss.Width(button))
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, logo, lipgloss.NewStyle().Width(gap).Render(""), button)}

	if m.viewState.MenuOpen {
		for idx, item := range m.items {
			label := fmt.Sprintf("%d %s", idx+1, item.label)
			if item.section == m.viewState.Active {
				rows = append(rows, zone.Mark(m.id+item.label, styles.MenuItemActive.Render(label)))
			} else {
				rows = append(rows, zone.Mark(m.id+item.label, styles.MenuItem.Render(label)))
			}
		}
	}

	return base.Width(m.viewState.Width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
