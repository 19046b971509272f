package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

const (
	minCardWidth   = 30
	cardGap        = 2
	carouselColumn = 3
)

// CarouselModel cycles through the recommended destinations. Wide terminals show every card with the
// featured one highlighted, narrow ones only show the featured card.
type CarouselModel struct {
	destinations []catalog.Destination
	index        int
	width        int
	id           string
}

func NewCarouselModel(destinations []catalog.Destination) CarouselModel {
	return CarouselModel{destinations: destinations, id: zone.NewPrefix()}
}

func (m CarouselModel) Init() tea.Cmd {
	return nil
}

// Index returns the position of the featured destination.
func (m CarouselModel) Index() int {
	return m.index
}

func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	if len(m.destinations) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case model.ViewState:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Left):
			m.index = m.step(-1)
		case key.Matches(msg, input.Default.Right):
			m.index = m.step(1)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		switch {
		case zone.Get(m.id + "prev").InBounds(msg):
			m.index = m.step(-1)
		case zone.Get(m.id + "next").InBounds(msg):
			m.index = m.step(1)
		default:
			for idx, destination := range m.destinations {
				if zone.Get(m.id + destination.Title).InBounds(msg) {
					m.index = idx
				}
			}
		}
	}

	return m, nil
}

func (m CarouselModel) step(delta int) int {
	count := len(m.destinations)

	return ((m.index+delta)%count + count) % count
}

// Render draws the section at the given width.
func (m CarouselModel) Render(width int) string {
	if width <= 0 || len(m.destinations) == 0 {
		return ""
	}

	inner := width - styles.SectionStyle.GetHorizontalFrameSize()

	var cards string
	if inner >= carouselColumn*minCardWidth+(carouselColumn-1)*cardGap {
		cardWidth := (inner - (carouselColumn-1)*cardGap) / carouselColumn
		parts := make([]string, 0, len(m.destinations)*2)
		for idx, destination := range m.destinations {
			if idx > 0 {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			parts = append(parts, zone.Mark(m.id+destination.Title, renderCard(destination, cardWidth, idx == m.index)))
		}
		cards = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		destination := m.destinations[m.index]
		cards = zone.Mark(m.id+destination.Title, renderCard(destination, inner, true))
	}

	return styles.SectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		styles.SectionHeading.Width(inner).Render("Recommendation"),
		styles.SectionSubtitle.Width(inner).Render(wordwrap.String(
			"Try the experience, then allow us to know your opinion", inner)),
		"",
		cards,
		"",
		m.pager()))
}

func (m CarouselModel) pager() string {
	dots := make([]string, len(m.destinations))
	for idx := range m.destinations {
		if idx == m.index {
			dots[idx] = styles.CarouselDotOn.Render("●")
		} else {
			dots[idx] = styles.CarouselDot.Render("○")
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		zone.Mark(m.id+"prev", styles.CarouselDot.Render("‹ ")),
		strings.Join(dots, " "),
		zone.Mark(m.id+"next", styles.CarouselDot.Render(" ›")))
}

func renderCard(destination catalog.Destination, width int, featured bool) string {
	inner := max(1, width-styles.ContainerStyle.GetHorizontalFrameSize())

	image := styles.CardImage.Foreground(lipgloss.Color(destination.Accent))
	lines := []string{image.Render(wordwrap.String("[ "+destination.Image+" ]", inner)), ""}
	for _, line := range strings.Split(destination.Description, "\n") {
		lines = append(lines, styles.CardText.Render(wordwrap.String(line, inner)))
	}
	lines = append(lines, "", styles.CardHighlight.Render(wordwrap.String(styles.IconSparkles+" "+destination.Highlight, inner)))

	return model.Container(destination.Title, width-styles.ContainerStyle.GetHorizontalBorderSize(), 0,
		lipgloss.JoinVertical(lipgloss.Left, lines...), featured)
}
