package component

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// RenderHero draws the banner. The call to action is marked with buttonZone so the caller can react
// to clicks on it.
func RenderHero(hero catalog.Hero, width int, buttonZone string) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.HeroStyle.GetHorizontalFrameSize()
	lines := []string{
		styles.HeroTitle.Render(hero.Title),
		styles.HeroEmphasis.Render(hero.Emphasis),
		"",
	}
	for _, line := range hero.Lines {
		lines = append(lines, styles.HeroText.Render(wordwrap.String(line, max(10, inner/2))))
	}
	lines = append(lines, "", zone.Mark(buttonZone, styles.Button.Render(hero.CallToAction+" "+styles.IconChevron)))
	text := lipgloss.JoinVertical(lipgloss.Left, lines...)

	image := styles.HeroImage.Render(hero.Image)

	var body string
	if lipgloss.Width(text)+lipgloss.Width(image)+4 <= inner {
		body = lipgloss.JoinHorizontal(lipgloss.Center, text, lipgloss.NewStyle().Width(4).Render(""), image)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, text, "", image)
	}

	return styles.HeroStyle.Width(width).Render(body)
}
