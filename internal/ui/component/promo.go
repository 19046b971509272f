package component

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// RenderPromo draws the GoZoNa section with its Explore button marked by buttonZone.
func RenderPromo(promo catalog.Promo, width int, buttonZone string) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.SectionStyle.GetHorizontalFrameSize()
	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.SectionHeading.Render(promo.Heading+" "), styles.Brand("GoZoNa"))

	text := lipgloss.JoinVertical(lipgloss.Left,
		wordwrap.String(promo.Lead+" "+lipgloss.NewStyle().Bold(true).Render(promo.LeadStrong), max(20, inner/2)),
		"",
		wordwrap.String("By "+styles.Brand("GoZoNa")+", "+promo.Body, max(20, inner/2)),
		"",
		zone.Mark(buttonZone, styles.ButtonAlt.Render(promo.CallToAction)))
	image := styles.CardImage.Render("[ " + promo.Image + " ]")

	var body string
	if lipgloss.Width(text)+lipgloss.Width(image)+4 <= inner {
		body = lipgloss.JoinHorizontal(lipgloss.Center, image, lipgloss.NewStyle().Width(4).Render(""), text)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, image, "", text)
	}

	return styles.SectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, heading),
		styles.SectionSubtitle.Width(inner).Bold(true).Render(promo.Tagline),
		"",
		body))
}

// RenderAds draws the static advertisement placeholder.
func RenderAds(width int) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.SectionStyle.GetHorizontalFrameSize()

	return styles.SectionStyle.Width(width).Render(styles.Ads.Width(inner).Render("A D S"))
}
