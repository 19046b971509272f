package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/styles"
)

const featureColumns = 2

// RenderFeatures draws the "Why ZoNa?" grid, two features per row.
func RenderFeatures(features []catalog.Feature, width int) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.SectionStyle.GetHorizontalFrameSize()
	cellWidth := max(12, inner/featureColumns)

	var (
		rows []string
		row  []string
	)
	for _, feature := range features {
		cell := lipgloss.NewStyle().Width(cellWidth).Padding(0, 1).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				feature.Icon,
				styles.FeatureTitle.Render(feature.Title),
				styles.FeatureText.Render(wordwrap.String(feature.Description, cellWidth-2)),
				""))
		row = append(row, cell)
		if len(row) == featureColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.SectionHeading.Width(inner).Render("Why ZoNa?"),
		styles.SectionSubtitle.Width(inner).Render(wordwrap.String(
			"Your ultimate guide to exploring Batam with ease and confidence.", inner)),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...))

	return styles.SectionStyle.Width(width).Render(content)
}
