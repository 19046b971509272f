package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// RenderFooter draws the contact block, social links, language buttons and copyright line.
func RenderFooter(footer catalog.Footer, width int, year int) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.FooterStyle.GetHorizontalFrameSize()

	contact := lipgloss.JoinVertical(lipgloss.Left,
		styles.Brand("ZoNa"),
		"",
		styles.IconMail+" "+footer.Email,
		styles.IconPin+" "+strings.Join(footer.Address, "\n   "))

	socials := make([]string, 0, len(footer.Socials))
	for _, social := range footer.Socials {
		socials = append(socials, social.Icon+" "+social.Label)
	}

	languages := make([]string, 0, len(footer.Languages))
	for idx, lang := range footer.Languages {
		if idx == 0 {
			languages = append(languages, styles.LangActive.Render(lang))
		} else {
			languages = append(languages, styles.LangOther.Render(lang))
		}
	}

	connect := lipgloss.JoinVertical(lipgloss.Right,
		styles.FooterTitle.Render("Connect with Us"),
		"",
		strings.Join(socials, "  "),
		"",
		strings.Join(languages, " "))

	var body string
	if lipgloss.Width(contact)+lipgloss.Width(connect)+2 <= inner {
		gap := inner - lipgloss.Width(contact) - lipgloss.Width(connect)
		body = lipgloss.JoinHorizontal(lipgloss.Top, contact, lipgloss.NewStyle().Width(gap).Render(""), connect)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, contact, "", connect)
	}

	copyright := styles.Copyright.Width(inner).Render(fmt.Sprintf("© %d %s. All rights reserved.", year, footer.Owner))

	return styles.FooterStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		styles.Copyright.Width(inner).Render(strings.Repeat("─", inner)),
		copyright))
}
