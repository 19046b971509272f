package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// Container frames content in a titled card. A height of zero lets the card grow with its content.
func Container(title string, width int, height int, content string, active bool) string {
	if width <= 0 || height < 0 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	base = base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width)
	if height > 0 {
		base = base.Height(height)
	}

	return base.Render(content)
}
