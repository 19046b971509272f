package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Palette.
	Navy   = lipgloss.Color("#113F67")
	Ocean  = lipgloss.Color("#3B6A94")
	Sky    = lipgloss.Color("#58A0C8")
	Sun    = lipgloss.Color("#FBC408")
	Bronze = lipgloss.Color("#B48D47")
	Indigo = lipgloss.Color("#4553A6")
	Royal  = lipgloss.Color("#0318ED")
	Gold   = lipgloss.Color("#FDE047")
	Black  = lipgloss.Color("#111111")
	Gray   = lipgloss.Color("#6B7280")
	Silver = lipgloss.Color("#9CA3AF")
	White  = lipgloss.Color("#F9FAFB")
	Red    = lipgloss.Color("#B8383B")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Sun).Padding(0, 1)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	// Navbar. The translucent variant is used while the page sits at the top, the solid one once the
	// page has scrolled past the threshold.
	NavbarTranslucent = lipgloss.NewStyle().Foreground(White)
	NavbarSolid       = lipgloss.NewStyle().Foreground(White).Background(Navy).Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(Sky)
	NavLogo        = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	TabContainer   = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive   = lipgloss.NewStyle().Foreground(White).PaddingLeft(2).PaddingRight(2)
	TabsActive     = lipgloss.NewStyle().Foreground(Navy).Background(White).Bold(true).PaddingLeft(2).PaddingRight(2)
	MenuButton     = lipgloss.NewStyle().Foreground(White).Bold(true).Padding(0, 1)
	MenuItem       = lipgloss.NewStyle().Foreground(White).PaddingLeft(2)
	MenuItemActive = lipgloss.NewStyle().Foreground(Sun).Bold(true).PaddingLeft(2)

	// Hero.
	HeroStyle    = lipgloss.NewStyle().Foreground(White).Background(Ocean).Padding(1, 4)
	HeroTitle    = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Ocean)
	HeroEmphasis = lipgloss.NewStyle().Bold(true).Foreground(Gold).Background(Ocean)
	HeroText     = lipgloss.NewStyle().Foreground(lipgloss.Color("#DBEAFE")).Background(Ocean)
	HeroImage    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(White).
			Foreground(White).Padding(1, 2).Italic(true)

	Button      = lipgloss.NewStyle().Foreground(Navy).Background(Sun).Bold(true).Padding(0, 2)
	ButtonAlt   = lipgloss.NewStyle().Foreground(White).Background(Navy).Bold(true).Padding(0, 2)
	ButtonLight = lipgloss.NewStyle().Foreground(Navy).Background(White).Bold(true).Padding(0, 2)

	SectionStyle    = lipgloss.NewStyle().Padding(1, 2)
	SectionHeading  = lipgloss.NewStyle().Bold(true).Foreground(Navy).Align(lipgloss.Center)
	SectionSubtitle = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Center)

	FeatureTitle = lipgloss.NewStyle().Bold(true)
	FeatureText  = lipgloss.NewStyle().Foreground(Gray)

	CardTitle     = lipgloss.NewStyle().Bold(true)
	CardText      = lipgloss.NewStyle()
	CardHighlight = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	CardImage     = lipgloss.NewStyle().Foreground(Silver).Italic(true)
	CarouselDot   = lipgloss.NewStyle().Foreground(Gray)
	CarouselDotOn = lipgloss.NewStyle().Foreground(Sun)

	Ads = lipgloss.NewStyle().Bold(true).Foreground(Gray).Background(lipgloss.Color("#D1D5DB")).
		Align(lipgloss.Center).Padding(2, 0)

	ReviewName   = lipgloss.NewStyle().Bold(true)
	ReviewText   = lipgloss.NewStyle().Foreground(Silver)
	ReviewAvatar = lipgloss.NewStyle().Bold(true).Foreground(White).Padding(0, 1)
	StarOn       = lipgloss.NewStyle().Foreground(Gold)
	StarOff      = lipgloss.NewStyle().Foreground(Gray)
	RatingPrompt = lipgloss.NewStyle().Faint(true)

	FooterStyle = lipgloss.NewStyle().Foreground(Silver).Padding(1, 2)
	FooterTitle = lipgloss.NewStyle().Bold(true).Foreground(White)
	LangActive  = lipgloss.NewStyle().Foreground(White).Background(lipgloss.Color("#3B82F6")).Bold(true).Padding(0, 1)
	LangOther   = lipgloss.NewStyle().Foreground(Silver).Background(lipgloss.Color("#374151")).Bold(true).Padding(0, 1)
	Copyright   = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Center)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(White).Background(Indigo).Align(lipgloss.Center)
	PlaceholderTitle = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Indigo)
	PlaceholderText  = lipgloss.NewStyle().Faint(true).Foreground(White).Background(Indigo)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Sky).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Sun).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusSection = lipgloss.NewStyle().Foreground(Sky).Bold(true).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)

	IconStar     = "★"
	IconMenu     = "☰"
	IconClose    = "✕"
	IconHome     = "⌂"
	IconChevron  = "›"
	IconSparkles = "✨"
	IconMail     = "📧"
	IconPin      = "📍"
)

// Brand renders "GoZoNa" (or any suffix of it) with the per letter brand colours.
func Brand(word string) string {
	colours := []lipgloss.Color{Navy, Navy, Sun, Bronze, Indigo, Royal}
	letters := []rune(word)
	offset := len(colours) - len(letters)
	if offset < 0 {
		return lipgloss.NewStyle().Bold(true).Render(word)
	}

	var out strings.Builder
	for idx, letter := range letters {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colours[offset+idx]).Render(string(letter)))
	}

	return out.String()
}

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(0, width-lipgloss.Width(value))

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	if title == "" {
		return border
	}
	border.Top = WrapX(width, " "+title+" ", border.Top)

	return border
}
