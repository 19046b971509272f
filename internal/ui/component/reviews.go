package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/store"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/styles"
)

// ReviewsModel shows the testimonials and the star rating prompt below them.
type ReviewsModel struct {
	testimonials []catalog.Testimonial
	stars        int
	summary      store.RatingSummary
	id           string
}

func NewReviewsModel(testimonials []catalog.Testimonial) ReviewsModel {
	return ReviewsModel{testimonials: testimonials, stars: store.MaxStars, id: zone.NewPrefix()}
}

func (m ReviewsModel) Init() tea.Cmd {
	return nil
}

// Stars returns the currently selected star count.
func (m ReviewsModel) Stars() int {
	return m.stars
}

func (m ReviewsModel) Update(msg tea.Msg) (ReviewsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.RatingSummaryMsg:
		m.summary = msg.Summary
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.MoreStars):
			m.stars = min(store.MaxStars, m.stars+1)
		case key.Matches(msg, input.Default.FewerStars):
			m.stars = max(store.MinStars, m.stars-1)
		case key.Matches(msg, input.Default.SubmitRating):
			return m, command.SubmitRating(m.stars)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for star := store.MinStars; star <= store.MaxStars; star++ {
			if zone.Get(m.starZone(star)).InBounds(msg) {
				m.stars = star

				return m, command.SubmitRating(star)
			}
		}
	}

	return m, nil
}

func (m ReviewsModel) starZone(star int) string {
	return fmt.Sprintf("%sstar%d", m.id, star)
}

// Render draws the section at the given width.
func (m ReviewsModel) Render(width int) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.SectionStyle.GetHorizontalFrameSize()

	var cards string
	if len(m.testimonials) > 0 {
		if inner >= len(m.testimonials)*minCardWidth+cardGap {
			cardWidth := (inner - (len(m.testimonials)-1)*cardGap) / len(m.testimonials)
			parts := make([]string, 0, len(m.testimonials)*2)
			for idx, testimonial := range m.testimonials {
				if idx > 0 {
					parts = append(parts, strings.Repeat(" ", cardGap))
				}
				parts = append(parts, renderReview(testimonial, cardWidth))
			}
			cards = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		} else {
			parts := make([]string, 0, len(m.testimonials))
			for _, testimonial := range m.testimonials {
				parts = append(parts, renderReview(testimonial, inner))
			}
			cards = lipgloss.JoinVertical(lipgloss.Left, parts...)
		}
	}

	stars := make([]string, 0, store.MaxStars)
	for star := store.MinStars; star <= store.MaxStars; star++ {
		style := styles.StarOff
		if star <= m.stars {
			style = styles.StarOn
		}
		stars = append(stars, zone.Mark(m.starZone(star), style.Render(styles.IconStar)))
	}

	hint := fmt.Sprintf("%s/%s choose  %s submit",
		input.Default.MoreStars.Help().Key, input.Default.FewerStars.Help().Key, input.Default.SubmitRating.Help().Key)

	return styles.SectionStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		styles.SectionHeading.Width(inner).Render("Users Review"),
		"",
		cards,
		"",
		"Give us some star(s)?",
		strings.Join(stars, " "),
		styles.RatingPrompt.Render(m.summary.String()),
		styles.RatingPrompt.Render(hint)))
}

func renderReview(testimonial catalog.Testimonial, width int) string {
	avatar := styles.ReviewAvatar.Background(lipgloss.Color(testimonial.Accent)).Render(testimonial.Initial)
	textWidth := max(10, width-styles.ContainerStyle.GetHorizontalFrameSize()-lipgloss.Width(avatar)-1)
	text := lipgloss.JoinVertical(lipgloss.Left,
		styles.ReviewName.Render(testimonial.Name),
		styles.ReviewText.Render(wordwrap.String(testimonial.Quote, textWidth)))

	return model.Container("", width-styles.ContainerStyle.GetHorizontalBorderSize(), 0,
		lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", text), false)
}
