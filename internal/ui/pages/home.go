package pages

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/component"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/scroll"
)

// Home is the fully built landing page. Its sections live in a scrollable viewport whose offset is
// reported to the scroll observer while the page is shown.
type Home struct {
	viewPort  viewport.Model
	carousel  component.CarouselModel
	reviews   component.ReviewsModel
	observer  *scroll.Observer
	release   func()
	viewState model.ViewState
	hero      catalog.Hero
	features  []catalog.Feature
	promo     catalog.Promo
	footer    catalog.Footer
	id        string
}

func NewHome(observer *scroll.Observer) Home {
	viewPort := viewport.New(0, 0)
	viewPort.KeyMap = viewport.KeyMap{
		PageDown:     input.Default.PageDown,
		PageUp:       input.Default.PageUp,
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           input.Default.Up,
		Down:         input.Default.Down,
	}

	return Home{
		viewPort: viewPort,
		carousel: component.NewCarouselModel(catalog.Destinations()),
		reviews:  component.NewReviewsModel(catalog.Testimonials()),
		observer: observer,
		hero:     catalog.HeroBanner(),
		features: catalog.Features(),
		promo:    catalog.PromoSection(),
		footer:   catalog.FooterInfo(),
		id:       zone.NewPrefix(),
	}
}

func (m Home) Init() tea.Cmd {
	return tea.Batch(m.carousel.Init(), m.reviews.Init())
}

func (m Home) Update(msg tea.Msg) (Home, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.viewPort.Width = msg.Width
		m.viewPort.Height = msg.Body
		m = m.track()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Discover):
			return m, command.SelectSection(model.SectionPlaces)
		case key.Matches(msg, input.Default.Explore):
			return m, command.SelectSection(model.SectionGoZoNa)
		case key.Matches(msg, input.Default.Top):
			m.viewPort.GotoTop()
		case key.Matches(msg, input.Default.Bottom):
			m.viewPort.GotoBottom()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			switch {
			case zone.Get(m.id + "discover").InBounds(msg):
				return m, command.SelectSection(model.SectionPlaces)
			case zone.Get(m.id + "explore").InBounds(msg):
				return m, command.SelectSection(model.SectionGoZoNa)
			}
		}
	}

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Update(msg)
	cmds = append(cmds, cmd)
	m.reviews, cmd = m.reviews.Update(msg)
	cmds = append(cmds, cmd)

	m.viewPort.SetContent(m.content())
	m.viewPort, cmd = m.viewPort.Update(msg)
	cmds = append(cmds, cmd)

	if m.observer != nil {
		cmds = append(cmds, m.observer.Observe(m.viewPort.YOffset))
	}

	return m, tea.Batch(cmds...)
}

// track holds a scroll subscription exactly while home is the active section. Leaving home also
// rewinds the page so the next visit starts at the top.
func (m Home) track() Home {
	if m.observer == nil {
		return m
	}

	switch {
	case m.viewState.IsHome() && m.release == nil:
		m.release = m.observer.Acquire()
	case !m.viewState.IsHome() && m.release != nil:
		m.release()
		m.release = nil
		m.viewPort.GotoTop()
	}

	return m
}

// Teardown releases the scroll subscription.
func (m Home) Teardown() Home {
	if m.release != nil {
		m.release()
		m.release = nil
	}

	return m
}

// Offset returns the current vertical scroll offset.
func (m Home) Offset() int {
	return m.viewPort.YOffset
}

func (m Home) content() string {
	width := m.viewState.Width
	if width <= 0 {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		component.RenderHero(m.hero, width, m.id+"discover"),
		component.RenderFeatures(m.features, width),
		m.carousel.Render(width),
		component.RenderPromo(m.promo, width, m.id+"explore"),
		component.RenderAds(width),
		m.reviews.Render(width),
		component.RenderFooter(m.footer, width, time.Now().Year()),
	)
}

func (m Home) View() string {
	return m.viewPort.View()
}
