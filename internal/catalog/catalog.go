// Package catalog holds the compiled-in, read-only content shown by the guide. Every accessor
// returns a fresh copy so callers can never mutate the shared data.
package catalog

import (
	"github.com/zona-batam/zona/internal/ui/model"
	"golang.org/x/exp/slices"
)

type NavigationItem struct {
	ID    model.SectionID
	Label string
}

type Hero struct {
	Title        string
	Emphasis     string
	Lines        []string
	CallToAction string
	Image        string
}

type Feature struct {
	Icon        string
	Image       string
	Title       string
	Description string
}

type Destination struct {
	Image       string
	Title       string
	Description string
	Highlight   string
	Accent      string
}

type Promo struct {
	Heading      string
	Tagline      string
	Lead         string
	LeadStrong   string
	Body         string
	Image        string
	CallToAction string
}

type Testimonial struct {
	Initial string
	Name    string
	Quote   string
	Accent  string
}

type Social struct {
	Icon  string
	Label string
}

type Footer struct {
	Email     string
	Address   []string
	Socials   []Social
	Languages []string
	Owner     string
}

var navigationItems = []NavigationItem{
	{ID: model.SectionHome, Label: "Home"},
	{ID: model.SectionAccommodation, Label: "Accommodation"},
	{ID: model.SectionPlaces, Label: "Places"},
	{ID: model.SectionEvents, Label: "Events"},
	{ID: model.SectionGoZoNa, Label: "GoZoNa"},
}

var hero = Hero{
	Title:        "Ready to explore",
	Emphasis:     "Batam?",
	Lines:        []string{"Lost is not an option anymore.", "Let ZoNa guide you like a local."},
	CallToAction: "Discover Batam",
	Image:        "images/bare.jpg",
}

var features = []Feature{
	{
		Icon:        "🏝",
		Image:       "images/top.png",
		Title:       "Top-Rated Attraction",
		Description: "From beaches to cultural gems, we’ve gathered it all.",
	},
	{
		Icon:        "🛏",
		Image:       "images/comfort.png",
		Title:       "Stay Comfortably",
		Description: "Find hotels and home-stays that suit your preferences.",
	},
	{
		Icon:        "🍜",
		Image:       "images/food.png",
		Title:       "Local Cuisines",
		Description: "Routes recommendation for you to travel easily.",
	},
	{
		Icon:        "🚌",
		Image:       "images/travel.png",
		Title:       "Trip Everywhere",
		Description: "Become a local; we help you to travel easily and efficiently.",
	},
}

var destinations = []Destination{
	{
		Image: "images/montigo-resorts-nongsa.jpg",
		Title: "Montigo Resort Nongsa",
		Description: "🛏 2.3 km from Hang Nadim Intl. Airport\n" +
			"⛴ 1.1 km from Batam Centre Ferry Port\n" +
			"🏖 5 km from Nagoya Business Beach",
		Highlight: "A resort with stunning ocean views",
		Accent:    "#6366F1",
	},
	{
		Image: "images/masjid_penyengat.jpg",
		Title: "Pulau Penyengat",
		Description: "🛏 2 km from Batam Pinang\n" +
			"⛴ 1 hour from Harbour Bay Ferry Port\n" +
			"🏖 1 hour from Kijang Ferry Port",
		Highlight: "Your go-to for historical island exploration",
		Accent:    "#22C55E",
	},
	{
		Image: "images/luti-gendang.jpg",
		Title: "Luti Gendang",
		Description: "🍽 Fried dough filled with rich spices\n" +
			"😋 Savory, a good discovery for first-timers\n" +
			"🛒 Available at most traditional markets",
		Highlight: "Authentic traditional cuisine you must try",
		Accent:    "#F97316",
	},
}

var promo = Promo{
	Heading:      "Explore Batam with",
	Tagline:      "Your seamless way to explore Batam",
	Lead:         "Discover top destinations, comfy rides, and curated experiences,",
	LeadStrong:   "all in one trip.",
	Body:         "we collaborate with the government and local partners, delivering a comfortable, authentic cultural journey.",
	Image:        "images/bus.png",
	CallToAction: "Explore",
}

var testimonials = []Testimonial{
	{
		Initial: "H",
		Name:    "Himmel",
		Quote: "The website is very clear, helpful, and not confusing. There is also a recommendation part " +
			"to show popular things, which helped me to make up my plans.",
		Accent: "#3B82F6",
	},
	{
		Initial: "T",
		Name:    "Thorinn",
		Quote:   "First time using this website, happy with the planned and awesome website interface to discover.",
		Accent:  "#F59E0B",
	},
}

var footer = Footer{
	Email:     "zona.official@gmail.com",
	Address:   []string{"Engku Putri, Kec. Batam, Kec. Batam Kota,", "Kota Batam, Kepulauan Riau, Indonesia"},
	Socials:   []Social{{Icon: "📺", Label: "YouTube"}, {Icon: "❌", Label: "X"}, {Icon: "📷", Label: "Instagram"}},
	Languages: []string{"ENG", "IND"},
	Owner:     "ZoNa",
}

func NavigationItems() []NavigationItem {
	return slices.Clone(navigationItems)
}

// Label returns the display label of a known section.
func Label(id model.SectionID) (string, bool) {
	for _, item := range navigationItems {
		if item.ID == id {
			return item.Label, true
		}
	}

	return "", false
}

func HeroBanner() Hero {
	out := hero
	out.Lines = slices.Clone(hero.Lines)

	return out
}

func Features() []Feature {
	return slices.Clone(features)
}

func Destinations() []Destination {
	return slices.Clone(destinations)
}

func PromoSection() Promo {
	return promo
}

func Testimonials() []Testimonial {
	return slices.Clone(testimonials)
}

func FooterInfo() Footer {
	out := footer
	out.Address = slices.Clone(footer.Address)
	out.Socials = slices.Clone(footer.Socials)
	out.Languages = slices.Clone(footer.Languages)

	return out
}
