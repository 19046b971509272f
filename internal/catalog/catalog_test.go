package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/catalog"
	"github.com/zona-batam/zona/internal/ui/model"
)

func TestNavigationItemsMatchSections(t *testing.T) {
	items := catalog.NavigationItems()
	require.Len(t, items, len(model.Sections))
	for idx, item := range items {
		require.Equal(t, model.Sections[idx], item.ID)
		label, found := catalog.Label(item.ID)
		require.True(t, found)
		require.Equal(t, item.Label, label)
	}

	label, found := catalog.Label(model.SectionGoZoNa)
	require.True(t, found)
	require.Equal(t, "GoZoNa", label)

	_, found = catalog.Label("beaches")
	require.False(t, found)
}

func TestContentCounts(t *testing.T) {
	require.Len(t, catalog.Features(), 4)
	require.Len(t, catalog.Destinations(), 3)
	require.Len(t, catalog.Testimonials(), 2)

	for _, destination := range catalog.Destinations() {
		require.Len(t, strings.Split(destination.Description, "\n"), 3)
		require.NotEmpty(t, destination.Highlight)
	}

	for _, testimonial := range catalog.Testimonials() {
		require.Equal(t, testimonial.Name[:1], testimonial.Initial)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	items := catalog.NavigationItems()
	items[0].Label = "Changed"
	require.Equal(t, "Home", catalog.NavigationItems()[0].Label)

	destinations := catalog.Destinations()
	destinations[1].Title = "Changed"
	require.Equal(t, "Pulau Penyengat", catalog.Destinations()[1].Title)

	hero := catalog.HeroBanner()
	hero.Lines[0] = "Changed"
	require.Equal(t, "Lost is not an option anymore.", catalog.HeroBanner().Lines[0])

	footer := catalog.FooterInfo()
	footer.Languages[0] = "FRA"
	require.Equal(t, []string{"ENG", "IND"}, catalog.FooterInfo().Languages)
}
