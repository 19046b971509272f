package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/ui/input"
	"github.com/zona-batam/zona/internal/ui/model"
)

func allStates() []model.ViewState {
	var states []model.ViewState
	for _, section := range model.Sections {
		for _, open := range []bool{false, true} {
			states = append(states, model.ViewState{Active: section, MenuOpen: open})
		}
	}

	return states
}

func TestNewViewState(t *testing.T) {
	state := model.NewViewState()
	require.Equal(t, model.SectionHome, state.Active)
	require.False(t, state.MenuOpen)
	require.True(t, state.IsHome())
}

func TestSelectSectionFromAnyState(t *testing.T) {
	for _, from := range allStates() {
		for _, section := range model.Sections {
			next := from.SelectSection(section)
			require.Equal(t, section, next.Active)
			require.False(t, next.MenuOpen)
		}
	}
}

func TestSelectSameSectionClosesMenu(t *testing.T) {
	state := model.ViewState{Active: model.SectionEvents, MenuOpen: true}
	next := state.SelectSection(model.SectionEvents)
	require.Equal(t, model.SectionEvents, next.Active)
	require.False(t, next.MenuOpen)
}

func TestSelectSectionKeepsLayout(t *testing.T) {
	state := model.ViewState{Active: model.SectionHome, Width: 120, Height: 40, Compact: true}
	next := state.SelectSection(model.SectionPlaces)
	require.Equal(t, 120, next.Width)
	require.Equal(t, 40, next.Height)
	require.True(t, next.Compact)
}

func TestSelectUnknownSectionStoredVerbatim(t *testing.T) {
	next := model.NewViewState().ToggleMobileMenu().SelectSection("beaches")
	require.Equal(t, model.SectionID("beaches"), next.Active)
	require.False(t, next.MenuOpen)
	require.False(t, next.IsHome())
}

func TestToggleMobileMenuInvolution(t *testing.T) {
	for _, from := range allStates() {
		once := from.ToggleMobileMenu()
		require.NotEqual(t, from.MenuOpen, once.MenuOpen)
		require.Equal(t, from.Active, once.Active)
		require.Equal(t, from, once.ToggleMobileMenu())
	}
}

func TestNavigationScenario(t *testing.T) {
	state := model.NewViewState()

	state = state.ToggleMobileMenu()
	require.Equal(t, model.ViewState{Active: model.SectionHome, MenuOpen: true}, state)

	state = state.SelectSection(model.SectionPlaces)
	require.Equal(t, model.ViewState{Active: model.SectionPlaces, MenuOpen: false}, state)

	state = state.SelectSection(model.SectionHome)
	require.Equal(t, model.NewViewState(), state)
}

func TestReturnHomeFromAnySection(t *testing.T) {
	for _, section := range model.Sections {
		state := model.NewViewState().SelectSection(section)
		if section != model.SectionHome {
			require.False(t, state.IsHome())
		}
		require.Equal(t, model.NewViewState(), state.SelectSection(model.SectionHome))
	}
}

func TestSectionTitle(t *testing.T) {
	require.Equal(t, "Go Zona Section", model.SectionGoZoNa.Title())
	require.Equal(t, "Accommodation Section", model.SectionAccommodation.Title())
	require.Equal(t, "Events Section", model.SectionEvents.Title())
	require.Equal(t, "FOO Section", model.SectionID("FOO").Title())
	require.Equal(t, "Beach Club-bar Section", model.SectionID("beach-club-bar").Title())
	require.Equal(t, "ÉTé Section", model.SectionID("éTé").Title())
}

func TestSectionGroupNext(t *testing.T) {
	require.Equal(t, model.SectionAccommodation, model.Sections.Next(model.SectionHome, input.Right))
	require.Equal(t, model.SectionHome, model.Sections.Next(model.SectionGoZoNa, input.Right))
	require.Equal(t, model.SectionGoZoNa, model.Sections.Next(model.SectionHome, input.Left))
	require.Equal(t, model.SectionHome, model.Sections.Next("unknown", input.Right))
	require.True(t, model.Sections.Contains(model.SectionEvents))
	require.False(t, model.Sections.Contains("unknown"))
}
