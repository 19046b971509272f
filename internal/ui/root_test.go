package ui

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/config"
	"github.com/zona-batam/zona/internal/store"
	"github.com/zona-batam/zona/internal/ui/command"
	"github.com/zona-batam/zona/internal/ui/model"
	"github.com/zona-batam/zona/internal/ui/scroll"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type fakeRatings struct {
	mu      sync.Mutex
	ratings []store.Rating
	err     error
}

func (f *fakeRatings) AddRating(_ context.Context, rating store.Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.ratings = append(f.ratings, rating)

	return nil
}

func (f *fakeRatings) RatingSummary(_ context.Context) (store.RatingSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var summary store.RatingSummary
	for _, rating := range f.ratings {
		summary.Average += float64(rating.Stars)
		summary.LastRatedOn = rating.CreatedOn
	}

	summary.Count = int64(len(f.ratings))
	if summary.Count > 0 {
		summary.Average /= float64(summary.Count)
	}

	return summary, nil
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// execute runs a command with a short deadline so tick based commands are skipped.
func execute(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	select {
	case msg := <-result:
		return msg
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// send delivers msg and feeds every resulting application message back into the model until the
// model settles.
func send(t *testing.T, root rootModel, msg tea.Msg) rootModel {
	t.Helper()

	next, cmd := root.Update(msg)
	root = next.(rootModel)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		switch msg := execute(current).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case command.SelectSectionMsg, command.ToggleMenuMsg, command.ScrolledMsg,
			command.SubmitRatingMsg, command.RatingSummaryMsg, command.StatusMsg:
			next, cmd = root.Update(msg)
			root = next.(rootModel)
			queue = append(queue, cmd)
		}
	}

	return root
}

func newTestRoot(t *testing.T, ratings RatingStore, width int) rootModel {
	t.Helper()

	return newSizedTestRoot(t, ratings, width, 40)
}

func newSizedTestRoot(t *testing.T, ratings RatingStore, width int, height int) rootModel {
	t.Helper()

	root := newRootModel(t.Context(), config.Default(), ratings, uuid.New(), BuildInfo{Version: "test"}, "", "")

	return send(t, root, tea.WindowSizeMsg{Width: width, Height: height})
}

func TestRootInitialState(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	require.True(t, root.isInitialized())
	require.Equal(t, model.SectionHome, root.viewState.Active)
	require.False(t, root.viewState.MenuOpen)
	require.False(t, root.viewState.Compact)
	require.Positive(t, root.viewState.Body)
	require.Less(t, root.viewState.Body, 40)
	require.NotEmpty(t, root.View())
}

func TestRootIgnoresInputBeforeSize(t *testing.T) {
	root := newRootModel(t.Context(), config.Default(), nil, uuid.New(), BuildInfo{}, "", "")
	root = send(t, root, runes("3"))

	require.Equal(t, model.SectionHome, root.viewState.Active)
	require.Empty(t, root.View())
}

func TestRootSelectSectionByKey(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	root = send(t, root, runes("3"))
	require.Equal(t, model.SectionPlaces, root.viewState.Active)
	require.False(t, root.viewState.MenuOpen)
	require.Contains(t, root.View(), "Places Section")

	root = send(t, root, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, model.SectionEvents, root.viewState.Active)

	root = send(t, root, tea.KeyMsg{Type: tea.KeyShiftTab})
	root = send(t, root, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, model.SectionAccommodation, root.viewState.Active)
}

func TestRootHomeShortcuts(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	root = send(t, root, runes("d"))
	require.Equal(t, model.SectionPlaces, root.viewState.Active)

	root = send(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, model.SectionHome, root.viewState.Active)

	root = send(t, root, runes("x"))
	require.Equal(t, model.SectionGoZoNa, root.viewState.Active)
	require.Contains(t, root.View(), "Go Zona Section")
}

func TestRootPlaceholderReturnsHome(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	root = send(t, root, runes("5"))
	require.Equal(t, model.SectionGoZoNa, root.viewState.Active)

	root = send(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.SectionHome, root.viewState.Active)
	require.False(t, root.viewState.MenuOpen)
	require.False(t, root.viewState.Scrolled)
}

func TestRootMobileMenu(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 60)
	require.True(t, root.viewState.Compact)

	root = send(t, root, runes("m"))
	require.True(t, root.viewState.MenuOpen)

	root = send(t, root, runes("m"))
	require.False(t, root.viewState.MenuOpen)

	root = send(t, root, runes("m"))
	require.True(t, root.viewState.MenuOpen)

	root = send(t, root, runes("4"))
	require.Equal(t, model.SectionEvents, root.viewState.Active)
	require.False(t, root.viewState.MenuOpen)
}

func TestRootMenuDisabledOnWideTerminal(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	root = send(t, root, runes("m"))
	require.False(t, root.viewState.MenuOpen)
}

func TestRootResizeTogglesCompact(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)
	require.False(t, root.viewState.Compact)

	root = send(t, root, tea.WindowSizeMsg{Width: 70, Height: 30})
	require.True(t, root.viewState.Compact)
	require.Equal(t, 70, root.viewState.Width)

	conf := config.Default()
	conf.CompactWidth = 60
	root = send(t, root, conf)
	require.False(t, root.viewState.Compact)
}

func TestRootHelpSwallowsInput(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)

	root = send(t, root, runes("?"))
	require.True(t, root.showHelp)

	root = send(t, root, runes("3"))
	require.Equal(t, model.SectionHome, root.viewState.Active)

	root = send(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, root.showHelp)
}

func TestRootSubmitRating(t *testing.T) {
	ratings := &fakeRatings{}
	root := newTestRoot(t, ratings, 120)

	root = send(t, root, runes("-"))
	root = send(t, root, runes("s"))

	require.Len(t, ratings.ratings, 1)
	require.Equal(t, 4, ratings.ratings[0].Stars)
	require.Equal(t, root.sessionID, ratings.ratings[0].SessionID)
	require.Contains(t, root.View(), "Thanks for rating ZoNa!")
}

func TestRootSubmitRatingFailure(t *testing.T) {
	ratings := &fakeRatings{err: errors.New("disk full")}
	root := newTestRoot(t, ratings, 120)

	root = send(t, root, runes("s"))

	require.Empty(t, ratings.ratings)
	require.Contains(t, root.View(), "Failed to save rating")
}

func TestRootScrollSwitchesHeader(t *testing.T) {
	for _, size := range []struct{ width, height int }{
		{120, 40},
		{120, 50},
		{160, 45},
		{200, 50},
		{60, 24},
	} {
		root := newSizedTestRoot(t, &fakeRatings{}, size.width, size.height)
		require.False(t, root.viewState.Scrolled)

		root = send(t, root, tea.KeyMsg{Type: tea.KeyPgDown})
		require.Greater(t, root.home.Offset(), scroll.Threshold/scroll.RowHeight, "%dx%d", size.width, size.height)
		require.True(t, root.viewState.Scrolled, "%dx%d", size.width, size.height)

		root = send(t, root, runes("G"))
		require.True(t, root.viewState.Scrolled, "%dx%d", size.width, size.height)

		root = send(t, root, runes("g"))
		require.Equal(t, 0, root.home.Offset())
		require.False(t, root.viewState.Scrolled, "%dx%d", size.width, size.height)
	}
}

func TestRootScrollReleasedOnLeave(t *testing.T) {
	root := newTestRoot(t, &fakeRatings{}, 120)
	root = send(t, root, tea.KeyMsg{Type: tea.KeyPgDown})
	require.True(t, root.viewState.Scrolled)

	root = send(t, root, runes("2"))
	require.False(t, root.viewState.Scrolled)
	require.Equal(t, 0, root.home.Offset())

	root = send(t, root, runes("1"))
	require.False(t, root.viewState.Scrolled)
}
