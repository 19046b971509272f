package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zona-batam/zona/internal/config"
)

var ErrUIExit = errors.New("ui error returned")

// BuildInfo describes the running binary for the help page and status bar.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, ratings RatingStore, sessionID uuid.UUID, build BuildInfo,
	configPath string, databasePath string,
) *UI {
	zone.NewGlobal()

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(userConfig.FPS),
	}
	if userConfig.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, userConfig, ratings, sessionID, build, configPath, databasePath),
			opts...),
	}
}

// Run blocks until the program exits. The scroll subscription is always released, even when the
// program is stopped through its context.
func (t UI) Run() error {
	final, err := t.program.Run()
	if root, ok := final.(rootModel); ok {
		root.teardown()
	}

	if err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
