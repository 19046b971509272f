package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zona-batam/zona/internal/config"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. It holds no page logic, it only routes messages from
// background systems to the UI.
type App struct {
	ui            UI
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start routing you must call Start().
func NewApp(ui UI, configUpdates <-chan config.Config) *App {
	return &App{ui: ui, configUpdates: configUpdates}
}

// Start forwards reloaded configs to the UI until the context is cancelled.
func (app *App) Start(ctx context.Context) error {
	for {
		select {
		case conf := <-app.configUpdates:
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return nil
		}
	}
}
