package main

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/zona-batam/zona/internal/config"
)

type recordingUI struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingUI) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = append(r.msgs, msg)
}

func (r *recordingUI) Run() error {
	return nil
}

func (r *recordingUI) received() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]tea.Msg(nil), r.msgs...)
}

func TestAppForwardsConfigUpdates(t *testing.T) {
	updates := make(chan config.Config)
	recorder := &recordingUI{}
	app := NewApp(recorder, updates)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- app.Start(ctx) }()

	conf := config.Default()
	conf.CompactWidth = 100
	updates <- conf

	require.Eventually(t, func() bool { return len(recorder.received()) == 1 }, time.Second, 10*time.Millisecond)
	require.Equal(t, conf, recorder.received()[0])

	cancel()
	require.NoError(t, <-done)
}
