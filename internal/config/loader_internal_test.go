package config

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestConfigChangeDeliveredWhileOpen(t *testing.T) {
	changes := make(chan Config, 1)
	loader := NewLoader(changes, t.TempDir())
	require.NoError(t, loader.Write(Default()))

	loader.onConfigChange(fsnotify.Event{Op: fsnotify.Write})
	require.Equal(t, Default(), <-changes)
}

func TestConfigChangeAfterCloseDoesNotBlock(t *testing.T) {
	// Unbuffered with no reader, like the app after it stopped forwarding.
	changes := make(chan Config)
	loader := NewLoader(changes, t.TempDir())
	require.NoError(t, loader.Write(Default()))

	loader.Close()
	loader.Close()

	done := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Op: fsnotify.Write})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("config change blocked after close")
	}
}

func TestConfigChangeIgnoresOtherOps(t *testing.T) {
	changes := make(chan Config, 1)
	loader := NewLoader(changes, t.TempDir())
	require.NoError(t, loader.Write(Default()))

	loader.onConfigChange(fsnotify.Event{Op: fsnotify.Chmod})
	require.Empty(t, changes)
}
