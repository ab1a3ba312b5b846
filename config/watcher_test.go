package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watcherTestLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogd.yml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  search_depth: 3\n"), 0644))

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, watcherTestLogger(), func(cfg *Config) {
		reloads <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("limits:\n  search_depth: 2\n  total_cap: 7\n"), 0644))

	select {
	case cfg := <-reloads:
		assert.Equal(t, 2, cfg.Limits.SearchDepth)
		assert.Equal(t, 7, cfg.Limits.TotalCap)
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never fired after config change")
	}
}

func TestWatcherIgnoresInvalidChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogd.yml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  search_depth: 3\n"), 0644))

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, watcherTestLogger(), func(cfg *Config) {
		reloads <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	// Schema rejects the negative cap; the callback must not see it.
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  total_cap: -1\n"), 0644))

	select {
	case cfg := <-reloads:
		t.Fatalf("callback fired for invalid config: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}

	// The watcher is still alive: a valid rewrite after the bad one lands.
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  search_depth: 1\n"), 0644))

	select {
	case cfg := <-reloads:
		assert.Equal(t, 1, cfg.Limits.SearchDepth)
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never fired after valid rewrite")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalogd.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, watcherTestLogger(), func(cfg *Config) {
		reloads <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-reloads:
		t.Fatal("callback fired for an unrelated file in the watched directory")
	case <-time.After(300 * time.Millisecond):
	}
}
