package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o600))

	var calls atomic.Int32
	w, err := New(path, 50*time.Millisecond, func() { calls.Add(1) }, zerolog.Nop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0o600))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Less(t, calls.Load(), int32(5), "a burst collapses into fewer callbacks")
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o600))

	var calls atomic.Int32
	w, err := New(path, 10*time.Millisecond, func() { calls.Add(1) }, zerolog.Nop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	w, err := New(path, time.Millisecond, func() {}, zerolog.Nop())
	require.NoError(t, err)
	w.Start()
	w.Stop()
	w.Stop()
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "portfolio.yaml"), time.Millisecond, func() {}, zerolog.Nop())
	assert.Error(t, err)
}
