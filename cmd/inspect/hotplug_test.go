package main

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchHotplug(t *testing.T) {
	root := t.TempDir()
	bus := filepath.Join(root, "001")
	require.NoError(t, os.Mkdir(bus, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, watchHotplug(ctx, root, 20*time.Millisecond, func() { calls.Add(1) }))

	node := filepath.Join(bus, "004")
	require.NoError(t, os.WriteFile(node, nil, 0o644))
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, os.Remove(node))
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestWatchHotplugNewBus(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, watchHotplug(ctx, root, 20*time.Millisecond, func() { calls.Add(1) }))

	bus := filepath.Join(root, "002")
	require.NoError(t, os.Mkdir(bus, 0o755))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)

	before := calls.Load()
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(bus, "001"), nil, 0o644))
	assert.Eventually(t, func() bool { return calls.Load() > before }, 2*time.Second, 5*time.Millisecond)
}

func TestWatchHotplugMissingRoot(t *testing.T) {
	err := watchHotplug(context.Background(), filepath.Join(t.TempDir(), "none"), time.Millisecond, func() {})
	assert.Error(t, err)
}
