package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.USB.Timeout)
	assert.False(t, cfg.USB.DetachKernelDriver)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, -1, cfg.Select.Index)
	assert.Empty(t, cfg.Select.Name)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
usb:
  timeout: 250ms
  detach_kernel_driver: true
log:
  level: debug
  format: json
select:
  vendor_product: "0x046d:0x0825"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.USB.Timeout)
	assert.True(t, cfg.USB.DetachKernelDriver)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "0x046d:0x0825", cfg.Select.VendorProduct)

	opts := cfg.Options()
	assert.Equal(t, 250*time.Millisecond, opts.Timeout)
	assert.True(t, opts.DetachKernelDriver)
}

func TestLoadConfigSearchPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".config", "uvc-util", "uvc-util.yaml"), "select:\n  name: Home Camera\n")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Home Camera", cfg.Select.Name)

	// the working directory wins
	writeFile(t, filepath.Join(dir, "uvc-util.yaml"), "select:\n  name: Local Camera\n")
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Local Camera", cfg.Select.Name)
}

func TestLoadConfigEnv(t *testing.T) {
	isolate(t)
	t.Setenv("UVC_UTIL_USB_TIMEOUT", "3s")
	t.Setenv("UVC_UTIL_SELECT_INDEX", "2")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.USB.Timeout)
	assert.Equal(t, 2, cfg.Select.Index)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "log:\n  level: loud\n")
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	writeFile(t, bad, "log:\n  format: xml\n")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	isolate(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(cfg.Handler(&buf, false))
	logger.Info("hidden")
	logger.Warn("shown", "control", "brightness")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "control=brightness")

	buf.Reset()
	cfg.Log.Format = "json"
	logger = slog.New(cfg.Handler(&buf, true))
	logger.Debug("probe", "selector", 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "probe", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
}
