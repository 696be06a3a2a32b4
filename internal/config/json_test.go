package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir":"json-data","log_level":"warn"}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"app", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "json-data", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseJson_EmptyFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"debug"}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"app", "-config", path}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "popx-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"app"}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "popx-data", cfg.DataDir)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	origArgs := os.Args
	os.Args = []string{"app", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}
