package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 2, cfg.MaxExtractions)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "/var/lib/extractor",
		"port": 9000,
		"max_extractions": 4
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/extractor", cfg.DataDir)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 4, cfg.MaxExtractions)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model, "unset fields keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "from-file", "port": 9000}`), 0o644))

	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("EXTRACTOR_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 9100, cfg.Port)
}

func TestLoad_GoogleAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "legacy-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{ nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Defaults()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := Defaults()
	cfg.DataDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")
}

func TestDerivedDirectories(t *testing.T) {
	cfg := Defaults()
	cfg.DataDir = "/srv/extractor"

	assert.Equal(t, filepath.Join("/srv/extractor", "companies"), cfg.SnapshotDir())
	assert.Equal(t, filepath.Join("/srv/extractor", "pdf"), cfg.DocumentDir())
}
