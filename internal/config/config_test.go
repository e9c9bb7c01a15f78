package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SectionSourceFile, cfg.Sections.Source)
	assert.Equal(t, "data", cfg.Sections.DataDir)
	assert.Equal(t, 30, cfg.Heatmap.DefaultInterval)
	assert.Equal(t, "Oshawa", cfg.Heatmap.DefaultCampus)
	assert.True(t, cfg.Heatmap.IncludeHybrid)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
server:
  port: "9090"
sections:
  source: file
  data_dir: testdata
heatmap:
  default_interval: 15
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("HEATMAP_DEFAULT_CAMPUS", "Downtown")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Environment beats file, file beats defaults.
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "testdata", cfg.Sections.DataDir)
	assert.Equal(t, 15, cfg.Heatmap.DefaultInterval)
	assert.Equal(t, "Downtown", cfg.Heatmap.DefaultCampus)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Run("unknown sections source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sections:\n  source: carrier-pigeon\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("interval out of range", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("heatmap:\n  default_interval: 0\n"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestAllowedOriginList(t *testing.T) {
	cfg := &Config{}
	cfg.CORS.AllowedOrigins = "http://localhost:3000, https://studentspace.app ,"
	assert.Equal(t, []string{"http://localhost:3000", "https://studentspace.app"}, cfg.AllowedOriginList())
}
