package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	body := `manifest_url: https://example.com/sites.json
data_url: https://data.example.com/results
fetch_timeout_seconds: 3
listen_addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/sites.json", cfg.ManifestURL)
	assert.Equal(t, "https://data.example.com/results", cfg.DataURL)
	assert.Equal(t, 3, cfg.FetchTimeoutSecs)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	// Untouched keys keep their defaults.
	assert.Equal(t, Default().RefreshIntervalMin, cfg.RefreshIntervalMin)
}

func TestLoadRejectsRelativeURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	require.NoError(t, os.WriteFile(path, []byte("manifest_url: /sites.json\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an absolute URL")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yml")
	require.NoError(t, os.WriteFile(path, []byte("manifest_url: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestHosts(t *testing.T) {
	cfg := Config{
		ManifestURL: "https://pages.example.com/sites.json",
		DataURL:     "https://data.example.com/api/results",
	}
	assert.Equal(t, []string{"pages.example.com", "data.example.com"}, cfg.Hosts())
}
