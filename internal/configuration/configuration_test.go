package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInitializesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:5000", config.ServerURL)
	require.Equal(t, "en-US", config.Speech.Language)
	require.NotEmpty(t, config.Speech.SynthesizerCommand)
	require.Empty(t, config.Speech.RecognizerCommand)

	// The default config file must have been written.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParseMergesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url": "https://travel.example.com"}`), 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "https://travel.example.com", config.ServerURL)
	require.NotNil(t, config.Speech)
	require.Equal(t, "en-US", config.Speech.Language)
	require.NotNil(t, config.Export)
	require.Equal(t, ".", config.Export.Directory)
}

func TestParseEnvOverridesServerURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv(ServerURLEnvVar, "http://override.example.com")

	config, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "http://override.example.com", config.ServerURL)
}
