package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/dharmaretainer/AryaAI/internal/file"
)

// ServerURLEnvVar overrides the configured backend base URL.
const ServerURLEnvVar = "ARYAAI_SERVER_URL"

var defaultConfig = Config{
	ServerURL: "http://127.0.0.1:5000",

	Admin: &AdminConfig{
		Username: "admin",
	},

	Speech: &SpeechConfig{
		Language:           "en-US",
		SynthesizerCommand: defaultSynthesizerCommand(),
	},

	Export: &ExportConfig{
		Directory: ".",
	},
}

// Config holds configuration for the aryaai tool.
// The backend base URL lives here and nowhere else.
type Config struct {
	ServerURL string `json:"server_url"`

	Admin  *AdminConfig  `json:"admin"`
	Speech *SpeechConfig `json:"speech"`
	Export *ExportConfig `json:"export"`
}

// AdminConfig holds credentials for the backend's admin endpoints.
type AdminConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SpeechConfig holds the platform speech commands.
type SpeechConfig struct {
	// BCP-47 tag passed to the speech commands.
	Language string `json:"language"`
	// Command that records one utterance and prints its transcript to stdout.
	// Speech recognition is unavailable when empty.
	RecognizerCommand []string `json:"recognizer_command"`
	// Command that reads text from its final argument and plays it aloud.
	SynthesizerCommand []string `json:"synthesizer_command"`
}

// ExportConfig holds configuration for transcript exports.
type ExportConfig struct {
	// The directory where exported documents are written.
	Directory string `json:"directory"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	// A .env file may carry the server URL override.
	_ = godotenv.Load()

	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	if err := mergo.Merge(config, defaultConfig); err != nil {
		return nil, errors.Wrap(err, "merging defaults")
	}

	if serverURL := os.Getenv(ServerURLEnvVar); serverURL != "" {
		config.ServerURL = serverURL
	}

	expandedExportDirectory, err := file.ExpandPath(config.Export.Directory)
	if err != nil {
		return nil, errors.Wrap(err, "expanding export directory path")
	}
	config.Export.Directory = expandedExportDirectory
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, bytes, 0644); err != nil {
		return errors.Wrap(err, "writing file")
	}
	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	exists, err := file.Exists(path)
	if err != nil {
		return errors.Wrap(err, "checking config existence")
	}
	if exists {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}

func defaultSynthesizerCommand() []string {
	if runtime.GOOS == "darwin" {
		return []string{"say"}
	}
	return []string{"espeak"}
}
