package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".pipesh.yaml"

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// An empty filePath selects $HOME/.pipesh.yaml.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home directory for config file: %w", err)
		}
		filePath = filepath.Join(home, DefaultFileName)
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Load reads and parses settings from the configured YAML file.
// If the file does not exist or is empty, it returns the defaults and no error.
func (p *YAMLProvider) Load() (settings.Settings, error) {
	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read config file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return settings.Default(), nil
	}

	var loaded settings.Settings
	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal config from %s: %w", p.filePath, err)
	}

	loaded = loaded.WithDefaults()
	if !settings.ValidReapOrder(loaded.ReapOrder) {
		return settings.Settings{}, fmt.Errorf("invalid reap_order %q in %s: want %q or %q",
			loaded.ReapOrder, p.filePath, settings.ReapArrival, settings.ReapCreation)
	}
	return loaded, nil
}
