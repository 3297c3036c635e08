package ports

import "github.com/AntonioJCosta/pipesh/internal/core/domain/settings"

// SettingsProvider defines the interface for loading shell settings
// from a configuration source.
type SettingsProvider interface {
	Load() (settings.Settings, error)
}
