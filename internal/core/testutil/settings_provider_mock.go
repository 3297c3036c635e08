package testutil

import "github.com/AntonioJCosta/pipesh/internal/core/domain/settings"

// MockSettingsProvider is a mock implementation of ports.SettingsProvider.
type MockSettingsProvider struct {
	LoadFunc func() (settings.Settings, error)
}

// Load calls the mock LoadFunc, or returns the defaults.
func (m *MockSettingsProvider) Load() (settings.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return settings.Default(), nil
}
