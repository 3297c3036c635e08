package cli

import (
	"fmt"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// loadSettings reads the config file and applies flag overrides. A config
// file that cannot be read only produces a warning; the defaults are used.
func loadSettings(cmd *cobra.Command, w Wiring) (settings.Settings, error) {
	cfg := settings.Default()

	configPath, _ := cmd.Flags().GetString(flagConfig)
	provider, err := w.SettingsProvider(configPath)
	if err == nil {
		cfg, err = provider.Load()
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", ui.WarningColor(fmt.Sprintf("Warning: could not load config: %v. Continuing with defaults.", err)))
		cfg = settings.Default()
	}

	if cmd.Flags().Changed(flagReapOrder) {
		order, _ := cmd.Flags().GetString(flagReapOrder)
		if !settings.ValidReapOrder(order) {
			return settings.Settings{}, fmt.Errorf("invalid --%s %q: want %q or %q", flagReapOrder, order, settings.ReapArrival, settings.ReapCreation)
		}
		cfg.ReapOrder = order
	}
	if cmd.Flags().Changed(flagAbortOnSpawnError) {
		cfg.AbortOnSpawnError, _ = cmd.Flags().GetBool(flagAbortOnSpawnError)
	}
	if cmd.Flags().Changed(flagSummary) {
		cfg.Summary, _ = cmd.Flags().GetBool(flagSummary)
	}
	return cfg, nil
}
