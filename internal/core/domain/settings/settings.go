/*
Package settings holds the runtime configuration of the shell.
*/
package settings

// Reap orders.
const (
	ReapArrival  = "arrival"
	ReapCreation = "creation"
)

// DefaultPrompt is shown before reading a line from a terminal.
const DefaultPrompt = "pipesh$ "

/*
Settings is loaded from the YAML config file and then overridden by flags.
*/
type Settings struct {
	Prompt            string `yaml:"prompt"`
	ReapOrder         string `yaml:"reap_order"`
	AbortOnSpawnError bool   `yaml:"abort_on_spawn_error"`
	Summary           bool   `yaml:"summary"`
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Prompt:    DefaultPrompt,
		ReapOrder: ReapArrival,
	}
}

// WithDefaults fills zero values from Default.
func (s Settings) WithDefaults() Settings {
	d := Default()
	if s.Prompt == "" {
		s.Prompt = d.Prompt
	}
	if s.ReapOrder == "" {
		s.ReapOrder = d.ReapOrder
	}
	return s
}

// ValidReapOrder reports whether order is one of the known reap orders.
func ValidReapOrder(order string) bool {
	return order == ReapArrival || order == ReapCreation
}
