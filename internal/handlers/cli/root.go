package cli

import (
	"io"
	"log"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/spf13/cobra"
)

// Wiring holds the collaborators the commands need. The factories run after
// flag parsing because their inputs depend on flags.
type Wiring struct {
	Tokenizer        ports.Tokenizer
	Reporter         ports.Reporter
	SettingsProvider func(configPath string) (ports.SettingsProvider, error)
	Runner           func(cfg settings.Settings, logger *log.Logger) (ports.PipelineRunner, error)
	LineReader       func(promptText string) (ports.LineReader, error)
}

// Flag names shared by the root command and its helpers.
const (
	flagCommand           = "command"
	flagLoop              = "loop"
	flagConfig            = "config"
	flagReapOrder         = "reap-order"
	flagAbortOnSpawnError = "abort-on-spawn-error"
	flagSummary           = "summary"
	flagDebug             = "debug"
)

func NewRootCommand(version string, w Wiring) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pipesh",
		Short: "pipesh runs one command line as a pipeline of processes.",
		Long: `pipesh reads a line, splits it into commands on standalone "|" tokens
and runs them as a pipeline of child processes connected by pipes. It prints
"process <pid> exits with <status>" for every child it reaps.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, w)
		},
	}

	rootCmd.Flags().StringP(flagCommand, "c", "", "Run this line instead of reading one from the prompt.")
	rootCmd.Flags().Bool(flagLoop, false, "Keep reading and running lines until end of input.")
	rootCmd.Flags().String(flagConfig, "", "Path to the YAML config file (default $HOME/.pipesh.yaml).")
	rootCmd.Flags().String(flagReapOrder, "", `Order to reap children in: "arrival" or "creation".`)
	rootCmd.Flags().Bool(flagAbortOnSpawnError, false, "Stop creating stages once one stage fails to spawn.")
	rootCmd.Flags().Bool(flagSummary, false, "Print a table of every reaped child after the pipeline finishes.")
	rootCmd.Flags().Bool(flagDebug, false, "Trace pipe, spawn and reap steps to standard error.")

	rootCmd.AddCommand(NewTokenizeCommand(w.Tokenizer))

	return rootCmd
}

func debugLogger(enabled bool, errOut io.Writer) *log.Logger {
	if !enabled {
		return nil
	}
	return log.New(errOut, "pipesh: ", log.Lmicroseconds)
}
