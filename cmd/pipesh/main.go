package main

import (
	"log"
	"os"

	"github.com/AntonioJCosta/pipesh/internal/adapters/configfile"
	"github.com/AntonioJCosta/pipesh/internal/adapters/console"
	"github.com/AntonioJCosta/pipesh/internal/adapters/loader"
	"github.com/AntonioJCosta/pipesh/internal/adapters/procspawn"
	"github.com/AntonioJCosta/pipesh/internal/adapters/prompt"
	"github.com/AntonioJCosta/pipesh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/pipesh/internal/adapters/unixpipe"
	"github.com/AntonioJCosta/pipesh/internal/adapters/waitreaper"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/AntonioJCosta/pipesh/internal/core/services/pipelinerunner"
	"github.com/AntonioJCosta/pipesh/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	// Pipeline children re-enter here and never come back.
	loader.RunIfChild()

	reporter := console.NewReporter(os.Stdout, os.Stderr)

	wiring := cli.Wiring{
		Tokenizer:        tokenizer.NewWhitespaceTokenizer(),
		Reporter:         reporter,
		SettingsProvider: configfile.NewYAMLProvider,
		Runner: func(cfg settings.Settings, logger *log.Logger) (ports.PipelineRunner, error) {
			spawner, err := procspawn.NewForkExecSpawner()
			if err != nil {
				return nil, err
			}
			return pipelinerunner.NewService(
				unixpipe.NewAllocator(),
				spawner,
				waitreaper.NewWaitReaper(cfg.ReapOrder, logger),
				reporter,
				pipelinerunner.Options{AbortOnSpawnError: cfg.AbortOnSpawnError, Logger: logger},
			), nil
		},
		LineReader: func(promptText string) (ports.LineReader, error) {
			return prompt.NewLineReader(promptText, os.Stdin)
		},
	}

	rootCmd := cli.NewRootCommand(Version, wiring)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
