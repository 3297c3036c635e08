package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/spf13/cobra"
)

// runRootCmd processes one line, or every line with --loop.
func runRootCmd(cmd *cobra.Command, w Wiring) error {
	debug, _ := cmd.Flags().GetBool(flagDebug)
	logger := debugLogger(debug, cmd.ErrOrStderr())

	cfg, err := loadSettings(cmd, w)
	if err != nil {
		return err
	}

	runner, err := w.Runner(cfg, logger)
	if err != nil {
		return fmt.Errorf("could not initialize pipeline runner: %w", err)
	}
	executor := lineExecutor{tokenizer: w.Tokenizer, runner: runner, reporter: w.Reporter, summary: cfg.Summary, logger: logger}

	if cmd.Flags().Changed(flagCommand) {
		line, _ := cmd.Flags().GetString(flagCommand)
		executor.run(line)
		return nil
	}

	reader, err := w.LineReader(cfg.Prompt)
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer reader.Close()

	loop, _ := cmd.Flags().GetBool(flagLoop)
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		executor.run(line)
		if !loop {
			return nil
		}
	}
}

// lineExecutor runs one input line through the tokenizer and the runner.
type lineExecutor struct {
	tokenizer ports.Tokenizer
	runner    ports.PipelineRunner
	reporter  ports.Reporter
	summary   bool
	logger    *log.Logger
}

func (e lineExecutor) run(line string) {
	p := e.tokenizer.Tokenize(line)
	if p.IsEmpty() {
		return
	}

	res, err := e.runner.Run(p)
	if err != nil && e.logger != nil {
		// already reported by the runner
		e.logger.Printf("%v", err)
	}
	if e.summary {
		e.reporter.Summarize(p, res.Records)
	}
}
