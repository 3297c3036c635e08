package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/AntonioJCosta/pipesh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTokenizeCommand creates the 'tokenize' subcommand.
func NewTokenizeCommand(tokenizer ports.Tokenizer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize LINE",
		Short: "Show how a line splits into pipeline stages without running it.",
		Long: `Splits LINE exactly as the shell would and prints one row per stage.
Quote the line so your own shell passes "|" through.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenizeCmd(cmd, args, tokenizer)
		},
	}
	return cmd
}

func runTokenizeCmd(cmd *cobra.Command, args []string, tokenizer ports.Tokenizer) error {
	out := cmd.OutOrStdout()
	p := tokenizer.Tokenize(strings.Join(args, " "))

	if p.IsEmpty() {
		fmt.Fprintln(out, ui.InfoColor("No commands: the line is blank."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("%d stage(s), %d pipe(s):", p.Len(), p.PipeCount())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Stage", "Program", "Arguments"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, c := range p.Commands {
		program := c.Name()
		if c.IsEmpty() {
			program = "(empty)"
		}
		var rest []string
		if len(c.Args) > 1 {
			rest = c.Args[1:]
		}
		table.Append([]string{ui.StageColor(strconv.Itoa(i)), ui.CommandColor(program), strings.Join(rest, " ")})
	}
	table.Render()
	return nil
}
