package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/AntonioJCosta/pipesh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// Reporter implements the Reporter interface on a pair of writers.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// NewReporter creates a Reporter writing exit reports to out and errors
// to errOut.
func NewReporter(out, errOut io.Writer) ports.Reporter {
	return &Reporter{out: out, errOut: errOut}
}

// ReportExit writes "process <pid> exits with <status>" with the raw status.
// Records carrying a wait error are reported as errors instead.
func (r *Reporter) ReportExit(rec process.Record) {
	if rec.Err != nil {
		r.ReportError(rec.Err)
		return
	}
	fmt.Fprintf(r.out, "process %d exits with %d\n", rec.Pid, rec.Status)
}

// ReportError writes err on its own line to the error writer.
func (r *Reporter) ReportError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(r.errOut, ui.ErrorColor(err.Error()))
}

// Summarize renders one table row per reaped child.
func (r *Reporter) Summarize(p pipeline.Pipeline, records []process.Record) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(r.out, ui.HeaderColor("Pipeline summary:"))

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Stage", "Command", "PID", "Status", "Exit"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	for _, rec := range records {
		table.Append(summaryRow(p, rec))
	}
	table.Render()
}

func summaryRow(p pipeline.Pipeline, rec process.Record) []string {
	command := rec.Command
	if command == "" && rec.Stage >= 0 && rec.Stage < p.Len() {
		command = p.Commands[rec.Stage].String()
	}
	stage := "?"
	if rec.Stage >= 0 {
		stage = strconv.Itoa(rec.Stage)
	}
	stage, command = ui.StageColor(stage), ui.CommandColor(command)

	if rec.Err != nil {
		return []string{stage, command, strconv.Itoa(rec.Pid), "-", "wait failed"}
	}
	exit := "signal"
	if rec.Exited() {
		exit = strconv.Itoa(rec.ExitCode())
	} else if !rec.Signaled() {
		exit = "?"
	}
	return []string{stage, command, strconv.Itoa(rec.Pid), strconv.Itoa(rec.Status), exit}
}
