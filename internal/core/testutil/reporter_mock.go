package testutil

import (
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
)

// MockReporter records everything it is asked to report.
type MockReporter struct {
	Exits      []process.Record
	Errors     []error
	Summarized [][]process.Record
}

func (m *MockReporter) ReportExit(rec process.Record) {
	m.Exits = append(m.Exits, rec)
}

func (m *MockReporter) ReportError(err error) {
	m.Errors = append(m.Errors, err)
}

func (m *MockReporter) Summarize(_ pipeline.Pipeline, records []process.Record) {
	m.Summarized = append(m.Summarized, records)
}
