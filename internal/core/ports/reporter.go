package ports

import (
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
)

// Reporter writes exit reports and error messages for the user.
type Reporter interface {
	ReportExit(rec process.Record)
	ReportError(err error)
	Summarize(p pipeline.Pipeline, records []process.Record)
}
