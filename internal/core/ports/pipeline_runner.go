package ports

import (
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
)

// RunResult is what one pipeline execution produced.
type RunResult struct {
	// Records holds one entry per reaped child.
	Records []process.Record
	// Errors holds every per-stage failure that was reported.
	Errors []error
	// Spawned is the number of children created.
	Spawned int
}

// PipelineRunner defines the contract for executing a tokenized pipeline.
type PipelineRunner interface {
	// Run executes p and returns once every spawned child has been reaped.
	// The error is non-nil only when the pipeline was aborted before any
	// child was created.
	Run(p pipeline.Pipeline) (RunResult, error)
}
