package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
)

// MockPipelineRunner is a mock implementation of ports.PipelineRunner.
type MockPipelineRunner struct {
	RunFunc func(p pipeline.Pipeline) (ports.RunResult, error)
}

// Run calls the mock RunFunc.
func (m *MockPipelineRunner) Run(p pipeline.Pipeline) (ports.RunResult, error) {
	if m.RunFunc != nil {
		return m.RunFunc(p)
	}
	return ports.RunResult{}, errors.New("MockPipelineRunner.RunFunc not implemented")
}
