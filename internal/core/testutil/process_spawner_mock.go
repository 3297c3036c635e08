package testutil

import (
	"errors"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
)

// MockProcessSpawner is a mock implementation of ports.ProcessSpawner.
type MockProcessSpawner struct {
	SpawnFunc func(stage int, cmd pipeline.Command, stdin, stdout int) (int, error)
}

// Spawn calls the mock SpawnFunc.
func (m *MockProcessSpawner) Spawn(stage int, cmd pipeline.Command, stdin, stdout int) (int, error) {
	if m.SpawnFunc != nil {
		return m.SpawnFunc(stage, cmd, stdin, stdout)
	}
	return 0, errors.New("MockProcessSpawner.SpawnFunc not implemented")
}
