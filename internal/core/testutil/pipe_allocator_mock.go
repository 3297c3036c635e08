package testutil

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/pipesh/internal/core/ports"
)

// MockPipeAllocator is a mock implementation of ports.PipeAllocator.
type MockPipeAllocator struct {
	AllocateFunc func(n int) (ports.DescriptorSet, error)
}

// Allocate calls the mock AllocateFunc.
func (m *MockPipeAllocator) Allocate(n int) (ports.DescriptorSet, error) {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(n)
	}
	return nil, errors.New("MockPipeAllocator.AllocateFunc not implemented")
}

/*
MockDescriptorSet is an in-memory ports.DescriptorSet. Pipe i uses the fake
descriptors 100+2i (read) and 101+2i (write). Every close is appended to
Events as "close r<i>" or "close w<i>", and Log, when set, receives the same
events so tests can interleave them with spawns.
*/
type MockDescriptorSet struct {
	N      int
	Closed map[int]bool
	Events []string
	Log    func(event string)
}

// NewMockDescriptorSet creates a set of n open fake pipes.
func NewMockDescriptorSet(n int) *MockDescriptorSet {
	return &MockDescriptorSet{N: n, Closed: map[int]bool{}}
}

func (m *MockDescriptorSet) Pipes() int         { return m.N }
func (m *MockDescriptorSet) ReadEnd(i int) int  { return 100 + 2*i }
func (m *MockDescriptorSet) WriteEnd(i int) int { return 101 + 2*i }

func (m *MockDescriptorSet) CloseRead(i int) error {
	m.close(m.ReadEnd(i), fmt.Sprintf("close r%d", i))
	return nil
}

func (m *MockDescriptorSet) CloseWrite(i int) error {
	m.close(m.WriteEnd(i), fmt.Sprintf("close w%d", i))
	return nil
}

func (m *MockDescriptorSet) CloseAll() error {
	for i := 0; i < m.N; i++ {
		_ = m.CloseRead(i)
		_ = m.CloseWrite(i)
	}
	return nil
}

func (m *MockDescriptorSet) Open() int {
	return 2*m.N - len(m.Closed)
}

func (m *MockDescriptorSet) close(fd int, event string) {
	if m.Closed[fd] {
		return
	}
	m.Closed[fd] = true
	m.Events = append(m.Events, event)
	if m.Log != nil {
		m.Log(event)
	}
}
