package testutil

import "io"

// MockLineReader returns Lines one by one and then io.EOF.
type MockLineReader struct {
	Lines  []string
	Closed bool
}

func (m *MockLineReader) ReadLine() (string, error) {
	if len(m.Lines) == 0 {
		return "", io.EOF
	}
	line := m.Lines[0]
	m.Lines = m.Lines[1:]
	return line, nil
}

func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}
