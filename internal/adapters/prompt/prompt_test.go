package prompt

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestStreamReader_ReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single line", input: "echo hi\n", want: []string{"echo hi"}},
		{name: "no trailing newline", input: "ls | wc", want: []string{"ls | wc"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "\n\nx\n", want: []string{"", "", "x"}},
		{name: "empty input", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStreamReader(strings.NewReader(tt.input))
			defer r.Close()

			var got []string
			for {
				line, err := r.ReadLine()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadLine() error = %v", err)
				}
				got = append(got, line)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLineReader_PipeIsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	lr, err := NewLineReader("$ ", r)
	if err != nil {
		t.Fatalf("NewLineReader() error = %v", err)
	}
	if _, ok := lr.(*StreamReader); !ok {
		t.Errorf("NewLineReader() on a pipe = %T, want *StreamReader", lr)
	}
}
