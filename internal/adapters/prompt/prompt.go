/*
Package prompt supplies input lines to the shell, with a line-editing prompt
on terminals and a plain reader for piped input.
*/
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/AntonioJCosta/pipesh/internal/handlers/ui"
	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
)

// NewLineReader picks the terminal reader when in is a terminal and the
// plain reader otherwise. The prompt is only shown on terminals.
func NewLineReader(promptText string, in *os.File) (ports.LineReader, error) {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminalReader(promptText)
	}
	return NewStreamReader(in), nil
}

// TerminalReader reads lines through readline. No history file is kept.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a readline-backed reader showing promptText.
func NewTerminalReader(promptText string) (ports.LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: ui.PromptColor(promptText),
	})
	if err != nil {
		return nil, fmt.Errorf("initializing terminal prompt: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine returns the next line. An interrupted line is returned as empty.
func (r *TerminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func (r *TerminalReader) Close() error {
	return r.rl.Close()
}

// StreamReader reads newline-terminated lines from any reader.
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader creates a reader over in.
func NewStreamReader(in io.Reader) ports.LineReader {
	return &StreamReader{r: bufio.NewReader(in)}
}

// ReadLine returns the next line without its terminator. A final line
// without a newline is still returned; io.EOF follows it.
func (s *StreamReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *StreamReader) Close() error {
	return nil
}
