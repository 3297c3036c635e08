package tokenizer

import (
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
)

// WhitespaceTokenizer splits lines on whitespace and on standalone pipe tokens.
type WhitespaceTokenizer struct {
	maxArgs int
}

// NewWhitespaceTokenizer creates a tokenizer that keeps at most
// pipeline.MaxArgs arguments per command.
func NewWhitespaceTokenizer() ports.Tokenizer {
	return &WhitespaceTokenizer{maxArgs: pipeline.MaxArgs}
}

/*
Tokenize breaks a line into commands.

Only a token that is exactly "|" separates commands; "ls|wc" stays a single
argument. Every separator closes the current command, even an empty one, so
a non-blank line always yields separators+1 commands. A blank line yields an
empty Pipeline.
*/
func (t *WhitespaceTokenizer) Tokenize(line string) pipeline.Pipeline {
	tokens := t.splitTokens(line)
	if len(tokens) == 0 {
		return pipeline.Pipeline{}
	}

	var commands []pipeline.Command
	current := pipeline.Command{}
	for _, tok := range tokens {
		if tok == pipeline.Separator {
			commands = append(commands, current)
			current = pipeline.Command{}
			continue
		}
		current.Args = t.appendCapped(current.Args, tok)
	}
	commands = append(commands, current)

	return pipeline.Pipeline{Commands: commands}
}
