/*
Package pipeline defines the core domain entities for a parsed input line.
*/
package pipeline

import "strings"

// MaxArgs is the number of arguments kept per command. Tokens beyond it are
// dropped silently.
const MaxArgs = 20

// Separator is the standalone token that splits a line into commands.
const Separator = "|"

/*
Command is one stage of a pipeline: the program name followed by its
arguments. A Command may be empty when two separators are adjacent or a
separator starts or ends the line.
*/
type Command struct {
	Args []string
}

// Name returns the program name, or "" for an empty command.
func (c Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// IsEmpty reports whether the command has no arguments at all.
func (c Command) IsEmpty() bool {
	return len(c.Args) == 0
}

// String joins the arguments with single spaces.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

/*
Pipeline is the ordered list of commands produced from one input line.
Stage i writes into stage i+1.
*/
type Pipeline struct {
	Commands []Command
}

// Len returns the number of stages.
func (p Pipeline) Len() int {
	return len(p.Commands)
}

// IsEmpty reports whether the line produced no commands.
func (p Pipeline) IsEmpty() bool {
	return len(p.Commands) == 0
}

// PipeCount returns how many pipes connect the stages (N-1, never negative).
func (p Pipeline) PipeCount() int {
	if len(p.Commands) < 2 {
		return 0
	}
	return len(p.Commands) - 1
}
