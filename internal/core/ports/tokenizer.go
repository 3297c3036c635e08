package ports

import "github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"

/*
Tokenizer defines the contract for turning a raw input line into a Pipeline.
This is a driven port, representing a domain capability.
*/
type Tokenizer interface {
	Tokenize(line string) pipeline.Pipeline
}
