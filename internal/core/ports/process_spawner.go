package ports

import "github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"

/*
ProcessSpawner creates one child per pipeline stage. stdin and stdout are the
descriptors the child must see as its standard input and output; every other
pipe descriptor is closed in the child before the program image is replaced.
*/
type ProcessSpawner interface {
	Spawn(stage int, cmd pipeline.Command, stdin, stdout int) (pid int, err error)
}
