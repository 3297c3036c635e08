package ports

/*
DescriptorSet holds the 2(N-1) descriptors of the pipes connecting N stages.
Pipe i connects stage i (writer) to stage i+1 (reader). Closing an end is
idempotent so the orchestrator can close incrementally and then close the
whole set without double-closing.
*/
type DescriptorSet interface {
	// Pipes returns the number of pipes in the set.
	Pipes() int
	// ReadEnd returns the read descriptor of pipe i.
	ReadEnd(i int) int
	// WriteEnd returns the write descriptor of pipe i.
	WriteEnd(i int) int
	// CloseRead closes the read end of pipe i in this process.
	CloseRead(i int) error
	// CloseWrite closes the write end of pipe i in this process.
	CloseWrite(i int) error
	// CloseAll closes every descriptor still open.
	CloseAll() error
	// Open returns the number of descriptors still open in this process.
	Open() int
}

// PipeAllocator creates all pipes of a pipeline before any child is spawned.
type PipeAllocator interface {
	// Allocate creates n pipes. On failure no descriptor is left open.
	Allocate(n int) (DescriptorSet, error)
}
