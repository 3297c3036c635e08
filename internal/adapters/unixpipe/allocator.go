package unixpipe

import (
	"fmt"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"golang.org/x/sys/unix"
)

// Allocator creates anonymous pipes with pipe2(2). Every descriptor is
// close-on-exec, so a child only keeps the ends duplicated onto its
// standard streams.
type Allocator struct {
	pipe2 func(p []int, flags int) error
	close func(fd int) error
}

// NewAllocator creates a new Allocator backed by the operating system.
func NewAllocator() ports.PipeAllocator {
	return &Allocator{pipe2: unix.Pipe2, close: unix.Close}
}

// Allocate creates n pipes. If any pipe2 call fails, the pipes created so
// far are closed and a PipeCreation error is returned.
func (a *Allocator) Allocate(n int) (ports.DescriptorSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid pipe count %d", n)
	}
	set := &descriptorSet{
		fds:   make([]int, 2*n),
		open:  make([]bool, 2*n),
		close: a.close,
	}
	for i := 0; i < n; i++ {
		p := make([]int, 2)
		if err := a.pipe2(p, unix.O_CLOEXEC); err != nil {
			_ = set.CloseAll()
			return nil, shellerr.New(shellerr.PipeCreation, shellerr.NoStage, fmt.Errorf("pipe %d: %w", i, err))
		}
		set.fds[2*i], set.fds[2*i+1] = p[0], p[1]
		set.open[2*i], set.open[2*i+1] = true, true
	}
	return set, nil
}
