package procspawn

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/AntonioJCosta/pipesh/internal/adapters/loader"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"golang.org/x/sys/unix"
)

// closedFd in ProcAttr.Files closes that descriptor in the child.
const closedFd = ^uintptr(0)

/*
ForkExecSpawner implements the ProcessSpawner interface by re-executing the
shell binary as a loader child. The fork child duplicates stdin and stdout
onto descriptors 0 and 1 before exec; pipe descriptors are close-on-exec, so
nothing else of the pipeline survives into the loader.
*/
type ForkExecSpawner struct {
	self     string
	stderr   int
	forkExec func(argv0 string, argv []string, attr *syscall.ProcAttr) (int, error)
	environ  func() []string
	validFd  func(fd int) error
}

// NewForkExecSpawner creates a spawner that starts children from the
// currently running executable.
func NewForkExecSpawner() (ports.ProcessSpawner, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving own executable: %w", err)
	}
	return &ForkExecSpawner{
		self:     self,
		stderr:   process.Stderr,
		forkExec: syscall.ForkExec,
		environ:  os.Environ,
		validFd:  checkFd,
	}, nil
}

// Spawn starts the loader for cmd and returns the child's pid.
func (s *ForkExecSpawner) Spawn(stage int, cmd pipeline.Command, stdin, stdout int) (int, error) {
	files := []uintptr{uintptr(stdin), uintptr(stdout), uintptr(s.stderr)}
	for slot, fd := range []int{stdin, stdout, s.stderr} {
		if err := s.validFd(fd); err != nil {
			// An inherited standard stream that is already closed stays
			// closed in the child.
			if fd == slot {
				files[slot] = closedFd
				continue
			}
			return 0, shellerr.New(shellerr.DescriptorDuplication, stage, fmt.Errorf("descriptor %d: %w", fd, err))
		}
	}

	attr := &syscall.ProcAttr{
		Env:   s.environ(),
		Files: files,
	}
	pid, err := s.forkExec(s.self, loader.Argv(cmd), attr)
	if err != nil {
		return 0, classify(stage, err)
	}
	return pid, nil
}

// classify maps a fork/exec failure to an error kind. EBADF can only come
// from duplicating one of the stage's descriptors.
func classify(stage int, err error) error {
	if errors.Is(err, syscall.EBADF) {
		return shellerr.New(shellerr.DescriptorDuplication, stage, err)
	}
	return shellerr.New(shellerr.ProcessCreation, stage, err)
}

func checkFd(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	return err
}
