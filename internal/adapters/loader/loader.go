/*
Package loader is the program loader that runs inside every pipeline child.

The shell creates a child by re-executing its own binary with argv[0] set to
Marker. By the time the loader runs, the child's standard streams already
point at the stage's pipe ends and every other pipe descriptor has been
closed by close-on-exec. The loader resolves the target program and replaces
its own image with it, so the pid the parent recorded becomes the pid of the
target program.
*/
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/pipesh/internal/handlers/ui"
	"golang.org/x/sys/unix"
)

// Marker is the argv[0] a pipeline child is started with.
const Marker = "pipesh-loader"

// FailureExitCode is the status a child exits with when loading fails.
const FailureExitCode = 1

var errEmptyCommand = errors.New("empty command")

// Argv builds the argument vector used to start the loader for cmd.
func Argv(cmd pipeline.Command) []string {
	argv := make([]string, 0, len(cmd.Args)+1)
	argv = append(argv, Marker)
	return append(argv, cmd.Args...)
}

// IsChild reports whether the current process was started as a loader.
func IsChild() bool {
	return len(os.Args) > 0 && os.Args[0] == Marker
}

// RunIfChild execs the requested program when the current process is a
// loader child. It only returns when the process is not a loader child.
func RunIfChild() {
	if !IsChild() {
		return
	}
	os.Exit(Run(os.Args[1:], os.Stderr))
}

// Run loads args[0] with args as its argument vector. It returns only on
// failure, after writing the error to errOut, with the status the child
// must exit with.
func Run(args []string, errOut io.Writer) int {
	l := &Loader{lookPath: exec.LookPath, exec: unix.Exec, environ: os.Environ}
	if err := l.Exec(pipeline.Command{Args: args}); err != nil {
		fmt.Fprintln(errOut, ui.ErrorColor(err.Error()))
	}
	return FailureExitCode
}

// Loader replaces the current process image with a target program.
type Loader struct {
	lookPath func(file string) (string, error)
	exec     func(argv0 string, argv []string, envv []string) error
	environ  func() []string
}

// Exec never returns on success. On failure it returns an Exec error.
func (l *Loader) Exec(cmd pipeline.Command) error {
	if cmd.IsEmpty() {
		return shellerr.New(shellerr.Exec, shellerr.NoStage, errEmptyCommand)
	}
	path, err := l.resolve(cmd.Name())
	if err != nil {
		return shellerr.New(shellerr.Exec, shellerr.NoStage, err)
	}
	if err := l.exec(path, cmd.Args, l.environ()); err != nil {
		return shellerr.New(shellerr.Exec, shellerr.NoStage, fmt.Errorf("%s: %w", cmd.Name(), err))
	}
	// unreachable: exec only returns on error
	return nil
}

// resolve searches PATH for bare names. Names containing a slash are used
// as given. A match found through a relative PATH entry is accepted, as
// execvp would.
func (l *Loader) resolve(name string) (string, error) {
	path, err := l.lookPath(name)
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return "", err
	}
	return path, nil
}
