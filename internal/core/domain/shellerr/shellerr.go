/*
Package shellerr defines the error kinds raised while building and running a
pipeline. Each error keeps the stage it belongs to and the underlying OS
error, so callers can inspect the errno directly.
*/
package shellerr

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	PipeCreation Kind = iota + 1
	ProcessCreation
	DescriptorDuplication
	Exec
	Wait
)

// NoStage marks an error that is not tied to a pipeline stage.
const NoStage = -1

func (k Kind) String() string {
	switch k {
	case PipeCreation:
		return "PipeCreationError"
	case ProcessCreation:
		return "ProcessCreationError"
	case DescriptorDuplication:
		return "DescriptorDuplicationError"
	case Exec:
		return "ExecError"
	case Wait:
		return "WaitError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// message is the user-facing prefix for each kind.
func (k Kind) message() string {
	switch k {
	case PipeCreation:
		return "Error creating pipe"
	case ProcessCreation:
		return "Error creating child process"
	case DescriptorDuplication:
		return "Error duplicating file descriptor"
	case Exec:
		return "Error executing command"
	case Wait:
		return "Error waiting for child process"
	default:
		return "Error"
	}
}

// Sentinels for errors.Is.
var (
	ErrPipeCreation          = &Error{Kind: PipeCreation, Stage: NoStage}
	ErrProcessCreation       = &Error{Kind: ProcessCreation, Stage: NoStage}
	ErrDescriptorDuplication = &Error{Kind: DescriptorDuplication, Stage: NoStage}
	ErrExec                  = &Error{Kind: Exec, Stage: NoStage}
	ErrWait                  = &Error{Kind: Wait, Stage: NoStage}
)

/*
Error is a pipeline failure of a given Kind. Stage is the 0-based pipeline
stage, or NoStage. Err is the underlying cause, usually a syscall.Errno.
*/
type Error struct {
	Kind  Kind
	Stage int
	Err   error
}

// New creates an Error of kind k for the given stage.
func New(k Kind, stage int, err error) *Error {
	return &Error{Kind: k, Stage: stage, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.message()
	if e.Stage != NoStage {
		msg = fmt.Sprintf("%s (stage %d)", msg, e.Stage)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Errno returns the OS error code behind the failure, or 0 if there is none.
func (e *Error) Errno() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
