/*
Package process defines the record kept for every spawned pipeline child.
*/
package process

import "golang.org/x/sys/unix"

// Standard stream descriptors as seen by a child.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

/*
Record is created when a child is spawned and completed when it is reaped.
Status is the raw, OS-encoded wait status. Err is set instead when waiting
failed.
*/
type Record struct {
	Stage   int
	Command string
	Pid     int
	Status  int
	Err     error
}

// Exited reports whether the child terminated normally.
func (r Record) Exited() bool {
	return r.Err == nil && unix.WaitStatus(r.Status).Exited()
}

// ExitCode decodes the raw status. It returns -1 when the child did not
// exit normally (killed by a signal, or never reaped).
func (r Record) ExitCode() int {
	if r.Err != nil {
		return -1
	}
	ws := unix.WaitStatus(r.Status)
	if !ws.Exited() {
		return -1
	}
	return ws.ExitStatus()
}

// Signaled reports whether the child was terminated by a signal.
func (r Record) Signaled() bool {
	return r.Err == nil && unix.WaitStatus(r.Status).Signaled()
}
