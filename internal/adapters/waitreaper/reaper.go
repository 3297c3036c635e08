package waitreaper

import (
	"errors"
	"log"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"golang.org/x/sys/unix"
)

// anyChild is the wait4 pid argument meaning "any child".
const anyChild = -1

// maxStrays bounds how many unrelated children one Reap call absorbs.
const maxStrays = 64

// WaitReaper implements the Reaper interface with wait4(2).
type WaitReaper struct {
	order  string
	wait4  func(pid int, ws *unix.WaitStatus, options int, ru *unix.Rusage) (int, error)
	logger *log.Logger
}

// NewWaitReaper creates a reaper for the given reap order (settings.ReapArrival
// or settings.ReapCreation). logger may be nil.
func NewWaitReaper(order string, logger *log.Logger) ports.Reaper {
	if !settings.ValidReapOrder(order) {
		order = settings.ReapArrival
	}
	return &WaitReaper{order: order, wait4: unix.Wait4, logger: logger}
}

/*
Reap waits len(pids) times. Record.Stage is the index of the pid in pids, or
shellerr.NoStage when a wait for any child failed.

In arrival order it waits for any child and labels each record with the pid
wait4 actually returned, so records come out in termination order with the
right pid. In creation order it waits for each pid in turn.

A failed wait produces a record carrying a Wait error and the loop moves on
to the next wait.
*/
func (r *WaitReaper) Reap(pids []int, onReaped func(process.Record)) []process.Record {
	stages := make(map[int]int, len(pids))
	for i, pid := range pids {
		stages[pid] = i
	}

	records := make([]process.Record, 0, len(pids))
	emit := func(rec process.Record) {
		records = append(records, rec)
		if onReaped != nil {
			onReaped(rec)
		}
	}

	strays := 0
	for k := 0; k < len(pids); k++ {
		target := anyChild
		if r.order == settings.ReapCreation {
			target = pids[k]
		}

		pid, ws, err := r.waitOne(target)
		if err != nil {
			rec := process.Record{Stage: shellerr.NoStage, Pid: target, Err: shellerr.New(shellerr.Wait, shellerr.NoStage, err)}
			if target != anyChild {
				rec.Stage = k
			}
			emit(rec)
			continue
		}

		stage, ok := stages[pid]
		if !ok {
			r.debugf("reaped pid %d which is not part of this pipeline", pid)
			if strays < maxStrays {
				strays++
				k--
			}
			continue
		}
		delete(stages, pid)
		emit(process.Record{Stage: stage, Pid: pid, Status: int(ws)})
	}
	return records
}

// waitOne calls wait4, retrying on EINTR.
func (r *WaitReaper) waitOne(target int) (int, unix.WaitStatus, error) {
	for {
		var ws unix.WaitStatus
		pid, err := r.wait4(target, &ws, 0, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}
		r.debugf("wait4(%d) = pid %d status %d", target, pid, int(ws))
		return pid, ws, nil
	}
}

func (r *WaitReaper) debugf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
