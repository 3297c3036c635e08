package ports

import "github.com/AntonioJCosta/pipesh/internal/core/domain/process"

// Reaper waits for spawned children and collects their raw exit status.
type Reaper interface {
	// Reap waits len(pids) times. onReaped, if not nil, is called as soon as
	// each record is complete. The returned slice is in the order records
	// were produced.
	Reap(pids []int, onReaped func(process.Record)) []process.Record
}
