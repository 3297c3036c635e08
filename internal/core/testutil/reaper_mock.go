package testutil

import "github.com/AntonioJCosta/pipesh/internal/core/domain/process"

// MockReaper is a mock implementation of ports.Reaper.
type MockReaper struct {
	ReapFunc func(pids []int, onReaped func(process.Record)) []process.Record
}

// Reap calls the mock ReapFunc. Without one, every pid is reaped in order
// with status 0.
func (m *MockReaper) Reap(pids []int, onReaped func(process.Record)) []process.Record {
	if m.ReapFunc != nil {
		return m.ReapFunc(pids, onReaped)
	}
	records := make([]process.Record, 0, len(pids))
	for i, pid := range pids {
		rec := process.Record{Stage: i, Pid: pid}
		records = append(records, rec)
		if onReaped != nil {
			onReaped(rec)
		}
	}
	return records
}
