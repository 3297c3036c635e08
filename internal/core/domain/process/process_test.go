package process

import (
	"errors"
	"testing"
)

func TestRecord_ExitCode(t *testing.T) {
	tests := []struct {
		name         string
		rec          Record
		wantCode     int
		wantExited   bool
		wantSignaled bool
	}{
		{name: "success", rec: Record{Status: 0}, wantCode: 0, wantExited: true},
		{name: "exit 1", rec: Record{Status: 1 << 8}, wantCode: 1, wantExited: true},
		{name: "exit 127", rec: Record{Status: 127 << 8}, wantCode: 127, wantExited: true},
		{name: "killed by SIGKILL", rec: Record{Status: 9}, wantCode: -1, wantSignaled: true},
		{name: "wait failed", rec: Record{Err: errors.New("no child")}, wantCode: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.ExitCode(); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
			if got := tt.rec.Exited(); got != tt.wantExited {
				t.Errorf("Exited() = %v, want %v", got, tt.wantExited)
			}
			if got := tt.rec.Signaled(); got != tt.wantSignaled {
				t.Errorf("Signaled() = %v, want %v", got, tt.wantSignaled)
			}
		})
	}
}
