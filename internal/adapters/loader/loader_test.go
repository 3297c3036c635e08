package loader

import (
	"bytes"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"golang.org/x/sys/unix"
)

func TestArgv(t *testing.T) {
	got := Argv(pipeline.Command{Args: []string{"wc", "-l"}})
	want := []string{Marker, "wc", "-l"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() = %v, want %v", got, want)
	}
}

func TestLoader_Exec(t *testing.T) {
	env := []string{"A=1"}
	tests := []struct {
		name       string
		cmd        pipeline.Command
		lookPath   func(string) (string, error)
		execErr    error
		wantPath   string
		wantErr    bool
		wantErrSub string
	}{
		{
			name:     "resolves bare name",
			cmd:      pipeline.Command{Args: []string{"ls", "-l"}},
			lookPath: func(string) (string, error) { return "/bin/ls", nil },
			wantPath: "/bin/ls",
		},
		{
			name:     "accepts relative path match",
			cmd:      pipeline.Command{Args: []string{"tool"}},
			lookPath: func(string) (string, error) { return "tool", exec.ErrDot },
			wantPath: "tool",
		},
		{
			name:       "program not found",
			cmd:        pipeline.Command{Args: []string{"nope"}},
			lookPath:   func(string) (string, error) { return "", exec.ErrNotFound },
			wantErr:    true,
			wantErrSub: "executable file not found",
		},
		{
			name:       "exec fails",
			cmd:        pipeline.Command{Args: []string{"./script"}},
			lookPath:   func(string) (string, error) { return "./script", nil },
			execErr:    unix.EACCES,
			wantPath:   "./script",
			wantErr:    true,
			wantErrSub: "permission denied",
		},
		{
			name:       "empty command",
			cmd:        pipeline.Command{},
			lookPath:   func(string) (string, error) { t.Error("lookPath called for empty command"); return "", nil },
			wantErr:    true,
			wantErrSub: "empty command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			var gotArgv, gotEnv []string
			l := &Loader{
				lookPath: tt.lookPath,
				exec: func(argv0 string, argv []string, envv []string) error {
					gotPath, gotArgv, gotEnv = argv0, argv, envv
					if tt.execErr != nil {
						return tt.execErr
					}
					// a real exec would not return
					return nil
				},
				environ: func() []string { return env },
			}

			err := l.Exec(tt.cmd)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Exec() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, shellerr.ErrExec) {
					t.Errorf("Exec() error = %v, want an Exec error", err)
				}
				if !strings.Contains(err.Error(), tt.wantErrSub) {
					t.Errorf("Exec() error = %q, want it to contain %q", err.Error(), tt.wantErrSub)
				}
			}
			if gotPath != tt.wantPath {
				t.Errorf("exec path = %q, want %q", gotPath, tt.wantPath)
			}
			if tt.wantPath != "" {
				if !reflect.DeepEqual(gotArgv, tt.cmd.Args) {
					t.Errorf("exec argv = %v, want %v", gotArgv, tt.cmd.Args)
				}
				if !reflect.DeepEqual(gotEnv, env) {
					t.Errorf("exec env = %v, want %v", gotEnv, env)
				}
			}
		})
	}
}

func TestRun_ReportsFailure(t *testing.T) {
	var errOut bytes.Buffer
	code := Run([]string{"pipesh-definitely-not-a-program"}, &errOut)
	if code != FailureExitCode {
		t.Errorf("Run() = %d, want %d", code, FailureExitCode)
	}
	if !strings.Contains(errOut.String(), "Error executing command") {
		t.Errorf("Run() wrote %q, want an exec error message", errOut.String())
	}
}
