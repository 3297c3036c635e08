//go:build linux

package pipelinerunner

import (
	"io"
	"os"
	"testing"

	"github.com/AntonioJCosta/pipesh/internal/adapters/loader"
	"github.com/AntonioJCosta/pipesh/internal/adapters/procspawn"
	"github.com/AntonioJCosta/pipesh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/pipesh/internal/adapters/unixpipe"
	"github.com/AntonioJCosta/pipesh/internal/adapters/waitreaper"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/settings"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
	"github.com/AntonioJCosta/pipesh/internal/core/testutil"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	loader.RunIfChild()
	os.Exit(m.Run())
}

type realPipeline struct {
	runner   ports.PipelineRunner
	reporter *testutil.MockReporter
	out      *os.File
}

// newRealPipeline wires the OS adapters with stdin from /dev/null and the
// last stage's output going to a temp file.
func newRealPipeline(t *testing.T, order string) *realPipeline {
	t.Helper()

	devnull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	t.Cleanup(func() { devnull.Close() })

	out, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })

	spawner, err := procspawn.NewForkExecSpawner()
	require.NoError(t, err)

	reporter := &testutil.MockReporter{}
	runner := NewService(
		unixpipe.NewAllocator(),
		spawner,
		waitreaper.NewWaitReaper(order, nil),
		reporter,
		Options{Stdio: &Stdio{In: int(devnull.Fd()), Out: int(out.Fd())}},
	)
	return &realPipeline{runner: runner, reporter: reporter, out: out}
}

func (r *realPipeline) output(t *testing.T) string {
	t.Helper()
	_, err := r.out.Seek(0, io.SeekStart)
	require.NoError(t, err)
	b, err := io.ReadAll(r.out)
	require.NoError(t, err)
	return string(b)
}

func openDescriptors(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}

func TestRun_Real_SingleCommand(t *testing.T) {
	rp := newRealPipeline(t, settings.ReapArrival)
	p := tokenizer.NewWhitespaceTokenizer().Tokenize("echo hi")

	res, err := rp.runner.Run(p)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.Equal(t, 0, res.Records[0].Status)
	require.Equal(t, "hi\n", rp.output(t))
}

func TestRun_Real_PipelineConnectsStages(t *testing.T) {
	rp := newRealPipeline(t, settings.ReapCreation)
	p := tokenizer.NewWhitespaceTokenizer().Tokenize("echo hello world | tr a-z A-Z | tr -d O")

	before := openDescriptors(t)
	res, err := rp.runner.Run(p)
	require.NoError(t, err)
	require.Equal(t, before, openDescriptors(t), "pipe descriptors leaked into the parent")

	require.Equal(t, 3, res.Spawned)
	require.Len(t, res.Records, 3)
	for i, rec := range res.Records {
		require.Equal(t, i, rec.Stage, "creation order reaping")
		require.Equal(t, 0, rec.Status)
	}
	require.Equal(t, "HELL WRLD\n", rp.output(t))
}

func TestRun_Real_ExitStatusIsRaw(t *testing.T) {
	rp := newRealPipeline(t, settings.ReapArrival)

	res, err := rp.runner.Run(tokenizer.NewWhitespaceTokenizer().Tokenize("false"))
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.Equal(t, 256, res.Records[0].Status)
	require.Equal(t, 1, res.Records[0].ExitCode())
}

func TestRun_Real_MissingProgramDoesNotStopOtherStages(t *testing.T) {
	rp := newRealPipeline(t, settings.ReapCreation)

	p := tokenizer.NewWhitespaceTokenizer().Tokenize("echo hi | pipesh-no-such-program | echo after")
	res, err := rp.runner.Run(p)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	require.Equal(t, 1, res.Records[1].ExitCode(), "missing program exits 1")
	require.Equal(t, 0, res.Records[2].ExitCode())
	require.Equal(t, "after\n", rp.output(t))
}

func TestRun_Real_RepeatedRunsAreIndependent(t *testing.T) {
	rp := newRealPipeline(t, settings.ReapArrival)
	tok := tokenizer.NewWhitespaceTokenizer()

	before := openDescriptors(t)
	first, err := rp.runner.Run(tok.Tokenize("echo a | cat"))
	require.NoError(t, err)
	second, err := rp.runner.Run(tok.Tokenize("echo a | cat"))
	require.NoError(t, err)
	require.Equal(t, before, openDescriptors(t))

	seen := map[int]bool{}
	for _, rec := range first.Records {
		seen[rec.Pid] = true
	}
	for _, rec := range second.Records {
		require.False(t, seen[rec.Pid], "pid %d reused across runs", rec.Pid)
	}
	require.Equal(t, "a\na\n", rp.output(t))
}
