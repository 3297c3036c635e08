package pipelinerunner

import (
	"fmt"
	"log"

	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/process"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
)

// Stdio names the descriptors the first stage reads from and the last stage
// writes to.
type Stdio struct {
	In  int
	Out int
}

// Options tunes the orchestration policy.
type Options struct {
	// AbortOnSpawnError stops creating further stages once one stage fails
	// to spawn. Children already running are still reaped.
	AbortOnSpawnError bool
	// Stdio overrides the pipeline's outer streams. Nil means the shell's
	// own standard input and output.
	Stdio *Stdio
	// Logger receives debug traces. Nil disables them.
	Logger *log.Logger
}

type service struct {
	allocator ports.PipeAllocator
	spawner   ports.ProcessSpawner
	reaper    ports.Reaper
	reporter  ports.Reporter
	abort     bool
	stdio     Stdio
	logger    *log.Logger
}

// NewService creates a new pipeline orchestrator.
// It panics if any collaborator is nil.
func NewService(
	allocator ports.PipeAllocator,
	spawner ports.ProcessSpawner,
	reaper ports.Reaper,
	reporter ports.Reporter,
	opts Options,
) ports.PipelineRunner {
	if allocator == nil || spawner == nil || reaper == nil || reporter == nil {
		panic("pipelinerunner: allocator, spawner, reaper and reporter cannot be nil")
	}
	stdio := Stdio{In: process.Stdin, Out: process.Stdout}
	if opts.Stdio != nil {
		stdio = *opts.Stdio
	}
	return &service{
		allocator: allocator,
		spawner:   spawner,
		reaper:    reaper,
		reporter:  reporter,
		abort:     opts.AbortOnSpawnError,
		stdio:     stdio,
		logger:    opts.Logger,
	}
}

/*
Run executes every stage of p and reaps every child it created.

A single command is spawned on the outer streams with no pipes. For N >= 2
stages, N-1 pipes are allocated up front; if that fails nothing is spawned
and the error is returned. Stages are then spawned strictly in order and
after each spawn the parent closes the pipe ends only that stage needed, so
once the last stage exists the parent holds no pipe descriptor at all.
*/
func (s *service) Run(p pipeline.Pipeline) (ports.RunResult, error) {
	var res ports.RunResult
	if p.IsEmpty() {
		return res, nil
	}

	var set ports.DescriptorSet
	if p.Len() > 1 {
		var err error
		set, err = s.allocator.Allocate(p.PipeCount())
		if err != nil {
			s.reporter.ReportError(err)
			res.Errors = append(res.Errors, err)
			return res, fmt.Errorf("pipeline aborted: %w", err)
		}
		s.debugf("allocated %d pipes", set.Pipes())
	}

	pids, stages := s.spawnStages(p, set, &res)
	res.Spawned = len(pids)

	s.reaper.Reap(pids, func(rec process.Record) {
		if rec.Stage >= 0 && rec.Stage < len(stages) {
			rec.Stage = stages[rec.Stage]
			rec.Command = p.Commands[rec.Stage].String()
		}
		if rec.Err != nil {
			res.Errors = append(res.Errors, rec.Err)
		}
		res.Records = append(res.Records, rec)
		s.reporter.ReportExit(rec)
	})
	return res, nil
}
