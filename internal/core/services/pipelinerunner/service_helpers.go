package pipelinerunner

import (
	"github.com/AntonioJCosta/pipesh/internal/core/domain/pipeline"
	"github.com/AntonioJCosta/pipesh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/pipesh/internal/core/ports"
)

// spawnStages creates one child per stage and returns the pids of the
// children that started, along with the stage index of each. set is nil
// for a single-stage pipeline.
func (s *service) spawnStages(p pipeline.Pipeline, set ports.DescriptorSet, res *ports.RunResult) (pids []int, stages []int) {
	n := p.Len()
	for i, cmd := range p.Commands {
		stdin, stdout := s.stageStreams(set, i, n)

		pid, err := s.spawner.Spawn(i, cmd, stdin, stdout)
		if err != nil {
			s.debugf("stage %d: %v %q", i, shellerr.KindOf(err), cmd.String())
			s.reporter.ReportError(err)
			res.Errors = append(res.Errors, err)
		} else {
			s.debugf("stage %d: pid %d (stdin=%d stdout=%d) %q", i, pid, stdin, stdout, cmd.String())
			pids = append(pids, pid)
			stages = append(stages, i)
		}

		s.closeParentEnds(set, i, n)

		if err != nil && s.abort {
			s.debugf("stage %d failed to spawn, not creating stages %d..%d", i, i+1, n-1)
			break
		}
	}

	if set != nil {
		if err := set.CloseAll(); err != nil {
			s.debugf("closing remaining pipe descriptors: %v", err)
		}
	}
	return pids, stages
}

// stageStreams picks stage i's standard input and output: the previous
// pipe's read end and the next pipe's write end, or the outer streams at
// either end of the pipeline.
func (s *service) stageStreams(set ports.DescriptorSet, i, n int) (stdin, stdout int) {
	stdin, stdout = s.stdio.In, s.stdio.Out
	if set == nil {
		return stdin, stdout
	}
	if i > 0 {
		stdin = set.ReadEnd(i - 1)
	}
	if i < n-1 {
		stdout = set.WriteEnd(i)
	}
	return stdin, stdout
}

// closeParentEnds closes, in the parent, the ends stage i was given. No later
// stage needs them, and a write end left open here would keep the next
// stage from ever seeing EOF.
func (s *service) closeParentEnds(set ports.DescriptorSet, i, n int) {
	if set == nil {
		return
	}
	if i > 0 {
		if err := set.CloseRead(i - 1); err != nil {
			s.debugf("closing read end of pipe %d: %v", i-1, err)
		}
	}
	if i < n-1 {
		if err := set.CloseWrite(i); err != nil {
			s.debugf("closing write end of pipe %d: %v", i, err)
		}
	}
}

func (s *service) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
