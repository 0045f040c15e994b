package bench

import (
	"math"
	"time"

	"go.uber.org/zap"

	runtimekit "github.com/wippyai/runtime-kit"
	"github.com/wippyai/runtime-kit/alloc"
	"github.com/wippyai/runtime-kit/buffer"
	"github.com/wippyai/runtime-kit/errors"
	"github.com/wippyai/runtime-kit/list"
	"github.com/wippyai/runtime-kit/random"
	"github.com/wippyai/runtime-kit/timer"
)

const (
	// maxRangeLen caps the batch size of range insertions.
	maxRangeLen = 16
	// maxRemoveSpan caps how many items a single range removal takes out,
	// so one op cannot empty a large list.
	maxRemoveSpan = 64
)

// Runner executes scenarios against a list of int64 values.
type Runner struct {
	alloc runtimekit.Allocator
}

// NewRunner returns a runner allocating from a. A nil allocator selects the
// process heap. A scenario budget wraps the allocator for that run only.
func NewRunner(a runtimekit.Allocator) *Runner {
	return &Runner{alloc: a}
}

// Result summarizes one scenario run. Relocations counts the times the list
// resized its backing block, including the initial allocation.
type Result struct {
	Scenario    string
	Ops         int64
	Refused     int64
	Wall        time.Duration
	CPU         time.Duration
	FinalCount  int64
	FinalCap    int64
	Relocations int64
	Alloc       alloc.Stats
}

// AppendTo formats the result as indented text into buf.
func (r Result) AppendTo(buf *buffer.Buffer) error {
	var err error
	appendf := func(format string, args ...any) {
		if err == nil {
			err = buf.Appendf(format, args...)
		}
	}
	appendf("scenario %q\n", r.Scenario)
	appendf("  ops          %d (refused %d)\n", r.Ops, r.Refused)
	appendf("  wall         %v\n", r.Wall)
	appendf("  cpu          %v\n", r.CPU)
	appendf("  final        count %d, capacity %d\n", r.FinalCount, r.FinalCap)
	appendf("  relocations  %d\n", r.Relocations)
	appendf("  allocator    allocs %d, reallocs %d, frees %d, failures %d, peak %d B\n",
		r.Alloc.Allocs, r.Alloc.Reallocs, r.Alloc.Frees, r.Alloc.Failures, r.Alloc.Peak)
	return err
}

// Run drives one scenario to completion. The operation stream is a pure
// function of the seed, so runs with the same scenario are identical.
// Budget refusals are counted in the result; any other failure aborts.
func (r *Runner) Run(s Scenario) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	entries, total := s.Mix.entries()

	base := r.alloc
	if base == nil {
		base = alloc.Default()
	}
	if s.Budget > 0 {
		base = alloc.NewLimit(base, s.Budget)
	}
	counting := alloc.NewCounting(base)

	l, err := list.WithCapacity[int64](counting, s.InitialCapacity)
	if err != nil {
		return Result{}, err
	}
	defer l.Free()

	rng := random.WithSeed(s.Seed)
	scratch := make([]int64, maxRangeLen)
	tm := timer.New()

	Logger().Debug("running scenario",
		zap.String("scenario", s.Name),
		zap.Int64("ops", s.Ops),
		zap.Uint64("seed", s.Seed),
		zap.Int64("budget", s.Budget))

	if err := tm.Start(); err != nil {
		return Result{}, err
	}

	var refused int64
	for i := int64(0); i < s.Ops; i++ {
		err := step(l, rng, pick(entries, total, rng), scratch)
		if err == nil {
			continue
		}
		if errors.IsOutOfMemory(err) {
			refused++
			continue
		}
		_ = tm.Stop()
		return Result{}, errors.New(opRun, errors.KindInvalidArgument).
			Cause(err).
			Detail("scenario %q aborted", s.Name).
			Build()
	}
	if err := tm.Stop(); err != nil {
		Logger().Warn("stopping scenario timer", zap.Error(err))
	}

	cpu, err := tm.ElapsedCPU()
	if err != nil {
		cpu = 0
	}
	stats := counting.Stats()
	res := Result{
		Scenario:    s.Name,
		Ops:         s.Ops,
		Refused:     refused,
		Wall:        tm.ElapsedWall(),
		CPU:         cpu,
		FinalCount:  l.Count(),
		FinalCap:    l.Capacity(),
		Relocations: stats.Reallocs,
		Alloc:       stats,
	}

	Logger().Debug("scenario complete",
		zap.String("scenario", s.Name),
		zap.Duration("wall", res.Wall),
		zap.Duration("cpu", res.CPU),
		zap.Int64("refused", res.Refused),
		zap.Int64("relocations", res.Relocations))
	return res, nil
}

// pick selects the next action by cumulative weight.
func pick(entries []mixEntry, total int64, rng *random.Random) action {
	v := rng.Int64(0, total)
	for _, e := range entries {
		if v < e.weight {
			return e.act
		}
		v -= e.weight
	}
	return entries[len(entries)-1].act
}

// step applies one action. Actions that need elements append instead while
// the list is empty, keeping every op in the stream meaningful.
func step(l *list.List[int64], rng *random.Random, act action, scratch []int64) error {
	value := rng.Int64(0, math.MaxInt64)
	count := l.Count()
	switch act {
	case actionAdd:
		return l.Add(value)
	case actionAddRange:
		n := rng.Int64(1, int64(len(scratch))+1)
		fill(scratch[:n], rng)
		return l.AddRange(scratch[:n])
	case actionInsertAt:
		return l.InsertAt(rng.Int64(0, count+1), value)
	case actionInsertRange:
		n := rng.Int64(1, int64(len(scratch))+1)
		fill(scratch[:n], rng)
		return l.InsertRange(rng.Int64(0, count+1), scratch[:n])
	case actionRemoveAt:
		if count == 0 {
			return l.Add(value)
		}
		return l.RemoveAt(rng.Int64(0, count))
	case actionRemoveRange:
		if count == 0 {
			return l.Add(value)
		}
		index := rng.Int64(0, count)
		span := count - index
		if span > maxRemoveSpan {
			span = maxRemoveSpan
		}
		return l.RemoveRange(index, rng.Int64(1, span+1))
	case actionClear:
		l.Clear()
		return nil
	case actionGet:
		if count == 0 {
			return l.Add(value)
		}
		_, err := l.At(rng.Int64(0, count))
		return err
	case actionSet:
		if count == 0 {
			return l.Add(value)
		}
		return l.Set(rng.Int64(0, count), value)
	}
	return nil
}

func fill(dst []int64, rng *random.Random) {
	for i := range dst {
		dst[i] = rng.Int64(0, math.MaxInt64)
	}
}
