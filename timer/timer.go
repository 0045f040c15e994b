package timer

import (
	"time"

	"github.com/wippyai/runtime-kit/errors"
)

const (
	opStart   = errors.Op("timer.start")
	opStop    = errors.Op("timer.stop")
	opElapsed = errors.Op("timer.elapsed")
)

// Timer accumulates elapsed wall-clock and process CPU time across
// start/stop intervals. The zero value is a stopped timer with zero totals,
// ready to use.
type Timer struct {
	startWall   time.Time
	startCPU    time.Duration
	elapsedWall time.Duration
	elapsedCPU  time.Duration
	running     bool
}

// New returns a stopped timer with zero totals.
func New() *Timer {
	return &Timer{}
}

// Start opens a measurement interval. It does nothing when the timer is
// already running. It fails only when the process CPU clock cannot be read,
// in which case the timer state is unchanged.
func (t *Timer) Start() error {
	if t.running {
		return nil
	}
	cpu, err := cpuNow()
	if err != nil {
		return errors.Wrap(opStart, errors.KindReadFailed, err, "sampling process CPU clock")
	}
	t.startWall = time.Now()
	t.startCPU = cpu
	t.running = true
	return nil
}

// Stop closes the current interval and adds it to the totals. It does
// nothing when the timer is not running. When the process CPU clock cannot
// be read the wall total is still updated and the CPU interval is lost.
func (t *Timer) Stop() error {
	if !t.running {
		return nil
	}
	t.elapsedWall += time.Since(t.startWall)
	t.running = false
	cpu, err := cpuNow()
	if err != nil {
		return errors.Wrap(opStop, errors.KindReadFailed, err, "sampling process CPU clock")
	}
	t.elapsedCPU += cpu - t.startCPU
	return nil
}

// Reset stops the timer and zeroes both totals.
func (t *Timer) Reset() {
	*t = Timer{}
}

// Restart resets the timer and starts it again in one step.
func (t *Timer) Restart() error {
	t.Reset()
	return t.Start()
}

// Running reports whether an interval is currently open.
func (t *Timer) Running() bool {
	return t.running
}

// ElapsedWall returns the accumulated wall-clock time. While the timer is
// running the open interval is included.
func (t *Timer) ElapsedWall() time.Duration {
	if t.running {
		return t.elapsedWall + time.Since(t.startWall)
	}
	return t.elapsedWall
}

// ElapsedCPU returns the accumulated process CPU time. While the timer is
// running the open interval is included, which requires a clock read that
// can fail.
func (t *Timer) ElapsedCPU() (time.Duration, error) {
	if !t.running {
		return t.elapsedCPU, nil
	}
	cpu, err := cpuNow()
	if err != nil {
		return 0, errors.Wrap(opElapsed, errors.KindReadFailed, err, "sampling process CPU clock")
	}
	return t.elapsedCPU + (cpu - t.startCPU), nil
}
