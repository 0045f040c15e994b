//go:build linux || darwin

package timer

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuNow samples the per-process CPU clock, which counts time consumed by
// all threads of the process at nanosecond resolution.
func cpuNow() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, err
	}
	return time.Duration(ts.Nano()), nil
}
