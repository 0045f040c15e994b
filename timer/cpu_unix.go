//go:build unix && !linux && !darwin

package timer

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuNow samples process CPU usage through getrusage. Resolution is
// microseconds, coarser than the dedicated CPU clock but available on every
// Unix.
func cpuNow() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
