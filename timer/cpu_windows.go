//go:build windows

package timer

import (
	"time"

	"golang.org/x/sys/windows"
)

// cpuNow samples process CPU usage through GetProcessTimes, summing kernel
// and user time. FILETIME ticks are 100 ns.
func cpuNow() (time.Duration, error) {
	var creation, exit, kernel, user windows.Filetime
	err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user)
	if err != nil {
		return 0, err
	}
	return time.Duration(kernel.Nanoseconds() + user.Nanoseconds()), nil
}
