// Package timer provides an accumulating stopwatch that tracks wall-clock
// and process CPU time side by side.
//
// A Timer alternates between running and stopped. Start opens an interval,
// Stop closes it and adds the interval to the running totals, so paused
// stretches do not count. Reset zeroes the totals; Restart is Reset followed
// by Start. Elapsed times read while running include the open interval.
//
// Wall time comes from the monotonic clock. CPU time is the process total
// (all threads, user plus system): on Linux and macOS from the per-process
// CPU clock, on other Unixes from getrusage, on Windows from
// GetProcessTimes. Comparing the two tells busy work apart from waiting.
//
// A Timer is not safe for concurrent use.
package timer
