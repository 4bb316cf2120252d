//go:build linux

package hostlimit

import "golang.org/x/sys/unix"

// ArgMax returns the host limit on total argument bytes for exec. The
// kernel allows a quarter of the soft stack limit, never less than the
// legacy 128 KiB ARG_MAX.
func ArgMax() int {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &rl); err != nil || rl.Cur == unix.RLIM_INFINITY {
		return legacyArgMax
	}
	quarter := rl.Cur / 4
	if quarter < legacyArgMax {
		return legacyArgMax
	}
	if quarter > 1<<30 {
		return 1 << 30
	}
	return int(quarter)
}
