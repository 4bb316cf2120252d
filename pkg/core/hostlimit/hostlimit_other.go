//go:build !linux

package hostlimit

// ArgMax returns the host limit on total argument bytes for exec.
// Platforms without a queryable limit get the conservative legacy value.
func ArgMax() int {
	return legacyArgMax
}
