// Package hostlimit queries host limits on command-line argument size.
package hostlimit

import (
	"math/bits"
	"os"
)

// SlotSize is the width of one argv pointer slot on this host.
const SlotSize = bits.UintSize / 8

// Legacy kernel ARG_MAX, used as a floor when the stack limit allows more.
const legacyArgMax = 128 * 1024

// safetyReserve is the POSIX-mandated 2048 bytes left free so the invoked
// utility has room to modify its environment and still exec another utility.
const safetyReserve = 2048

// EnvironBytes returns the bytes the current environment occupies on the
// child's argument stack: one pointer slot plus the NUL-terminated string
// for each variable, plus the terminating slot.
func EnvironBytes() int {
	bytes := SlotSize
	for _, kv := range os.Environ() {
		bytes += SlotSize + len(kv) + 1
	}
	return bytes
}

// DefaultBudget returns the largest per-command argument byte budget that
// never risks the host ARG_MAX limit: the argument-size limit minus the
// environment minus the safety reserve.
func DefaultBudget() int {
	budget := ArgMax() - EnvironBytes() - safetyReserve
	if budget < safetyReserve {
		budget = safetyReserve
	}
	return budget
}
