package xargs

import "github.com/rcarmo/go-xargs/pkg/core/hostlimit"

// batchState carries the running entry and byte accounting for the batch
// currently being assembled. Counts are reset only at a fresh batch
// boundary; within a batch bytes only ever grows.
type batchState struct {
	entries    int
	bytes      int
	maxEntries int    // -n, 0 means unlimited
	maxBytes   int    // -s, 0 means unlimited
	nullTerm   bool   // -0
	eofStr     string // -E
	eofSet     bool
}

// scanStatus tells the accumulator what tokenize did with a chunk.
type scanStatus int

const (
	scanNeedMore scanStatus = iota // chunk fully consumed, read more input
	scanLeftover                   // limit hit, rest holds the unconsumed tail
	scanFull                       // limit hit, chunk fully consumed
	scanStop                       // a token matched the -E stop string
)

// tokenize scans one chunk of input against the running batch limits.
// With dst == nil it only counts entries and bytes; otherwise it writes
// each accepted token at dst[st.entries]. rest is meaningful only for
// scanLeftover and seeds the next pass.
//
// Byte accounting is intentionally asymmetric: whitespace mode charges
// payload plus terminator only, while NUL mode also charges the argv
// pointer slot, for output compatibility with busybox 1.30.1 and
// findutils 4.7.0.
func tokenize(data string, st *batchState, dst []string) (rest string, status scanStatus) {
	if st.nullTerm {
		st.bytes += hostlimit.SlotSize + len(data) + 1
		if st.maxBytes > 0 && st.bytes >= st.maxBytes {
			return data, scanLeftover
		}
		if st.maxEntries > 0 && st.entries >= st.maxEntries {
			return data, scanLeftover
		}
		if dst != nil {
			dst[st.entries] = data
		}
		st.entries++
		return "", scanNeedMore
	}

	i := 0
	for i < len(data) {
		for i < len(data) && isSpace(data[i]) {
			i++
		}

		if st.maxEntries > 0 && st.entries >= st.maxEntries {
			if i < len(data) {
				return data[i:], scanLeftover
			}
			return "", scanFull
		}
		if i >= len(data) {
			break
		}

		// Scan one maximal non-space run, charging each byte plus the
		// terminator against the budget as we go. A token is never split:
		// when the budget trips mid-token the whole token is leftover.
		start := i
		for {
			st.bytes++
			if st.maxBytes > 0 && st.bytes >= st.maxBytes {
				return data[start:], scanLeftover
			}
			if i >= len(data) || isSpace(data[i]) {
				break
			}
			i++
		}
		tok := data[start:i]
		if st.eofSet && tok == st.eofStr {
			return "", scanStop
		}
		if dst != nil {
			dst[st.entries] = tok
		}
		st.entries++
	}
	return "", scanNeedMore
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
