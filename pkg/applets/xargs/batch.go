package xargs

import (
	"bufio"
	"errors"
)

// errTooLong is the fatal condition where a single token is too large to
// ever fit the per-batch byte budget.
var errTooLong = errors.New("argument too long")

// accumulator drives the tokenizer over the input stream one batch at a
// time. Chunks consumed for the current batch are retained in order so the
// fill pass can resolve tokens out of them; a leftover fragment from a
// chunk that straddles a batch boundary is carried over to seed the next
// batch.
type accumulator struct {
	r         *bufio.Reader
	delim     byte
	carry     string
	haveCarry bool
	exhausted bool
	stopped   bool
}

// more reports whether another batch can still be assembled.
func (a *accumulator) more() bool {
	return a.haveCarry || (!a.exhausted && !a.stopped)
}

// next assembles one batch boundary: it reads chunks (starting with any
// carried fragment) and count-tokenizes them into st until a limit trips,
// the stop string matches, or input runs out. It returns the retained
// chunks for the fill pass.
func (a *accumulator) next(st *batchState) ([]string, error) {
	var pending []string
	for {
		var data string
		if a.haveCarry {
			data = a.carry
			a.carry, a.haveCarry = "", false
		} else {
			chunk, ok := a.readChunk()
			if !ok {
				a.exhausted = true
				break
			}
			data = chunk
		}

		pending = append(pending, data)
		rest, status := tokenize(data, st, nil)
		if status == scanNeedMore {
			continue
		}
		if status == scanStop {
			a.stopped = true
		}
		if status == scanLeftover {
			a.carry, a.haveCarry = rest, true
		}
		break
	}

	// A leftover with nothing collected means the batch could never hold
	// that token, no matter how empty it is.
	if a.haveCarry && st.entries == 0 {
		return nil, errTooLong
	}
	return pending, nil
}

// readChunk reads one delimiter-terminated chunk. In whitespace mode the
// trailing newline stays on the chunk (the tokenizer skips it); in NUL
// mode the delimiter is stripped because the whole chunk is the token. A
// final unterminated chunk at end of input is still returned.
func (a *accumulator) readChunk() (string, bool) {
	chunk, err := a.r.ReadString(a.delim)
	if err != nil && chunk == "" {
		return "", false
	}
	if a.delim == 0 && len(chunk) > 0 && chunk[len(chunk)-1] == 0 {
		chunk = chunk[:len(chunk)-1]
	}
	return chunk, true
}
