package xargs

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/term"
)

// openTTY opens the controlling terminal on first use. The handle is
// distinct from the program's own stdin and is shared by -p and -o across
// every batch until close.
func (e *executor) openTTY() (*os.File, error) {
	if e.tty != nil {
		return e.tty, nil
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	if !term.IsTerminal(int(tty.Fd())) {
		tty.Close()
		return nil, errors.New("/dev/tty: not a terminal")
	}
	e.tty = tty
	e.ttyIn = bufio.NewReader(tty)
	return tty, nil
}

// confirm reads one answer line from the controlling terminal. Only an
// answer starting with y or Y runs the batch; anything else, including end
// of input, skips it.
func (e *executor) confirm() (bool, error) {
	if _, err := e.openTTY(); err != nil {
		return false, err
	}
	line, err := e.ttyIn.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			continue
		}
		return line[i] == 'y' || line[i] == 'Y', nil
	}
	return false, nil
}

// close releases the controlling terminal if any batch opened it.
func (e *executor) close() {
	if e.tty != nil {
		e.tty.Close()
		e.tty = nil
		e.ttyIn = nil
	}
}
