package xargs

import (
	"bufio"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/rcarmo/go-xargs/pkg/core"
)

// stopExit is the child exit status reserved to mean "don't launch any
// further batches".
const stopExit = 255

// executor spawns one batch's command line and decodes how the child
// terminated. The controlling terminal, when -p or -o needs it, is opened
// once and kept for all later batches.
type executor struct {
	stdio    *core.Stdio
	trace    bool
	prompt   bool
	ttyStdin bool

	tty   *os.File
	ttyIn *bufio.Reader
}

// run executes argv and returns the decoded child status: the exit code
// for a normal exit, 128 plus the signal number for a signal death. A
// batch skipped at the prompt reports status 0. Errors are fatal to the
// whole utility.
func (e *executor) run(argv []string) (int, error) {
	if e.prompt || e.trace {
		var b strings.Builder
		for _, arg := range argv {
			b.WriteString(arg)
			b.WriteByte(' ')
		}
		e.stdio.Errorf("%s", b.String())
		if e.prompt {
			e.stdio.Errorf("?")
			ok, err := e.confirm()
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, nil
			}
		} else {
			e.stdio.Errorf("\n")
		}
	}

	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 -- xargs runs a user-provided command
	cmd.Stdout = e.stdio.Out
	cmd.Stderr = e.stdio.Err
	cmd.Env = os.Environ()
	// Stdin stays nil so the child reads from the null device, unless -o
	// routes it to the controlling terminal.
	if e.ttyStdin {
		tty, err := e.openTTY()
		if err != nil {
			return 0, err
		}
		cmd.Stdin = tty
	}

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return 0, err
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}
