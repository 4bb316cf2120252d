// Package xargs implements the xargs command: run a command repeatedly
// with argument batches taken from stdin.
package xargs

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/rcarmo/go-xargs/pkg/core"
	"github.com/rcarmo/go-xargs/pkg/core/hostlimit"
)

type options struct {
	nullTerm bool   // -0
	eofStr   string // -E
	eofSet   bool
	maxArgs  int // -n
	maxBytes int // -s
	ttyStdin bool // -o
	prompt   bool // -p
	noEmpty  bool // -r
	trace    bool // -t
}

// Run executes the xargs command with the given arguments.
//
// Supported flags:
//
//	-0      NUL-terminated input, no whitespace splitting
//	-E STR  stop input at a token matching STR exactly
//	-n N    max number of arguments per command
//	-o      open the tty for COMMAND's stdin (default /dev/null)
//	-p      prompt y/n on the tty before running each command
//	-r      don't run the command for an empty batch
//	-s N    byte budget per command line
//	-t      print each command line to stderr before running it
//
// If a command exits with status 255, no further batch is launched even
// if input remains.
func Run(stdio *core.Stdio, args []string) int {
	var opts options

	for len(args) > 0 && strings.HasPrefix(args[0], "-") && args[0] != "-" && args[0] != "--" {
		arg := args[0]
		args = args[1:]
		j := 1
		for j < len(arg) {
			switch arg[j] {
			case '0':
				opts.nullTerm = true
				j++
			case 'o':
				opts.ttyStdin = true
				j++
			case 'p':
				opts.prompt = true
				j++
			case 't':
				opts.trace = true
				j++
			case 'r':
				opts.noEmpty = true
				j++
			case 'E':
				val := arg[j+1:]
				if val == "" {
					if len(args) == 0 {
						return core.UsageError(stdio, "xargs", "missing argument for -E")
					}
					val = args[0]
					args = args[1:]
				}
				opts.eofStr = val
				opts.eofSet = true
				j = len(arg)
			case 'e':
				val := arg[j+1:]
				if val != "" {
					opts.eofStr = val
					opts.eofSet = true
				}
				j = len(arg)
			case 's':
				val := arg[j+1:]
				if val == "" {
					if len(args) == 0 {
						return core.UsageError(stdio, "xargs", "missing argument for -s")
					}
					val = args[0]
					args = args[1:]
				}
				n, err := strconv.Atoi(val)
				if err != nil || n <= 0 {
					return core.UsageError(stdio, "xargs", "invalid argument for -s")
				}
				opts.maxBytes = n
				j = len(arg)
			case 'n':
				val := arg[j+1:]
				if val == "" {
					if len(args) == 0 {
						return core.UsageError(stdio, "xargs", "missing argument for -n")
					}
					val = args[0]
					args = args[1:]
				}
				n, err := strconv.Atoi(val)
				if err != nil || n <= 0 {
					return core.UsageError(stdio, "xargs", "invalid argument for -n")
				}
				opts.maxArgs = n
				j = len(arg)
			default:
				return core.UsageError(stdio, "xargs", "invalid option -- '"+string(arg[j])+"'")
			}
		}
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if opts.nullTerm && opts.eofSet {
		return core.UsageError(stdio, "xargs", "-0 and -E are mutually exclusive")
	}

	cmdName := "echo"
	var cmdBase []string
	if len(args) > 0 {
		cmdName = args[0]
		cmdBase = args[1:]
	}
	prefix := append([]string{cmdName}, cmdBase...)

	// Byte cost of the fixed prefix, charged against every batch: each
	// argument plus its terminator, minus one for the slot the first
	// collected token reuses.
	prefixBytes := -1
	for _, a := range prefix {
		prefixBytes += len(a) + 1
	}

	// POSIX requires never reaching the host ARG_MAX limit even when -s
	// asks for more, so an oversized request is clamped down.
	budget := hostlimit.DefaultBudget()
	if opts.maxBytes == 0 || opts.maxBytes > budget {
		opts.maxBytes = budget
	}

	delim := byte('\n')
	if opts.nullTerm {
		delim = 0
	}
	acc := &accumulator{r: bufio.NewReader(stdio.In), delim: delim}
	exe := &executor{stdio: stdio, trace: opts.trace, prompt: opts.prompt, ttyStdin: opts.ttyStdin}
	defer exe.close()

	exitCode := core.ExitSuccess
	for acc.more() {
		st := opts.newBatchState(prefixBytes)
		pending, err := acc.next(st)
		if err != nil {
			stdio.Errorf("xargs: %v\n", err)
			return core.ExitFailure
		}

		if st.entries == 0 && opts.noEmpty {
			continue
		}

		// Fill pass: size the vector exactly, then re-run the tokenizer
		// over the retained chunks with fresh accounting. Both passes see
		// identical data and limits, so they agree on every boundary.
		argv := make([]string, len(prefix)+st.entries)
		copy(argv, prefix)
		fill := opts.newBatchState(prefixBytes)
		for _, chunk := range pending {
			tokenize(chunk, fill, argv[len(prefix):])
		}

		rc, err := exe.run(argv)
		if err != nil {
			stdio.Errorf("xargs: %v\n", err)
			return core.ExitFailure
		}
		if rc != core.ExitSuccess {
			exitCode = rc
		}
		if rc == stopExit {
			break
		}
	}
	return exitCode
}

func (o *options) newBatchState(prefixBytes int) *batchState {
	return &batchState{
		bytes:      prefixBytes,
		maxEntries: o.maxArgs,
		maxBytes:   o.maxBytes,
		nullTerm:   o.nullTerm,
		eofStr:     o.eofStr,
		eofSet:     o.eofSet,
	}
}
