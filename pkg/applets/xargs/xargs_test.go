package xargs_test

import (
	"testing"

	"github.com/rcarmo/go-xargs/pkg/applets/xargs"
	"github.com/rcarmo/go-xargs/pkg/core"
	"github.com/rcarmo/go-xargs/pkg/testutil"
)

func TestXargs(t *testing.T) {
	tests := []testutil.AppletTestCase{
		{
			Name:     "no_args_defaults_to_echo",
			Args:     []string{},
			Input:    "hello world",
			WantOut:  "hello world\n",
			WantCode: core.ExitSuccess,
		},
		{
			Name:     "basic",
			Args:     []string{"echo"},
			Input:    "one two",
			WantCode: core.ExitSuccess,
			WantOut:  "one two\n",
		},
		{
			Name:     "joins_lines_into_one_batch",
			Args:     []string{"echo"},
			Input:    "a b\nc\nd e f\n",
			WantCode: core.ExitSuccess,
			WantOut:  "a b c d e f\n",
		},
		{
			Name:     "fixed_args_precede_tokens",
			Args:     []string{"echo", "prefix"},
			Input:    "x y",
			WantCode: core.ExitSuccess,
			WantOut:  "prefix x y\n",
		},
		{
			Name:     "empty_input_still_runs_once",
			Args:     []string{"echo", "hi"},
			Input:    "",
			WantCode: core.ExitSuccess,
			WantOut:  "hi\n",
		},
		{
			Name:     "suppress_empty_batch",
			Args:     []string{"-r", "echo", "hi"},
			Input:    "",
			WantCode: core.ExitSuccess,
			WantOut:  "",
		},
		{
			Name:     "max_args_partitions_in_order",
			Args:     []string{"-n", "2", "echo"},
			Input:    "a b c d e",
			WantCode: core.ExitSuccess,
			WantOut:  "a b\nc d\ne\n",
		},
		{
			Name:     "max_args_detached_value",
			Args:     []string{"-n3", "echo"},
			Input:    "1 2 3 4",
			WantCode: core.ExitSuccess,
			WantOut:  "1 2 3\n4\n",
		},
		{
			Name:     "byte_budget_splits_batches",
			Args:     []string{"-s", "12", "echo"},
			Input:    "aa bb cc dd\n",
			WantCode: core.ExitSuccess,
			WantOut:  "aa bb\ncc dd\n",
		},
		{
			Name:     "oversized_token_is_fatal",
			Args:     []string{"-s", "5", "echo"},
			Input:    "abcdefgh",
			WantCode: core.ExitFailure,
			WantErr:  "argument too long",
		},
		{
			Name:     "oversized_request_is_clamped",
			Args:     []string{"-s", "999999999999", "echo"},
			Input:    "a",
			WantCode: core.ExitSuccess,
			WantOut:  "a\n",
		},
		{
			Name:     "null_mode_keeps_internal_whitespace",
			Args:     []string{"-0", "echo"},
			Input:    "foo\x00bar baz\x00",
			WantCode: core.ExitSuccess,
			WantOut:  "foo bar baz\n",
		},
		{
			Name:     "null_mode_final_token_unterminated",
			Args:     []string{"-0", "echo"},
			Input:    "foo\x00bar",
			WantCode: core.ExitSuccess,
			WantOut:  "foo bar\n",
		},
		{
			Name:     "eof_string_ends_collection",
			Args:     []string{"-E", "END", "echo"},
			Input:    "a b END c d",
			WantCode: core.ExitSuccess,
			WantOut:  "a b\n",
		},
		{
			Name:     "eof_string_must_match_whole_token",
			Args:     []string{"-E", "END", "echo"},
			Input:    "a ENDX b",
			WantCode: core.ExitSuccess,
			WantOut:  "a ENDX b\n",
		},
		{
			Name:     "eof_string_alone_runs_empty_batch",
			Args:     []string{"-E", "END", "echo"},
			Input:    "END leftover",
			WantCode: core.ExitSuccess,
			WantOut:  "\n",
		},
		{
			Name:     "eof_string_alone_suppressed_with_r",
			Args:     []string{"-r", "-E", "END", "echo"},
			Input:    "END leftover",
			WantCode: core.ExitSuccess,
			WantOut:  "",
		},
		{
			Name:     "trace_prints_command_line",
			Args:     []string{"-t", "echo", "hi"},
			Input:    "a\n",
			WantCode: core.ExitSuccess,
			WantOut:  "hi a\n",
			WantErr:  "echo hi a",
		},
		{
			Name:     "exit_255_stops_remaining_batches",
			Args:     []string{"-n", "1", "sh", "-c", "echo run; exit 255", "x"},
			Input:    "a b c",
			WantCode: 255,
			WantOut:  "run\n",
		},
		{
			Name:     "nonzero_exit_propagates_without_stopping",
			Args:     []string{"-n", "1", "sh", "-c", "echo $1; exit 3", "x"},
			Input:    "a b",
			WantCode: 3,
			WantOut:  "a\nb\n",
		},
		{
			Name:     "invalid_max_args",
			Args:     []string{"-n", "0", "echo"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid argument for -n",
		},
		{
			Name:     "invalid_max_bytes",
			Args:     []string{"-s", "nope", "echo"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid argument for -s",
		},
		{
			Name:     "missing_eof_value",
			Args:     []string{"-E"},
			WantCode: core.ExitUsage,
			WantErr:  "missing argument for -E",
		},
		{
			Name:     "null_and_eof_conflict",
			Args:     []string{"-0", "-E", "x", "echo"},
			WantCode: core.ExitUsage,
			WantErr:  "mutually exclusive",
		},
		{
			Name:     "invalid_option",
			Args:     []string{"-q", "echo"},
			WantCode: core.ExitUsage,
			WantErr:  "invalid option",
		},
	}
	testutil.RunAppletTests(t, xargs.Run, tests)
}
