package xargs

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/rcarmo/go-xargs/pkg/testutil"
)

func TestExecutorDecodesExitCode(t *testing.T) {
	stdio, _, _ := testutil.CaptureStdio("")
	exe := &executor{stdio: stdio}
	rc, err := exe.run([]string{"sh", "-c", "exit 7"})
	if err != nil {
		t.Fatal(err)
	}
	if rc != 7 {
		t.Errorf("rc = %d, want 7", rc)
	}
}

func TestExecutorDecodesSignalDeath(t *testing.T) {
	stdio, _, _ := testutil.CaptureStdio("")
	exe := &executor{stdio: stdio}
	rc, err := exe.run([]string{"sh", "-c", "kill -9 $$"})
	if err != nil {
		t.Fatal(err)
	}
	if rc != 128+9 {
		t.Errorf("rc = %d, want %d", rc, 128+9)
	}
}

func TestExecutorStartFailureIsError(t *testing.T) {
	stdio, _, _ := testutil.CaptureStdio("")
	exe := &executor{stdio: stdio}
	if _, err := exe.run([]string{"/nonexistent/command"}); err == nil {
		t.Fatal("expected error starting a nonexistent command")
	}
}

func TestExecutorPromptSkipsOnNo(t *testing.T) {
	stdio, out, errBuf := testutil.CaptureStdio("")
	exe := &executor{stdio: stdio, prompt: true}
	setTestTTY(t, exe, "n\n")
	rc, err := exe.run([]string{"sh", "-c", "echo ran"})
	if err != nil {
		t.Fatal(err)
	}
	if rc != 0 {
		t.Errorf("rc = %d, want 0 for a skipped batch", rc)
	}
	if out.String() != "" {
		t.Errorf("output = %q, want command skipped", out.String())
	}
	if !strings.HasSuffix(errBuf.String(), "?") {
		t.Errorf("stderr = %q, want trailing prompt character", errBuf.String())
	}
}

func TestExecutorPromptRunsOnYes(t *testing.T) {
	stdio, out, _ := testutil.CaptureStdio("")
	exe := &executor{stdio: stdio, prompt: true}
	setTestTTY(t, exe, "y\n")
	rc, err := exe.run([]string{"sh", "-c", "echo ran"})
	if err != nil {
		t.Fatal(err)
	}
	if rc != 0 {
		t.Errorf("rc = %d, want 0", rc)
	}
	if out.String() != "ran\n" {
		t.Errorf("output = %q, want %q", out.String(), "ran\n")
	}
}

// setTestTTY plants a fake control terminal so prompt tests don't need a
// real /dev/tty. The answer stream replaces the terminal reader.
func setTestTTY(t *testing.T, exe *executor, answers string) {
	t.Helper()
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	exe.tty = f
	exe.ttyIn = bufio.NewReader(strings.NewReader(answers))
}
