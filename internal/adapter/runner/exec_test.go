package runner

import (
	"context"
	"strings"
	"testing"
)

type testLogger struct{}

func (testLogger) Info(msg string, args ...any)  {}
func (testLogger) Error(msg string, args ...any) {}

func TestRun_CapturesStdout(t *testing.T) {
	r := New(testLogger{})
	res := r.Run(context.Background(), "sh", "-c", "echo hello")

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %q)", res.ExitCode, res.Stderr)
	}
	if got := strings.TrimSpace(res.Stdout); got != "hello" {
		t.Errorf("stdout = %q, want %q", got, "hello")
	}
}

func TestRun_CapturesStderrAndExitCode(t *testing.T) {
	r := New(testLogger{})
	res := r.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")

	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
	if got := strings.TrimSpace(res.Stderr); got != "oops" {
		t.Errorf("stderr = %q, want %q", got, "oops")
	}
	if res.Ok() {
		t.Error("Ok() = true for non-zero exit")
	}
}

func TestRun_LaunchFailureIsNormalized(t *testing.T) {
	r := New(testLogger{})
	res := r.Run(context.Background(), "/nonexistent/binary/definitely-missing")

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Error("stderr empty, want launch error message")
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(testLogger{})
	res := r.Run(ctx, "sh", "-c", "sleep 10")

	if res.ExitCode == 0 {
		t.Error("exit code = 0, want non-zero for cancelled context")
	}
}
