package app

import (
	"context"
	"sync"

	"vectap/internal/domain"
)

// mockRunner records every invocation and answers from a per-verb script.
// The verb is the first CLI argument (inspect, start, stop, run, exec).
type mockRunner struct {
	mu      sync.Mutex
	results map[string]domain.CommandResult
	calls   [][]string
}

func newMockRunner() *mockRunner {
	return &mockRunner{results: make(map[string]domain.CommandResult)}
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) domain.CommandResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, append([]string{name}, args...))
	if len(args) > 0 {
		if res, ok := m.results[args[0]]; ok {
			return res
		}
	}
	return domain.CommandResult{ExitCode: 1, Stderr: "unexpected invocation"}
}

// callsFor returns the recorded invocations whose verb matches.
func (m *mockRunner) callsFor(verb string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out [][]string
	for _, c := range m.calls {
		if len(c) > 1 && c[1] == verb {
			out = append(out, c)
		}
	}
	return out
}

// mutatingCalls counts invocations that change runtime state.
func (m *mockRunner) mutatingCalls() int {
	return len(m.callsFor("start")) + len(m.callsFor("stop")) + len(m.callsFor("run"))
}

// mockProbe fails a configured number of times before succeeding.
type mockProbe struct {
	mu        sync.Mutex
	failFirst int
	alwaysErr error
	calls     int
}

func (m *mockProbe) Probe(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.alwaysErr != nil {
		return m.alwaysErr
	}
	if m.calls <= m.failFirst {
		return errNotReady
	}
	return nil
}

func (m *mockProbe) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockSystemNotifier records sends and returns a configured error.
type mockSystemNotifier struct {
	err  error
	sent []domain.SystemNotification
}

func (m *mockSystemNotifier) Send(n domain.SystemNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

// mockPushSender records sends and returns a configured error.
type mockPushSender struct {
	err  error
	sent []domain.PushNotification
}

func (m *mockPushSender) Send(_ context.Context, n domain.PushNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

// mockLogger collects messages.
type mockLogger struct {
	messages []string
}

func (m *mockLogger) Info(msg string, args ...any)  { m.messages = append(m.messages, msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.messages = append(m.messages, "ERROR: "+msg) }
