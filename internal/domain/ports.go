package domain

import "context"

// CommandRunner executes an external command and captures its outcome.
// Run resolves, never rejects: launch failures are folded into the returned
// CommandResult (ExitCode 1, Stderr carrying the error message).
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) CommandResult
}

// HealthProbe checks whether a service is ready to serve traffic, distinct
// from the runtime's own running flag. A nil return means healthy; transport
// errors and non-success statuses are both "not yet healthy".
type HealthProbe interface {
	Probe(ctx context.Context, url string) error
}

// SystemNotifier delivers a desktop notification via the platform's native
// notifier command.
type SystemNotifier interface {
	Send(n SystemNotification) error
}

// PushSender delivers a push notification to an ntfy-compatible endpoint.
type PushSender interface {
	Send(ctx context.Context, n PushNotification) error
}

// Logger provides structured logging.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}
