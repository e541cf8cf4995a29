package domain

import (
	"fmt"
	"time"
)

// StartError reports a failed attempt to start or create the managed
// container. Diagnostic carries the runtime's stderr where available.
type StartError struct {
	Diagnostic string
}

func (e *StartError) Error() string {
	return "container start failed: " + e.Diagnostic
}

// StopError reports a failed attempt to stop the managed container.
type StopError struct {
	Diagnostic string
}

func (e *StopError) Error() string {
	return "container stop failed: " + e.Diagnostic
}

// HealthTimeoutError reports that the health endpoint never returned success
// within the wait deadline.
type HealthTimeoutError struct {
	Timeout time.Duration
}

func (e *HealthTimeoutError) Error() string {
	return fmt.Sprintf("container did not become healthy within %s", e.Timeout)
}
