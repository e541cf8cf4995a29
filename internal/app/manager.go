package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"vectap/internal/domain"
)

// storageMount is where the Qdrant image expects its collections on disk.
const storageMount = "/qdrant/storage"

// portConflictMarker appears in the runtime's stderr when the host port is
// taken (e.g. "Bind for 0.0.0.0:6333 failed: port is already allocated").
const portConflictMarker = "port is already allocated"

// Identity names the one container a Manager owns. It is immutable after
// construction; the manager never creates or targets containers under any
// other name.
type Identity struct {
	Name    string
	Port    int
	DataDir string
	Image   string
}

// Manager drives the lifecycle of a single named Qdrant container through
// the container runtime's CLI. All state is re-derived by inspection on
// every call — the runtime can change out of band (a user running
// "docker stop" by hand), so nothing is cached between operations.
//
// Operations are not reentrant-safe against overlapping calls on the same
// instance; callers serialize if concurrent invocation is possible.
type Manager struct {
	id      Identity
	runtime string
	runner  domain.CommandRunner
	probe   domain.HealthProbe
	logger  domain.Logger
}

// NewManager creates a manager for the container identified by id. runtime
// is the CLI binary to drive ("docker"; "podman" works unchanged).
func NewManager(id Identity, runtime string, runner domain.CommandRunner, probe domain.HealthProbe, logger domain.Logger) *Manager {
	return &Manager{
		id:      id,
		runtime: runtime,
		runner:  runner,
		probe:   probe,
		logger:  logger,
	}
}

func (m *Manager) inspect(ctx context.Context) (domain.ContainerState, bool) {
	res := m.runner.Run(ctx, m.runtime, "inspect", m.id.Name)
	return decodeInspect(res)
}

// IsRunning reports whether the container exists and its running flag is
// set. It never errors: an unavailable runtime reads as "not running".
func (m *Manager) IsRunning(ctx context.Context) bool {
	state, exists := m.inspect(ctx)
	return exists && state.Running
}

// Start brings the container up. Already running is a no-op; an existing
// stopped container is started in place; an absent container is created
// detached with the fixed port mapping and the data directory mounted as
// its storage volume.
func (m *Manager) Start(ctx context.Context) error {
	state, exists := m.inspect(ctx)

	if exists && state.Running {
		m.logger.Info("container already running", "name", m.id.Name)
		return nil
	}

	if exists {
		m.logger.Info("starting existing container", "name", m.id.Name)
		res := m.runner.Run(ctx, m.runtime, "start", m.id.Name)
		if !res.Ok() {
			return &domain.StartError{
				Diagnostic: diagnostic(res.Stderr, "could not start the existing container"),
			}
		}
		return nil
	}

	if err := os.MkdirAll(m.id.DataDir, 0755); err != nil {
		return &domain.StartError{
			Diagnostic: fmt.Sprintf("create data directory %s: %v", m.id.DataDir, err),
		}
	}

	m.logger.Info("creating container",
		"name", m.id.Name, "image", m.id.Image, "port", m.id.Port, "data", m.id.DataDir)

	res := m.runner.Run(ctx, m.runtime, "run",
		"-d",
		"--name", m.id.Name,
		"-p", fmt.Sprintf("%d:%d", m.id.Port, m.id.Port),
		"-v", m.id.DataDir+":"+storageMount,
		m.id.Image,
	)
	if !res.Ok() {
		if strings.Contains(res.Stderr, portConflictMarker) {
			return &domain.StartError{
				Diagnostic: fmt.Sprintf(
					"port %d is already in use by another process; stop it or configure a different port",
					m.id.Port),
			}
		}
		return &domain.StartError{
			Diagnostic: diagnostic(res.Stderr, "could not create the container"),
		}
	}
	return nil
}

// Stop stops the container if it is running. Absent and already-stopped
// containers are no-ops.
func (m *Manager) Stop(ctx context.Context) error {
	state, exists := m.inspect(ctx)
	if !exists || !state.Running {
		m.logger.Info("container not running, nothing to stop", "name", m.id.Name)
		return nil
	}

	res := m.runner.Run(ctx, m.runtime, "stop", m.id.Name)
	if !res.Ok() {
		return &domain.StopError{
			Diagnostic: diagnostic(res.Stderr, "could not stop the container"),
		}
	}
	return nil
}

// Status reports existence, running state, runtime status strings and, for
// a running container, the Qdrant version queried in-container. A failed
// version query leaves Version empty.
func (m *Manager) Status(ctx context.Context) domain.ContainerStatus {
	state, exists := m.inspect(ctx)
	if !exists {
		return domain.ContainerStatus{Exists: false, Running: false}
	}

	status := domain.ContainerStatus{
		Exists:  true,
		Running: state.Running,
		Status:  state.Status,
		Health:  state.Health,
	}

	if state.Running {
		res := m.runner.Run(ctx, m.runtime, "exec", m.id.Name, "./qdrant", "--version")
		if res.Ok() {
			status.Version = strings.TrimSpace(res.Stdout)
		}
	}
	return status
}

// WaitForHealthy polls the HTTP health endpoint at a constant interval until
// it reports success or timeout elapses. Each probe failure is swallowed and
// counts only against the deadline; the wait suspends between probes without
// busy-waiting.
func (m *Manager) WaitForHealthy(ctx context.Context, timeout, interval time.Duration) error {
	url := fmt.Sprintf("http://localhost:%d/healthz", m.id.Port)
	backoff := retry.WithMaxDuration(timeout, retry.NewConstant(interval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if probeErr := m.probe.Probe(ctx, url); probeErr != nil {
			return retry.RetryableError(probeErr)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &domain.HealthTimeoutError{Timeout: timeout}
	}
	return nil
}

// diagnostic prefers the runtime's own stderr, falling back to a generic
// message when the runtime said nothing.
func diagnostic(stderr, fallback string) string {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}
	return fallback
}
