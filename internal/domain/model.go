package domain

// CommandResult is the universal outcome of an external command invocation.
// A process that could not even be launched is normalized to ExitCode 1 with
// the launch error message in Stderr, so callers only ever branch on the
// exit code.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Ok reports whether the command exited successfully.
func (r CommandResult) Ok() bool {
	return r.ExitCode == 0
}

// ContainerState is the transient view of one container as reported by the
// runtime's inspect command. It is re-derived on every query and never
// cached: the runtime is the sole source of truth and can change out of band.
type ContainerState struct {
	Running bool
	Status  string
	Health  string
}

// ContainerStatus is the full status report for the managed container.
// Version is empty when the in-container version query failed; that failure
// is non-fatal.
type ContainerStatus struct {
	Exists  bool   `json:"exists"`
	Running bool   `json:"running"`
	Status  string `json:"status,omitempty"`
	Health  string `json:"health,omitempty"`
	Version string `json:"version,omitempty"`
}

// SystemNotification is a desktop notification dispatched through the
// platform's native notifier command.
type SystemNotification struct {
	Title    string
	Subtitle string
	Message  string
}

// PushNotification is an ntfy-style push message. Endpoint and Topic may be
// empty, in which case configured defaults apply.
type PushNotification struct {
	Endpoint string
	Topic    string
	Title    string
	Message  string
	Tags     string
	Priority string
	Click    string
}
