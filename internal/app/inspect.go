package app

import (
	"encoding/json"

	"vectap/internal/domain"
)

// inspectEntry is the subset of the runtime's inspect JSON the manager needs.
// Inspect output is an array; only the first element is used.
type inspectEntry struct {
	State struct {
		Status  string `json:"Status"`
		Running bool   `json:"Running"`
		Health  *struct {
			Status string `json:"Status"`
		} `json:"Health"`
	} `json:"State"`
}

// decodeInspect turns an inspect invocation result into a container state.
// A non-zero exit, an empty array, and malformed output all collapse to
// "absent": the runtime failing an inspect for a missing container is the
// expected not-found signal, not a fault.
func decodeInspect(res domain.CommandResult) (domain.ContainerState, bool) {
	if !res.Ok() {
		return domain.ContainerState{}, false
	}

	var entries []inspectEntry
	if err := json.Unmarshal([]byte(res.Stdout), &entries); err != nil || len(entries) == 0 {
		return domain.ContainerState{}, false
	}

	state := domain.ContainerState{
		Running: entries[0].State.Running,
		Status:  entries[0].State.Status,
	}
	if entries[0].State.Health != nil {
		state.Health = entries[0].State.Health.Status
	}
	return state, true
}
