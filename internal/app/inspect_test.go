package app

import (
	"testing"

	"vectap/internal/domain"
)

func TestDecodeInspect(t *testing.T) {
	tests := []struct {
		name       string
		res        domain.CommandResult
		wantExists bool
		wantState  domain.ContainerState
	}{
		{
			name: "running with health",
			res: domain.CommandResult{
				Stdout: `[{"State":{"Status":"running","Running":true,"Health":{"Status":"healthy"}}}]`,
			},
			wantExists: true,
			wantState:  domain.ContainerState{Running: true, Status: "running", Health: "healthy"},
		},
		{
			name: "stopped without health",
			res: domain.CommandResult{
				Stdout: `[{"State":{"Status":"exited","Running":false}}]`,
			},
			wantExists: true,
			wantState:  domain.ContainerState{Running: false, Status: "exited"},
		},
		{
			name:       "inspect failure is absence",
			res:        domain.CommandResult{ExitCode: 1, Stderr: "Error: No such object: x"},
			wantExists: false,
		},
		{
			name:       "empty array is absence",
			res:        domain.CommandResult{Stdout: `[]`},
			wantExists: false,
		},
		{
			name:       "malformed output is absence",
			res:        domain.CommandResult{Stdout: `not json at all`},
			wantExists: false,
		},
		{
			name:       "empty stdout is absence",
			res:        domain.CommandResult{Stdout: ""},
			wantExists: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, exists := decodeInspect(tt.res)
			if exists != tt.wantExists {
				t.Fatalf("exists = %v, want %v", exists, tt.wantExists)
			}
			if exists && state != tt.wantState {
				t.Errorf("state = %+v, want %+v", state, tt.wantState)
			}
		})
	}
}
