package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vectap/internal/domain"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Qdrant container status",
	Long:  `Display existence, running state, health and version of the managed container.`,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print the status as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	status := w.manager.Status(cmd.Context())

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	printStatus(w.cfg.Qdrant.ContainerName, w.cfg.Qdrant.Port, status)
	return nil
}

func printStatus(name string, port int, status domain.ContainerStatus) {
	fmt.Printf("Container: %s\n", name)
	fmt.Printf("State:     %s\n", renderState(status))

	if status.Exists {
		if status.Health != "" {
			fmt.Printf("Health:    %s\n", status.Health)
		}
		if status.Version != "" {
			fmt.Printf("Version:   %s\n", status.Version)
		}
	}
	if status.Running {
		fmt.Printf("Endpoint:  http://localhost:%d\n", port)
	}
}
