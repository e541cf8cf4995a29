package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the Qdrant container",
	Long: `Stop the managed Qdrant container. Absent or already-stopped
containers are a no-op. The container is kept for a later restart; its
data directory is never touched.`,
	RunE: runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	if err := w.manager.Stop(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("Qdrant container %s stopped\n", w.cfg.Qdrant.ContainerName)
	return nil
}
