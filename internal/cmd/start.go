package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	startWait     bool
	startTimeout  time.Duration
	startInterval time.Duration
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Qdrant container",
	Long: `Start the managed Qdrant container. Already running is a no-op; an
existing stopped container is started in place; otherwise a new detached
container is created with the configured port and storage directory.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startWait, "wait", false, "block until the health endpoint reports ready")
	startCmd.Flags().DurationVar(&startTimeout, "timeout", 60*time.Second, "health wait deadline (with --wait)")
	startCmd.Flags().DurationVar(&startInterval, "interval", 500*time.Millisecond, "health probe cadence (with --wait)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	if err := w.manager.Start(cmd.Context()); err != nil {
		return err
	}

	if startWait {
		if err := w.manager.WaitForHealthy(cmd.Context(), startTimeout, startInterval); err != nil {
			return err
		}
		fmt.Printf("Qdrant is healthy on port %d\n", w.cfg.Qdrant.Port)
		return nil
	}

	fmt.Printf("Qdrant container %s started\n", w.cfg.Qdrant.ContainerName)
	return nil
}
