package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	waitTimeout  time.Duration
	waitInterval time.Duration
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Block until Qdrant reports healthy",
	Long: `Poll the Qdrant health endpoint at a fixed interval until it reports
success or the deadline elapses. Exits non-zero on timeout.`,
	RunE: runWait,
}

func init() {
	waitCmd.Flags().DurationVar(&waitTimeout, "timeout", 60*time.Second, "deadline for the container to become healthy")
	waitCmd.Flags().DurationVar(&waitInterval, "interval", 500*time.Millisecond, "probe cadence")
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	if err := w.manager.WaitForHealthy(cmd.Context(), waitTimeout, waitInterval); err != nil {
		return err
	}

	fmt.Printf("Qdrant is healthy on port %d\n", w.cfg.Qdrant.Port)
	return nil
}
