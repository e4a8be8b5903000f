package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"essaylens/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and score documents as they arrive",
	Long: `Watch a submissions directory. Every supported document that is
created or written gets scored, and a <name>.report.json sidecar is
written next to it. Runs until SIGINT or SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watch.New(a.engine, a.log).Run(ctx, args[0]); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
