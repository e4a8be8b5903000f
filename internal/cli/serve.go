package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"essaylens/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP detection service",
	Long: `Start the HTTP service: a browser form at /, the JSON API at
/api/v1/detect, and a liveness probe at /health. Stops gracefully on
SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(a.cfg.Server, a.engine, a.log).Run(ctx)
}
