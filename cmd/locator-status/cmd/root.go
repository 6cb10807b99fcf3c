package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/locator-seal/internal/config"
	"github.com/oshokin/locator-seal/internal/service/status"
	"github.com/oshokin/locator-seal/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// watch keeps polling the server instead of exiting after one query.
	watch bool

	// rootCmd represents the base command for querying the seal state.
	rootCmd = &cobra.Command{
		Use:   "locator-status [server-address]",
		Short: "Show the current base locator seal state.",
		Long: `Queries the locator server and prints whether the base locator is sealed.

By default the command queries once and exits. With --watch it keeps polling
the server at fixed 5-second intervals until interrupted.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			statusOptions := &status.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Watch:         watch,
			}

			return status.Run(ctx, statusOptions)
		},
	}
)

// Execute runs the locator-status CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling the seal state")
}
