package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/locator-seal/internal/config"
	"github.com/oshokin/locator-seal/internal/service/client"
	"github.com/oshokin/locator-seal/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from config.
	serverAddress string

	// rootCmd represents the base command for sealing the base locator.
	rootCmd = &cobra.Command{
		Use:   "locator-seal <base-locator>",
		Short: "Seal the base content locator on the server.",
		Long: `Performs the one-time base locator assignment on the locator server.

Sends seal requests to the server continuously until confirmation is received.
The assignment can succeed exactly once; if the server reports the locator is
already sealed, the command stops immediately because retrying cannot succeed.
Server address can be provided via flag or loaded from configuration file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return client.Run(ctx, &client.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				BaseLocator:   args[0],
			})
		},
	}
)

// Execute runs the locator-seal CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&serverAddress, "server", "s", "", "server address override")
}
