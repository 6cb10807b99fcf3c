package status

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/locator-seal/internal/config"
	"github.com/oshokin/locator-seal/internal/logger"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
	"github.com/oshokin/locator-seal/internal/service/common"
)

// Options controls the status query behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// Watch keeps polling the server instead of exiting after one query.
	Watch bool
	// PollInterval defines the interval between state checks in watch mode.
	PollInterval time.Duration
}

// DefaultPollInterval defines the fixed polling interval for watch mode.
const DefaultPollInterval = 5 * time.Second

// Run queries the seal state once, or repeatedly in watch mode.
// Loads configuration first to get the timeout and server address.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "locator-status")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Use default polling interval as it's not user-configurable.
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	// One-shot query is the default.
	if !opts.Watch {
		state, err := client.GetSealState(ctx, actor)
		if err != nil {
			return fmt.Errorf("get seal state: %w", err)
		}

		logger.Infof(ctx, "Seal state: %s", formatState(state))

		return nil
	}

	logger.InfoKV(ctx, "Watching seal state", "server_address", serverAddress, "interval", opts.PollInterval.String())

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			state, err := client.GetSealState(ctx, actor)
			if err != nil {
				logger.ErrorKV(ctx, "Get seal state failed", "error", err)
				continue
			}

			logger.Infof(ctx, "Seal state: %s", formatState(state))
		}
	}
}

// formatState converts a seal state response to a readable log message.
func formatState(state *pb.SealStateResponse) string {
	if state == nil || !state.GetIsSealed() {
		return "unsealed"
	}

	// Extract timestamp with fallback for missing data.
	timestamp := "<unknown>"
	if ts := state.GetSealedAt(); ts != nil {
		timestamp = ts.AsTime().Format(time.RFC3339)
	}

	// Format actor as username@hostname with fallback.
	actor := "<unknown>"
	if state.GetSealedBy() != nil {
		actor = fmt.Sprintf("%s@%s", state.GetSealedBy().GetUsername(), state.GetSealedBy().GetHostname())
	}

	return fmt.Sprintf("sealed to %s by %s at %s (seal %s)",
		state.GetBaseLocator(), actor, timestamp, state.GetSealId())
}
