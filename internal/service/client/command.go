package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/locator-seal/internal/config"
	"github.com/oshokin/locator-seal/internal/logger"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
	"github.com/oshokin/locator-seal/internal/service/common"
)

// Options configures the seal client behavior.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// BaseLocator is the content locator to seal on the server.
	BaseLocator string
}

// defaultPushInterval defines retry delay when pushing the seal request to the server.
const defaultPushInterval = 1 * time.Second

// ErrAlreadySealed is returned when the server reports the one-time seal has
// already been consumed. Retrying cannot succeed.
var ErrAlreadySealed = errors.New("base locator is already sealed on the server")

// Run attempts to seal the base locator with retry logic for transient errors.
// A FailedPrecondition response from the server is permanent and stops retries.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "locator-seal")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	// Connect to locator server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(
		ctx,
		"Sealing base locator",
		"server_address",
		serverAddress,
		"base_locator",
		opts.BaseLocator,
	)

	// attempt tries once to seal the locator, returns (completed, error).
	attempt := func() (bool, error) {
		resp, err := client.SealBaseLocator(ctx, actor, opts.BaseLocator)
		if err != nil {
			// The server rejects repeat seals with FailedPrecondition; that is
			// a final answer, not a transient failure.
			if status.Code(err) == codes.FailedPrecondition {
				return false, ErrAlreadySealed
			}

			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "SealBaseLocator failed", "error", err)

			return false, nil
		}

		// Check the server confirmed the seal.
		if resp.GetIsSealed() && resp.GetBaseLocator() == opts.BaseLocator {
			logger.Infof(ctx, "Base locator sealed: %s", formatState(resp))

			return true, nil
		}

		// Server responded but state mismatch, continue retrying.
		return false, nil
	}

	// Attempt immediately before starting retry loop.
	if done, err := attempt(); err != nil {
		return err
	} else if done {
		return nil
	}

	// Setup retry timer for subsequent attempts.
	ticker := time.NewTicker(defaultPushInterval)
	defer ticker.Stop()

	// Retry loop until success, permanent rejection, or cancellation.
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := attempt()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// formatState converts a seal state response to a readable log message.
func formatState(state *pb.SealStateResponse) string {
	if state == nil {
		return "<nil state>"
	}

	// Extract timestamp with fallback for missing data.
	timestamp := "<unknown>"
	if t := state.GetSealedAt(); t != nil {
		timestamp = t.AsTime().Format(time.RFC3339)
	}

	// Format actor as username@hostname with fallback.
	actor := "<unknown>"
	if state.GetSealedBy() != nil {
		actor = fmt.Sprintf("%s@%s", state.GetSealedBy().GetUsername(), state.GetSealedBy().GetHostname())
	}

	return fmt.Sprintf("%s by %s (%s, seal %s)", state.GetBaseLocator(), actor, timestamp, state.GetSealId())
}
