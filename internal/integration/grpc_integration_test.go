package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/locator-seal/internal/config"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
	"github.com/oshokin/locator-seal/internal/service/common"
	"github.com/oshokin/locator-seal/internal/service/server"
)

// startGRPC starts a gRPC server with temporary config and persistent state file.
// Returns a stop function to gracefully shutdown the server.
func startGRPC(t *testing.T, addr string, statePath string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress:      addr,
			ServerUpdateFolder: "http://127.0.0.1/",
			Timeout:            5 * time.Second,
		}),
	)

	// Start server in background goroutine.
	go func() {
		options := &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: "",
			StateFile:     statePath,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Test code ignores shutdown error.
	}()

	// Wait briefly for server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_SealRoundtrip starts the real server and exercises seal/get with on-disk persistence.
func TestGRPC_SealRoundtrip(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	// Setup temporary state file for persistence testing.
	statePath := filepath.Join(t.TempDir(), "state.json")

	// Start test gRPC server.
	stop := startGRPC(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	// Connect to the test server with timeout.
	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Create test actor for audit logging.
	actor := &pb.SystemActor{
		Hostname: "test-hostname",
		Username: "test-user",
	}

	// Initial state read - unsealed.
	got, err := c.GetSealState(ctx, actor)
	require.NoError(t, err)
	require.False(t, got.GetIsSealed())

	// Seal the base locator.
	sealed, err := c.SealBaseLocator(ctx, actor, "ipfs://bafybeigdyrzt")
	require.NoError(t, err)
	require.True(t, sealed.GetIsSealed())
	require.Equal(t, "ipfs://bafybeigdyrzt", sealed.GetBaseLocator())
	require.NotEmpty(t, sealed.GetSealId())

	// Verify state was persisted correctly.
	got, err = c.GetSealState(ctx, actor)
	require.NoError(t, err)
	require.True(t, got.GetIsSealed())
	require.Equal(t, "ipfs://bafybeigdyrzt", got.GetBaseLocator())

	// Verify state was persisted to disk.
	_, err = os.Stat(statePath)
	require.NoError(t, err)
}

// TestGRPC_SecondSealRejected verifies the server rejects a second seal with
// FailedPrecondition and keeps the original locator.
func TestGRPC_SecondSealRejected(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	actor := &pb.SystemActor{
		Hostname: "test-hostname",
		Username: "test-user",
	}

	_, err = c.SealBaseLocator(ctx, actor, "ipfs://first")
	require.NoError(t, err)

	_, err = c.SealBaseLocator(ctx, actor, "ipfs://second")
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	got, err := c.GetSealState(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, "ipfs://first", got.GetBaseLocator())
}

// ReservePort returns address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}
