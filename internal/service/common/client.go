//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/locator-seal/internal/config"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
)

// Client wraps the gRPC LocatorService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the locator server.
	conn *grpc.ClientConn
	// api is the generated LocatorService client interface.
	api pb.LocatorServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
	// errLocatorRequired is returned when an empty base locator is provided to a seal call.
	errLocatorRequired = errors.New("base locator must be provided")
)

// Dial establishes a gRPC connection to the locator server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial locator server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewLocatorServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetSealState retrieves the current seal state.
func (c *Client) GetSealState(ctx context.Context, actor *pb.SystemActor) (*pb.SealStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetSealState(callCtx, &pb.GetSealStateRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get seal state: %w", err)
	}

	return resp, nil
}

// SealBaseLocator performs the one-time locator assignment on the server.
// A FailedPrecondition status means the operation was already consumed;
// callers must treat it as permanent and stop retrying.
func (c *Client) SealBaseLocator(
	ctx context.Context,
	actor *pb.SystemActor,
	baseLocator string,
) (*pb.SealStateResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	if baseLocator == "" {
		return nil, errLocatorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.SealBaseLocatorRequest{
		Actor:       actor,
		BaseLocator: baseLocator,
	}

	response, err := c.api.SealBaseLocator(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("seal base locator: %w", err)
	}

	return response, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
