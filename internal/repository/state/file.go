package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/locator-seal/internal/config"
	domain "github.com/oshokin/locator-seal/internal/domain/seal"
	pb "github.com/oshokin/locator-seal/internal/pb/v1"
)

// Repository defines persistence operations for the seal record.
type Repository interface {
	Load(ctx context.Context) (*domain.Record, error)
	Save(ctx context.Context, record *domain.Record) error
}

// FileRepository persists the seal record to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the seal record from disk.
func (r *FileRepository) Load(_ context.Context) (*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var protoState pb.SealStateResponse
	if err = protojson.Unmarshal(contents, &protoState); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return fromProto(&protoState), nil
}

// Save writes the seal record to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoState     = toProto(record)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoState)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts protobuf SealStateResponse into the domain Record model.
func fromProto(protoState *pb.SealStateResponse) *domain.Record {
	var (
		sealedAt time.Time
		actor    *domain.Actor
	)

	if ts := protoState.GetSealedAt(); ts != nil {
		sealedAt = ts.AsTime()
	}

	if protoActor := protoState.GetSealedBy(); protoActor != nil {
		actor = &domain.Actor{
			Hostname: protoActor.GetHostname(),
			Username: protoActor.GetUsername(),
		}
	}

	return &domain.Record{
		SealID:      protoState.GetSealId(),
		SealedAt:    sealedAt,
		SealedBy:    actor,
		BaseLocator: protoState.GetBaseLocator(),
		Sealed:      protoState.GetIsSealed(),
	}
}

// toProto converts the domain Record model into protobuf SealStateResponse.
func toProto(record *domain.Record) *pb.SealStateResponse {
	var sealedAt *timestamppb.Timestamp
	if !record.SealedAt.IsZero() {
		sealedAt = timestamppb.New(record.SealedAt)
	}

	var actor *pb.SystemActor
	if record.SealedBy != nil {
		actor = &pb.SystemActor{
			Hostname: record.SealedBy.Hostname,
			Username: record.SealedBy.Username,
		}
	}

	return &pb.SealStateResponse{
		SealedAt:    sealedAt,
		SealedBy:    actor,
		BaseLocator: record.BaseLocator,
		IsSealed:    record.Sealed,
		SealId:      record.SealID,
	}
}
