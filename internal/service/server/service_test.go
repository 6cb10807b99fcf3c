package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/locator-seal/internal/domain/seal"
	repo "github.com/oshokin/locator-seal/internal/repository/state"
)

var (
	errTestLoad = errors.New("test load error")
	errTestSave = errors.New("test save error")
)

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// record is the seal record to return from Load operations.
	record *domain.Record
	// loadErr is the error to return from Load operations.
	loadErr error
	// saveErr is the error to return from Save operations.
	saveErr error
	// saved stores the last record passed to Save operations.
	saved *domain.Record
}

// Load retrieves the current record from the memory repository.
func (m *memoryRepository) Load(context.Context) (*domain.Record, error) {
	return m.record, m.loadErr
}

// Save stores the provided record in memory, overwriting any previously saved one.
func (m *memoryRepository) Save(_ context.Context, r *domain.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = r

	return nil
}

// TestNewService_LoadsStateOrDefaults asserts newService behavior on existing, missing, and error states.
func TestNewService_LoadsStateOrDefaults(t *testing.T) {
	t.Parallel()

	// Existing sealed record restores a consumed guard.
	old := &domain.Record{
		SealID:   "d5b0be27-3b81-4cb5-ae69-b1e91b0f2c57",
		SealedAt: time.Unix(100, 0),
		SealedBy: &domain.Actor{
			Hostname: "Oleg Shokin",
			Username: "o.shokin",
		},
		BaseLocator: "ipfs://a",
		Sealed:      true,
	}

	s, err := newService(context.Background(), &memoryRepository{record: old})

	require.NoError(t, err)
	require.Equal(t, old.BaseLocator, s.record.BaseLocator)
	require.True(t, s.guard.Fired())

	// Not found -> default unsealed state with a fresh guard.
	s, err = newService(context.Background(), &memoryRepository{loadErr: repo.ErrNotFound})

	require.NoError(t, err)
	require.False(t, s.record.Sealed)
	require.False(t, s.guard.Fired())

	// Other error.
	s, err = newService(context.Background(), &memoryRepository{loadErr: errTestLoad})

	require.Error(t, err)
	require.Nil(t, s)
}

// TestService_SealAndGet verifies SealBaseLocator persists and GetSealState returns the sealed record.
func TestService_SealAndGet(t *testing.T) {
	t.Parallel()

	repo := new(memoryRepository)
	s, err := newService(context.Background(), repo)
	require.NoError(t, err)

	actor := &domain.Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	result, err := s.SealBaseLocator(context.Background(), actor, "ipfs://a")

	require.NoError(t, err)
	require.True(t, result.Sealed)
	require.Equal(t, "ipfs://a", result.BaseLocator)
	require.NotEmpty(t, result.SealID)
	require.NotNil(t, result.SealedBy)

	// Cloned.
	require.NotSame(t, actor, result.SealedBy)
	require.NotNil(t, repo.saved)

	current := s.GetSealState(context.Background())
	require.True(t, current.Sealed)
	require.Equal(t, "ipfs://a", current.BaseLocator)
}

// TestService_SecondSealRejected verifies only the first seal succeeds and the
// stored locator survives rejected attempts.
func TestService_SecondSealRejected(t *testing.T) {
	t.Parallel()

	s, err := newService(context.Background(), new(memoryRepository))
	require.NoError(t, err)

	actor := &domain.Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	_, err = s.SealBaseLocator(context.Background(), actor, "ipfs://a")
	require.NoError(t, err)

	_, err = s.SealBaseLocator(context.Background(), actor, "ipfs://b")
	require.ErrorIs(t, err, domain.ErrAlreadySealed)

	current := s.GetSealState(context.Background())
	require.Equal(t, "ipfs://a", current.BaseLocator)
}

// TestService_FailedPersistConsumesAttempt verifies a failing persist
// propagates its error and still consumes the one-time operation.
func TestService_FailedPersistConsumesAttempt(t *testing.T) {
	t.Parallel()

	s, err := newService(context.Background(), &memoryRepository{saveErr: errTestSave})
	require.NoError(t, err)

	actor := &domain.Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	_, err = s.SealBaseLocator(context.Background(), actor, "ipfs://a")
	require.ErrorIs(t, err, errTestSave)

	// The in-memory record is untouched by the failed attempt.
	require.False(t, s.GetSealState(context.Background()).Sealed)

	// The guard fired on entry, so the failed operation is not retryable.
	_, err = s.SealBaseLocator(context.Background(), actor, "ipfs://a")
	require.ErrorIs(t, err, domain.ErrAlreadySealed)
}

// TestService_RestoredGuardRejects verifies that a restart with a sealed
// record on disk keeps rejecting seal attempts.
func TestService_RestoredGuardRejects(t *testing.T) {
	t.Parallel()

	mem := new(memoryRepository)
	s, err := newService(context.Background(), mem)
	require.NoError(t, err)

	actor := &domain.Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	_, err = s.SealBaseLocator(context.Background(), actor, "ipfs://a")
	require.NoError(t, err)

	// Simulate a restart against the same repository contents.
	mem.record = mem.saved

	restarted, err := newService(context.Background(), mem)
	require.NoError(t, err)

	_, err = restarted.SealBaseLocator(context.Background(), actor, "ipfs://b")
	require.ErrorIs(t, err, domain.ErrAlreadySealed)
	require.Equal(t, "ipfs://a", restarted.GetSealState(context.Background()).BaseLocator)
}
