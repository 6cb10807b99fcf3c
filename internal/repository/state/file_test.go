package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/locator-seal/internal/domain/seal"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))
	r, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, r)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal record.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "state.json")
	repo := NewFileRepository(file)

	ts := time.Now().UTC().Truncate(time.Second)
	want := &domain.Record{
		SealID:   "7d08e8b6-8ef5-4260-9577-3bf3cf93b9a4",
		SealedAt: ts,
		SealedBy: &domain.Actor{
			Hostname: "Oleg Shokin",
			Username: "o.shokin",
		},
		BaseLocator: "ipfs://bafybeigdyrzt",
		Sealed:      true,
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.SealID, got.SealID)
	require.Equal(t, want.SealedAt.Unix(), got.SealedAt.Unix())
	require.Equal(t, want.SealedBy, got.SealedBy)
	require.Equal(t, want.BaseLocator, got.BaseLocator)
	require.Equal(t, want.Sealed, got.Sealed)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_UnsealedRecordRoundtrip ensures an unsealed record keeps its zero fields.
func TestFileRepository_UnsealedRecordRoundtrip(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "state.json"))

	require.NoError(t, repo.Save(context.Background(), new(domain.Record)))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.False(t, got.Sealed)
	require.Empty(t, got.BaseLocator)
	require.Nil(t, got.SealedBy)
	require.True(t, got.SealedAt.IsZero())
}
