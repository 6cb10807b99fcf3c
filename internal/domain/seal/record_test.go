package seal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
}

// TestRecordClone verifies that Record.Clone copies fields and deep-copies SealedBy.
func TestRecordClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Record)(nil).Clone())

	ts := time.Now().UTC().Truncate(time.Second)
	r := Record{
		SealID:   "b2f7a1de-0000-4000-8000-000000000000",
		SealedAt: ts,
		SealedBy: &Actor{
			Hostname: "Oleg Shokin",
			Username: "o.shokin",
		},
		BaseLocator: "ipfs://a",
		Sealed:      true,
	}

	c := r.Clone()
	require.Equal(t, r.SealID, c.SealID)
	require.Equal(t, r.SealedAt, c.SealedAt)
	require.Equal(t, r.BaseLocator, c.BaseLocator)
	require.Equal(t, r.Sealed, c.Sealed)
	require.Equal(t, r.SealedBy, c.SealedBy)

	// Ensure actor pointer is cloned.
	require.NotSame(t, r.SealedBy, c.SealedBy)
}
