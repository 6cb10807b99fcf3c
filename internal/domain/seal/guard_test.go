package seal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain verifies no goroutines leak from the domain package tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errEffectFailed = errors.New("effect failed")

// TestGuard_FirstCallRunsEffect verifies the first top-level call executes
// the effect exactly once and flips the guard into the terminal state.
func TestGuard_FirstCallRunsEffect(t *testing.T) {
	t.Parallel()

	g := NewGuard()
	require.False(t, g.Fired())
	require.False(t, g.InProgress())

	var (
		calls   int
		locator string
	)

	err := g.Invoke(func() error {
		calls++
		locator = "ipfs://a"

		// The fire happens on entry, before the effect completes.
		require.True(t, g.Fired())
		require.True(t, g.InProgress())

		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, "ipfs://a", locator)
	require.True(t, g.Fired())
	require.False(t, g.InProgress())
}

// TestGuard_SecondCallRejected verifies every call after the first top-level
// call fails with ErrAlreadySealed without running the effect.
func TestGuard_SecondCallRejected(t *testing.T) {
	t.Parallel()

	g := NewGuard()
	locator := ""

	require.NoError(t, g.Invoke(func() error {
		locator = "ipfs://a"
		return nil
	}))

	err := g.Invoke(func() error {
		locator = "ipfs://b"
		return nil
	})

	require.ErrorIs(t, err, ErrAlreadySealed)
	require.Equal(t, "ipfs://a", locator)
}

// TestGuard_RejectionIsIdempotent verifies repeated rejected calls never
// mutate the guard state.
func TestGuard_RejectionIsIdempotent(t *testing.T) {
	t.Parallel()

	g := NewGuard()
	require.NoError(t, g.Invoke(func() error { return nil }))

	for i := 0; i < 10; i++ {
		err := g.Invoke(func() error {
			t.Fatal("effect must not run after the guard has fired")
			return nil
		})

		require.ErrorIs(t, err, ErrAlreadySealed)
		require.True(t, g.Fired())
		require.False(t, g.InProgress())
	}
}

// TestGuard_NestedCallPassesThrough verifies a reentrant call made from
// inside the protected effect is treated as part of the same invocation and
// runs its effect instead of being rejected.
func TestGuard_NestedCallPassesThrough(t *testing.T) {
	t.Parallel()

	g := NewGuard()

	var innerRan bool

	err := g.Invoke(func() error {
		return g.Invoke(func() error {
			innerRan = true

			// Still inside the outer invocation's dynamic extent.
			require.True(t, g.InProgress())

			return nil
		})
	})

	require.NoError(t, err)
	require.True(t, innerRan)
	require.True(t, g.Fired())
	require.False(t, g.InProgress())
}

// TestGuard_DeeplyNestedCalls verifies inProgress stays set across
// arbitrarily deep synchronous nesting and is cleared exactly once at
// top-level exit.
func TestGuard_DeeplyNestedCalls(t *testing.T) {
	t.Parallel()

	g := NewGuard()

	const depth = 16

	var calls int

	var descend func(level int) error
	descend = func(level int) error {
		return g.Invoke(func() error {
			calls++
			if level == 0 {
				return nil
			}

			return descend(level - 1)
		})
	}

	require.NoError(t, descend(depth))
	require.Equal(t, depth+1, calls)
	require.False(t, g.InProgress())

	// A fresh top-level attempt after the nested run is rejected.
	require.ErrorIs(t, g.Invoke(func() error { return nil }), ErrAlreadySealed)
}

// TestGuard_EffectErrorPropagatesAndStaysFired verifies a failing effect
// propagates its error and does not roll back the fired flag, so the failed
// one-time operation cannot be retried.
func TestGuard_EffectErrorPropagatesAndStaysFired(t *testing.T) {
	t.Parallel()

	g := NewGuard()

	err := g.Invoke(func() error { return errEffectFailed })
	require.ErrorIs(t, err, errEffectFailed)
	require.True(t, g.Fired())
	require.False(t, g.InProgress())

	err = g.Invoke(func() error {
		t.Fatal("effect must not run after a failed first call")
		return nil
	})
	require.ErrorIs(t, err, ErrAlreadySealed)
}

// TestGuard_EffectPanicLeavesGuardConsumed verifies a panicking effect
// unwinds through the guard while leaving it permanently consumed.
func TestGuard_EffectPanicLeavesGuardConsumed(t *testing.T) {
	t.Parallel()

	g := NewGuard()

	require.Panics(t, func() {
		_ = g.Invoke(func() error { panic("effect exploded") })
	})

	require.True(t, g.Fired())
	require.False(t, g.InProgress())
	require.ErrorIs(t, g.Invoke(func() error { return nil }), ErrAlreadySealed)
}

// TestGuard_NestedErrorDoesNotClearInProgress verifies a failing nested call
// propagates to the outer effect without ending the outer invocation window.
func TestGuard_NestedErrorDoesNotClearInProgress(t *testing.T) {
	t.Parallel()

	g := NewGuard()

	var retriedInsideWindow bool

	err := g.Invoke(func() error {
		if err := g.Invoke(func() error { return errEffectFailed }); err != nil {
			require.ErrorIs(t, err, errEffectFailed)
		}

		// The window is still open, so another nested call passes through.
		return g.Invoke(func() error {
			retriedInsideWindow = true
			return nil
		})
	})

	require.NoError(t, err)
	require.True(t, retriedInsideWindow)
	require.False(t, g.InProgress())
}

// TestNewFiredGuard verifies a restored guard rejects immediately.
func TestNewFiredGuard(t *testing.T) {
	t.Parallel()

	g := NewFiredGuard()
	require.True(t, g.Fired())
	require.False(t, g.InProgress())

	err := g.Invoke(func() error {
		t.Fatal("effect must not run on a restored fired guard")
		return nil
	})
	require.ErrorIs(t, err, ErrAlreadySealed)
}
