package seal

import "errors"

// ErrAlreadySealed is returned when the one-time operation has already been
// consumed. The rejection is permanent: retrying will always fail.
var ErrAlreadySealed = errors.New("operation has already been consumed")

// Guard enforces that a protected effect runs at most once over the guard's
// lifetime while still allowing the single permitted invocation to re-enter
// the guarded entry point synchronously.
//
// A naive single boolean cannot tell a nested self-call apart from a second
// independent call, so the guard tracks two flags:
//   - fired marks that a top-level invocation has ever started. It is
//     monotonic and is never reset, even when the effect fails.
//   - inProgress is set only while a top-level invocation's dynamic extent
//     is active and is what identifies nested calls as reentrant
//     continuations rather than new attempts.
//
// The zero value is an unfired guard. A Guard assumes a single logical
// thread of control: callers running top-level invocations from several
// goroutines must serialize them with their own mutex.
type Guard struct {
	// fired is true once the protected effect has ever been entered at the
	// top level.
	fired bool
	// inProgress is true only inside an active top-level invocation.
	inProgress bool
}

// NewGuard returns a guard that has never fired.
func NewGuard() *Guard {
	return new(Guard)
}

// NewFiredGuard returns a guard already in the terminal state. It is used
// when restoring from persisted state that says the one-time operation was
// consumed in an earlier process lifetime.
func NewFiredGuard() *Guard {
	return &Guard{fired: true}
}

// Invoke runs the protected effect if the guard still permits it.
//
// A call is rejected with ErrAlreadySealed iff the guard has fired and no
// invocation is currently active; the effect is not run and the state is
// unchanged. On the first top-level call both flags are set together before
// the effect runs, so nested self-calls pass through while any later
// independent call is rejected.
//
// Errors from the effect propagate unmodified; fired stays set regardless,
// so a failed one-time operation cannot be silently repeated.
func (g *Guard) Invoke(effect func() error) error {
	if g.fired && !g.inProgress {
		return ErrAlreadySealed
	}

	// A nested call sees inProgress already set and must not touch it.
	if topLevel := !g.inProgress; topLevel {
		g.inProgress = true
		g.fired = true

		// Clearing via defer keeps the guard rejecting future calls even if
		// the effect panics; fired stays set either way.
		defer func() {
			g.inProgress = false
		}()
	}

	return effect()
}

// Fired reports whether the one-time operation has ever been started.
func (g *Guard) Fired() bool {
	return g.fired
}

// InProgress reports whether a top-level invocation is currently active.
func (g *Guard) InProgress() bool {
	return g.inProgress
}
