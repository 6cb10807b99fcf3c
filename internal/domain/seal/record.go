package seal

import "time"

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name where the action was performed.
	Hostname string
	// Username is the system user who triggered the action.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Record represents the seal state of a resource's base locator.
type Record struct {
	// SealID uniquely identifies the seal operation that consumed the guard.
	SealID string
	// SealedAt is when the base locator was sealed.
	SealedAt time.Time
	// SealedBy is the user who sealed the base locator.
	SealedBy *Actor
	// BaseLocator is the immutable locator value, e.g. "ipfs://...".
	BaseLocator string
	// Sealed indicates whether the one-time operation has been consumed.
	Sealed bool
}

// Clone returns a copy of the record to avoid leaking internal references.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	return &Record{
		SealID:      r.SealID,
		SealedAt:    r.SealedAt,
		SealedBy:    r.SealedBy.Clone(),
		BaseLocator: r.BaseLocator,
		Sealed:      r.Sealed,
	}
}
