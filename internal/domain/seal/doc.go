// Package seal contains the core domain logic for the one-time base locator
// transition.
//
// Guard is the reentrancy-aware fire-once state machine: it allows a single
// top-level invocation of a protected effect (including nested synchronous
// self-calls within that invocation) and permanently rejects every later
// attempt. Record and Actor describe the sealed value and who sealed it.
package seal
