// This file declares the sentinel errors, Options, IDPair and the
// simplification Outcome type for the ancestry package.
package ancestry

import (
	"errors"

	"github.com/ashmarin/ancestra/tables"
)

// Sentinel errors for tracker operations.
var (
	// ErrNonPositiveSize indicates a founder population size ≤ 0.
	ErrNonPositiveSize = errors.New("ancestry: founder population size must be positive")

	// ErrIDOverflow indicates the identity counter cannot allocate
	// another pair without exceeding the NodeID range.
	ErrIDOverflow = errors.New("ancestry: genome-copy identity counter overflow")

	// ErrOrdinalOutOfRange indicates a parent ordinal outside the
	// current parental window.
	ErrOrdinalOutOfRange = errors.New("ancestry: parent ordinal outside current parental window")

	// ErrUnknownNodeID indicates a staged edge references an identity
	// that has not been allocated yet.
	ErrUnknownNodeID = errors.New("ancestry: edge references an unallocated genome-copy identity")

	// ErrBadInterval indicates a staged edge whose interval is not
	// half-open with left < right.
	ErrBadInterval = errors.New("ancestry: edge interval must satisfy left < right")

	// ErrNoOffspring indicates FinishGeneration was called before any
	// offspring pair was allocated for the generation.
	ErrNoOffspring = errors.New("ancestry: generation finished with no offspring allocated")
)

// Options configures a Tracker.
//
//   - Unchecked — skip the per-call precondition guards in the three
//     hot-path operations (ParentIDs, AllocateOffspring, StageEdge).
//     With Unchecked set, violated preconditions silently corrupt the
//     recorded genealogy instead of returning an error; use it only
//     when the driver already guarantees its inputs and the guard
//     branch shows up in profiles.
//
// FinishGeneration's empty-generation guard is not affected: it runs
// once per generation, outside the per-event hot path.
type Options struct {
	Unchecked bool
}

// DefaultOptions returns the default Tracker configuration:
// every precondition checked.
func DefaultOptions() Options {
	return Options{Unchecked: false}
}

// IDPair holds two genome-copy identities whose order is meaningful.
//
// From ParentIDs, First is the copy treated as "first" for the
// transmission being recorded (the swap already applied); from
// AllocateOffspring, First and Second are the offspring's two copies in
// allocation order.
type IDPair struct {
	First, Second tables.NodeID
}

// Outcome is the tagged result of an external simplification call:
// either nothing happened, or history was compacted and identity
// allocation must resume at a reported value.
type Outcome struct {
	simplified bool
	nextID     tables.NodeID
}

// NoSimplification returns the Outcome for an external call that
// declined to simplify (e.g. too little accumulated history).
func NoSimplification() Outcome {
	return Outcome{}
}

// SimplifiedTo returns the Outcome for a completed simplification,
// carrying the next identity value available after compaction.
func SimplifiedTo(next tables.NodeID) Outcome {
	return Outcome{simplified: true, nextID: next}
}

// DidSimplify reports whether the external call compacted history.
func (o Outcome) DidSimplify() bool { return o.simplified }

// NextID returns the identity value allocation resumes at after
// compaction. Meaningful only when DidSimplify is true.
func (o Outcome) NextID() tables.NodeID { return o.nextID }
