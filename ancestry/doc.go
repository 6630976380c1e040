// Package ancestry implements the bookkeeping engine a forward-time
// population simulation uses to record its Ancestral Recombination
// Graph: identity allocation for genome copies, per-generation node and
// edge accumulation, and the two-phase handshake with an external ARG
// simplifier.
//
// One Tracker instance owns all state for one simulation run. The
// driver's per-generation protocol is fixed:
//
//  1. For every new individual: AllocateOffspring once, resolve the
//     chosen parents' copies with ParentIDs, and stage one edge per
//     inherited interval (StageEdge, StageSpans, or
//     StageRecombination for a raw breakpoint list).
//  2. FinishGeneration — materializes the offspring as nodes, flushes
//     staged edges into permanent history, and rolls the parental
//     window forward.
//  3. Periodically, at a cadence the driver chooses: hand accumulated
//     history to the external simplifier via Simplify, or run the two
//     phases by hand (PrepareForSimplification, external call,
//     AbsorbSimplification).
//
// Identity arithmetic:
//
//	founders            0 .. 2N-1            (time 0)
//	generation g        contiguous even-length block starting at the
//	                    identity counter's value when g began
//	parent ordinal p    copies firstParental+2p and firstParental+2p+1
//
// The order nodes and edges are appended is part of the contract: the
// external simplifier correlates sample identities positionally, so the
// tables are handed over exactly as generated.
//
// All operations are synchronous and the Tracker is not safe for
// concurrent use; the simulation driver owns it exclusively.
//
// Errors:
//
//	ErrNonPositiveSize   - founder population size ≤ 0.
//	ErrIDOverflow        - identity counter would exceed the NodeID range.
//	ErrOrdinalOutOfRange - parent ordinal outside the parental window.
//	ErrUnknownNodeID     - staged edge references an unallocated identity.
//	ErrBadInterval       - staged edge interval not half-open left < right.
//	ErrNoOffspring       - generation finished with no offspring.
//
// The last four guards are disabled by Options.Unchecked for drivers
// that already guarantee their inputs (see Options).
package ancestry
