// This file declares the NodeID identity type and the Node, Edge and
// Span row types shared by every container in the package.
package tables

// NodeID identifies one genome copy. Identities are dense non-negative
// integers assigned monotonically by the tracker and compacted by the
// external simplifier; int32 matches the identity space simplifiers
// conventionally expose and keeps overflow detectable.
type NodeID int32

// Node records one genome copy existing at a point in simulated time.
type Node struct {
	// ID is the unique identity of this genome copy.
	ID NodeID

	// Time is the copy's birth time in generations. Forward-time
	// (increasing from 0) while history accumulates; rewritten to the
	// negated-backward convention during the simplification handoff.
	Time float64

	// Population is the copy's population label. Constant 0 for now;
	// reserved for multi-population extensions.
	Population int32
}

// Edge records that the child copy inherited the half-open genomic
// interval [Left, Right) from the parent copy.
type Edge struct {
	// Left is the inclusive left breakpoint of the inherited interval.
	Left float64

	// Right is the exclusive right breakpoint of the inherited interval.
	Right float64

	// Parent is the transmitting genome copy.
	Parent NodeID

	// Child is the inheriting genome copy.
	Child NodeID
}

// Span is a bare half-open genomic interval [Left, Right), used when a
// transmission is reported as a list of inherited segments.
type Span struct {
	Left, Right float64
}
