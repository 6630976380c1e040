package ancestry

import (
	"math"

	"github.com/ashmarin/ancestra/tables"
)

// founderTime is the birth time assigned to every founder genome copy.
const founderTime = 0.0

// singlePop is the single population label used while the engine tracks
// one panmictic population.
const singlePop int32 = 0

// Tracker is the owning state object for one simulation run: the node
// and edge tables, the per-generation staging buffer, and the counters
// that anchor identity arithmetic across generations.
//
// Not safe for concurrent use; the simulation driver owns it
// exclusively and calls it in the fixed per-generation sequence
// described in the package documentation.
type Tracker struct {
	nodes  *tables.NodeTable
	edges  *tables.EdgeTable
	staged *tables.EdgeTable

	// offspring holds the identities allocated in the in-progress
	// generation, in allocation order. They double as the next
	// generation's parental window once FinishGeneration runs.
	offspring []tables.NodeID

	generation     int           // current generation counter, starts at 1
	nextID         tables.NodeID // next identity to allocate
	firstParental  tables.NodeID // first identity of the current parental window
	parentCount    int           // genome copies in the current parental window
	lastSpan       int           // identities spanned since the last parental anchor (diagnostic)
	lastSimplified int           // generation at which history was last absorbed

	unchecked bool
}

// New creates a Tracker for a founder population of n diploid
// individuals: 2n founder nodes with identities 0..2n-1, time 0,
// population 0. The identity counter starts at 2n and the first
// parental window is the founders themselves.
//
// Returns ErrNonPositiveSize when n ≤ 0, ErrIDOverflow when 2n does not
// fit the NodeID range.
// Complexity: O(n).
func New(n int, opts Options) (*Tracker, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	if int64(n) > int64(math.MaxInt32)/2 {
		return nil, ErrIDOverflow
	}

	t := &Tracker{
		nodes:         tables.NewNodeTable(2 * n),
		edges:         tables.NewEdgeTable(2 * n),
		staged:        tables.NewEdgeTable(n),
		offspring:     make([]tables.NodeID, 0, 2*n),
		generation:    1,
		nextID:        tables.NodeID(2 * n),
		firstParental: 0,
		parentCount:   2 * n,
		lastSpan:      n,
		unchecked:     opts.Unchecked,
	}
	for i := 0; i < 2*n; i++ {
		t.nodes.Append(tables.NodeID(i), founderTime, singlePop)
	}

	return t, nil
}

// ParentIDs resolves the two genome-copy identities of the parent at
// ordinal position p within the current parental window:
//
//	{firstParental + 2p + s, firstParental + 2p + (1-s)},  s = 1 iff swapped
//
// swapped selects which of the diploid parent's two homologous copies
// is treated as "first" for this transmission, so the driver can model
// recombination strand choice; the returned set of identities is the
// same either way, only the order flips.
//
// Checked mode returns ErrOrdinalOutOfRange when p falls outside the
// parental window. Unchecked mode performs no guard: an out-of-range
// ordinal yields identities belonging to a different individual, or
// past the allocated range, without any report.
// Complexity: O(1).
func (t *Tracker) ParentIDs(ordinal int, swapped bool) (IDPair, error) {
	if !t.unchecked {
		if ordinal < 0 || 2*ordinal+1 >= t.parentCount {
			return IDPair{}, ErrOrdinalOutOfRange
		}
	}
	base := t.firstParental + 2*tables.NodeID(ordinal)
	if swapped {
		return IDPair{First: base + 1, Second: base}, nil
	}

	return IDPair{First: base, Second: base + 1}, nil
}

// AllocateOffspring assigns the next pair of identities to a new
// diploid individual, advances the identity counter by 2, and records
// both identities, in order, in the current generation's offspring
// list. Every individual consumes exactly one pair.
//
// Checked mode returns ErrIDOverflow before the counter can wrap;
// unchecked mode leaves overflow a documented caller obligation.
// Complexity: amortized O(1).
func (t *Tracker) AllocateOffspring() (IDPair, error) {
	if !t.unchecked && t.nextID > math.MaxInt32-2 {
		return IDPair{}, ErrIDOverflow
	}
	pair := IDPair{First: t.nextID, Second: t.nextID + 1}
	t.nextID += 2
	t.offspring = append(t.offspring, pair.First, pair.Second)

	return pair, nil
}

// StageEdge stages one inheritance interval [left, right) from parent
// to child for the in-progress generation. Staged edges become
// permanent at FinishGeneration, in staging order.
//
// Checked mode returns ErrBadInterval unless left < right, and
// ErrUnknownNodeID when parent or child has not been allocated yet.
// Unchecked mode appends exactly what it is given.
// Complexity: amortized O(1).
func (t *Tracker) StageEdge(left, right float64, parent, child tables.NodeID) error {
	if !t.unchecked {
		if left >= right {
			return ErrBadInterval
		}
		if parent < 0 || parent >= t.nextID || child < 0 || child >= t.nextID {
			return ErrUnknownNodeID
		}
	}
	t.staged.Append(left, right, parent, child)

	return nil
}

// StageSpans stages one edge per inherited segment, in segment order —
// the common case of a driver reporting a transmission as the list of
// intervals the child received from one parental copy.
// Complexity: O(len(spans)).
func (t *Tracker) StageSpans(spans []tables.Span, parent, child tables.NodeID) error {
	for _, s := range spans {
		if err := t.StageEdge(s.Left, s.Right, parent, child); err != nil {
			return err
		}
	}

	return nil
}

// FinishGeneration closes the in-progress generation:
//
//  1. appends one node per allocated offspring identity, in allocation
//     order, at the current generation's time;
//  2. flushes staged edges into permanent history, preserving order;
//  3. records the identity span since the last parental anchor;
//  4. anchors the next parental window at this generation's first
//     offspring identity;
//  5. clears the offspring list and the staging buffer;
//  6. advances the generation counter.
//
// Returns ErrNoOffspring when no offspring pair was allocated; this
// guard is active in both modes, since it runs once per generation
// rather than per event.
// Complexity: O(offspring + staged edges).
func (t *Tracker) FinishGeneration() error {
	if len(t.offspring) == 0 {
		return ErrNoOffspring
	}

	birth := float64(t.generation)
	for _, id := range t.offspring {
		t.nodes.Append(id, birth, singlePop)
	}
	t.staged.Drain(t.edges)

	t.lastSpan = int(t.nextID - t.firstParental)
	t.firstParental = t.offspring[0]
	t.parentCount = len(t.offspring)

	t.offspring = t.offspring[:0]
	t.generation++

	return nil
}

// Nodes returns the permanent node table. The returned table is live:
// it reflects, and is mutated by, subsequent tracker operations.
func (t *Tracker) Nodes() *tables.NodeTable { return t.nodes }

// Edges returns the permanent edge table. Live, like Nodes.
func (t *Tracker) Edges() *tables.EdgeTable { return t.edges }

// StagedEdges returns the number of edges staged for the in-progress
// generation.
func (t *Tracker) StagedEdges() int { return t.staged.Len() }

// Generation returns the current generation counter. It starts at 1 and
// advances only via FinishGeneration.
func (t *Tracker) Generation() int { return t.generation }

// NextID returns the next identity the allocator will assign.
func (t *Tracker) NextID() tables.NodeID { return t.nextID }

// FirstParentalIndex returns the first identity of the current parental
// window: the first offspring of the previously finished generation, or
// 0 after construction and after an absorbed simplification.
func (t *Tracker) FirstParentalIndex() tables.NodeID { return t.firstParental }

// ParentCount returns the number of genome copies in the current
// parental window.
func (t *Tracker) ParentCount() int { return t.parentCount }

// LastSpan returns the number of identities spanned between the
// previous parental anchor and the identity counter at the last
// FinishGeneration — a consistency diagnostic, not a control input.
func (t *Tracker) LastSpan() int { return t.lastSpan }

// LastSimplifiedAt returns the generation counter recorded when a
// simplification result was last absorbed, or 0 if none has been.
func (t *Tracker) LastSimplifiedAt() int { return t.lastSimplified }
