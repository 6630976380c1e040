package ancestry

import "github.com/ashmarin/ancestra/tables"

// Simplifier is the external ARG-compaction tool seen at its interface:
// it receives the accumulated nodes and edges (times already converted
// to its backward convention) together with the identities to preserve
// as samples, and reports whether it compacted history and, if so,
// where identity allocation must resume.
//
// Order matters: nodes and edges arrive exactly as generated, and the
// simplifier correlates sample identities with their intended meaning
// positionally. An error is fatal to the handshake — nothing is
// absorbed and retry policy belongs to the driver.
type Simplifier interface {
	Simplify(nodes []tables.Node, edges []tables.Edge, samples []tables.NodeID) (Outcome, error)
}

// PrepareForSimplification converts every stored node time from the
// forward convention (generations since the start, increasing) to the
// backward convention external simplifiers expect: with max the most
// recent birth time, each time t becomes -(t - max), i.e. generations
// before the present, negated. Nodes are appended in nondecreasing time
// order, so max is read from the final row.
//
// A no-op when the node table is empty. Counters are untouched: the
// driver's own bookkeeping survives the handoff. Call exactly once per
// handshake — running it twice without an intervening absorption
// re-rebases already-converted times.
// Complexity: O(nodes).
func (t *Tracker) PrepareForSimplification() {
	if t.nodes.IsEmpty() {
		return
	}

	maxTime := t.nodes.Last().Time
	rows := t.nodes.Rows()
	for i := range rows {
		rows[i].Time = -(rows[i].Time - maxTime)
	}
}

// SampleIDs returns the identities the external simplifier must
// preserve as samples: the current parental window, i.e. the most
// recently finished generation's offspring. The window is contiguous
// ascending by construction, so it is rebuilt from the parental anchor
// rather than retained per allocation.
// Complexity: O(parentCount).
func (t *Tracker) SampleIDs() []tables.NodeID {
	ids := make([]tables.NodeID, t.parentCount)
	for i := range ids {
		ids[i] = t.firstParental + tables.NodeID(i)
	}

	return ids
}

// AbsorbSimplification absorbs the external simplifier's result.
//
// When o.DidSimplify() is false this is a no-op — accumulated history
// remains valid for the simplifier but its times are still in the
// backward convention; the driver must not call
// PrepareForSimplification again without an intervening generation.
//
// When true, the external tool now owns the compacted graph and this
// engine starts a fresh epoch: the current generation counter is
// recorded as the last-simplification marker, identity allocation
// resumes at o.NextID(), the parental anchor returns to 0 (the
// simplifier renumbers the samples to the front of its compact identity
// space, preserving their count and order), and both tables are reset.
// Complexity: O(1).
func (t *Tracker) AbsorbSimplification(o Outcome) {
	if !o.DidSimplify() {
		return
	}

	t.lastSimplified = t.generation
	t.nextID = o.NextID()
	t.firstParental = 0
	t.nodes.Reset()
	t.edges.Reset()
}

// Simplify runs the full two-phase handshake around s: prepare the
// time convention, invoke the external call with the node table, edge
// table and sample identities, then absorb its result. On an external
// error the result is not absorbed and the error is returned as-is.
//
// Equivalent to the manual sequence PrepareForSimplification → external
// call → AbsorbSimplification, packaged for drivers that do not need to
// interleave their own bookkeeping between the phases.
func (t *Tracker) Simplify(s Simplifier) (Outcome, error) {
	t.PrepareForSimplification()

	outcome, err := s.Simplify(t.nodes.Rows(), t.edges.Rows(), t.SampleIDs())
	if err != nil {
		return Outcome{}, err
	}
	t.AbsorbSimplification(outcome)

	return outcome, nil
}
