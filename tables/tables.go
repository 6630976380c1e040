package tables

// NodeTable is an append-only container of Node rows.
// Rows are stored in insertion order; for tracker-produced tables that
// order is also nondecreasing in Time, which lets consumers read the
// maximum time from the final row.
type NodeTable struct {
	rows []Node
}

// NewNodeTable creates an empty NodeTable with capacity for hint rows.
// A non-positive hint allocates nothing up front.
// Complexity: O(1).
func NewNodeTable(hint int) *NodeTable {
	if hint <= 0 {
		return &NodeTable{}
	}

	return &NodeTable{rows: make([]Node, 0, hint)}
}

// Append records one node row. No validation is performed.
// Complexity: amortized O(1).
func (t *NodeTable) Append(id NodeID, time float64, population int32) {
	t.rows = append(t.rows, Node{ID: id, Time: time, Population: population})
}

// Len returns the number of recorded rows. Complexity: O(1).
func (t *NodeTable) Len() int { return len(t.rows) }

// IsEmpty reports whether the table holds no rows. Complexity: O(1).
func (t *NodeTable) IsEmpty() bool { return len(t.rows) == 0 }

// Rows returns the live backing slice in insertion order. Mutating
// elements through it is permitted (the simplification adapter rewrites
// times in place); appending to it is not.
// Complexity: O(1).
func (t *NodeTable) Rows() []Node { return t.rows }

// Last returns the most recently appended row.
// Precondition: the table is non-empty.
// Complexity: O(1).
func (t *NodeTable) Last() Node { return t.rows[len(t.rows)-1] }

// Reset removes every row, retaining allocated capacity for reuse.
// Complexity: O(1).
func (t *NodeTable) Reset() { t.rows = t.rows[:0] }

// EdgeTable is an append-only container of Edge rows. It doubles as the
// per-generation staging buffer: staged rows are moved into a permanent
// table with Drain.
type EdgeTable struct {
	rows []Edge
}

// NewEdgeTable creates an empty EdgeTable with capacity for hint rows.
// A non-positive hint allocates nothing up front.
// Complexity: O(1).
func NewEdgeTable(hint int) *EdgeTable {
	if hint <= 0 {
		return &EdgeTable{}
	}

	return &EdgeTable{rows: make([]Edge, 0, hint)}
}

// Append records one inheritance interval. No validation is performed.
// Complexity: amortized O(1).
func (t *EdgeTable) Append(left, right float64, parent, child NodeID) {
	t.rows = append(t.rows, Edge{Left: left, Right: right, Parent: parent, Child: child})
}

// Len returns the number of recorded rows. Complexity: O(1).
func (t *EdgeTable) Len() int { return len(t.rows) }

// IsEmpty reports whether the table holds no rows. Complexity: O(1).
func (t *EdgeTable) IsEmpty() bool { return len(t.rows) == 0 }

// Rows returns the live backing slice in insertion order.
// Complexity: O(1).
func (t *EdgeTable) Rows() []Edge { return t.rows }

// Drain moves every row into dst, preserving relative order, and leaves
// the receiver empty with its capacity retained. This is the staging
// flush: staged edges become permanent exactly once per generation.
// Complexity: O(n) in the number of drained rows.
func (t *EdgeTable) Drain(dst *EdgeTable) {
	dst.rows = append(dst.rows, t.rows...)
	t.rows = t.rows[:0]
}

// Reset removes every row, retaining allocated capacity for reuse.
// Complexity: O(1).
func (t *EdgeTable) Reset() { t.rows = t.rows[:0] }
