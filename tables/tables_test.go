package tables_test

import (
	"testing"

	"github.com/ashmarin/ancestra/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNodeTable_AppendPreservesOrder verifies that rows come back in
// exactly the order they were appended, with fields untouched.
func TestNodeTable_AppendPreservesOrder(t *testing.T) {
	nt := tables.NewNodeTable(4)
	nt.Append(0, 0.0, 0)
	nt.Append(1, 0.0, 0)
	nt.Append(2, 1.0, 0)

	require.Equal(t, 3, nt.Len())
	rows := nt.Rows()
	assert.Equal(t, tables.Node{ID: 0, Time: 0.0, Population: 0}, rows[0], "first appended row comes first")
	assert.Equal(t, tables.Node{ID: 1, Time: 0.0, Population: 0}, rows[1], "second appended row is second")
	assert.Equal(t, tables.Node{ID: 2, Time: 1.0, Population: 0}, rows[2], "last appended row is last")
	assert.Equal(t, rows[2], nt.Last(), "Last returns the final row")
}

// TestNodeTable_EmptyAndReset verifies IsEmpty reporting and that Reset
// clears rows without losing the table.
func TestNodeTable_EmptyAndReset(t *testing.T) {
	nt := tables.NewNodeTable(0)
	assert.True(t, nt.IsEmpty(), "fresh table is empty")

	nt.Append(7, 3.0, 0)
	assert.False(t, nt.IsEmpty(), "table with one row is not empty")

	nt.Reset()
	assert.True(t, nt.IsEmpty(), "Reset empties the table")
	assert.Equal(t, 0, nt.Len(), "Reset leaves zero rows")

	// The table remains usable after Reset.
	nt.Append(8, 4.0, 0)
	require.Equal(t, 1, nt.Len())
	assert.Equal(t, tables.NodeID(8), nt.Last().ID, "append after Reset works")
}

// TestNodeTable_RowsIsLiveView verifies that mutations through Rows are
// visible to subsequent reads — the simplification adapter relies on
// rewriting times in place.
func TestNodeTable_RowsIsLiveView(t *testing.T) {
	nt := tables.NewNodeTable(2)
	nt.Append(0, 5.0, 0)
	nt.Append(1, 6.0, 0)

	rows := nt.Rows()
	rows[0].Time = -1.0
	rows[1].Time = 0.0

	assert.Equal(t, -1.0, nt.Rows()[0].Time, "in-place time rewrite is visible")
	assert.Equal(t, 0.0, nt.Last().Time, "Last observes the rewrite")
}

// TestEdgeTable_AppendPreservesOrder verifies edge rows keep their
// insertion order and field values.
func TestEdgeTable_AppendPreservesOrder(t *testing.T) {
	et := tables.NewEdgeTable(2)
	et.Append(0.0, 0.5, 3, 10)
	et.Append(0.5, 1.0, 4, 10)

	require.Equal(t, 2, et.Len())
	assert.Equal(t, tables.Edge{Left: 0.0, Right: 0.5, Parent: 3, Child: 10}, et.Rows()[0])
	assert.Equal(t, tables.Edge{Left: 0.5, Right: 1.0, Parent: 4, Child: 10}, et.Rows()[1])
}

// TestEdgeTable_DrainMovesAllRowsInOrder verifies the staging flush:
// rows land after dst's existing rows, relative order intact, and the
// source is left empty but reusable.
func TestEdgeTable_DrainMovesAllRowsInOrder(t *testing.T) {
	perm := tables.NewEdgeTable(0)
	perm.Append(0.0, 1.0, 0, 2)

	staged := tables.NewEdgeTable(0)
	staged.Append(0.0, 0.25, 1, 3)
	staged.Append(0.25, 1.0, 0, 3)

	staged.Drain(perm)

	require.Equal(t, 3, perm.Len(), "dst gains every staged row")
	assert.Equal(t, tables.NodeID(2), perm.Rows()[0].Child, "pre-existing rows stay in front")
	assert.Equal(t, tables.NodeID(3), perm.Rows()[1].Child, "staged rows follow in order")
	assert.Equal(t, 0.25, perm.Rows()[2].Left, "second staged row keeps its position")
	assert.True(t, staged.IsEmpty(), "source is empty after Drain")

	// The staging buffer is reusable for the next generation.
	staged.Append(0.0, 1.0, 2, 4)
	staged.Drain(perm)
	require.Equal(t, 4, perm.Len())
	assert.Equal(t, tables.NodeID(4), perm.Rows()[3].Child, "second flush appends after the first")
}

// TestEdgeTable_DrainEmptySourceIsNoop verifies draining an empty
// staging buffer leaves the destination untouched.
func TestEdgeTable_DrainEmptySourceIsNoop(t *testing.T) {
	perm := tables.NewEdgeTable(0)
	perm.Append(0.0, 1.0, 0, 1)

	staged := tables.NewEdgeTable(0)
	staged.Drain(perm)

	assert.Equal(t, 1, perm.Len(), "destination unchanged")
	assert.True(t, staged.IsEmpty(), "source still empty")
}
