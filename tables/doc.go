// Package tables defines the row types and append-only containers that
// back ARG recording: Node (one genome copy at a point in simulated
// time), Edge (a half-open inheritance interval between a parent and a
// child copy), Span (a bare genomic interval), and the NodeTable /
// EdgeTable containers.
//
// Design rules the containers live by:
//
//   - Appends are pure and amortized O(1). No validation is performed;
//     rows are recorded exactly as given.
//   - Insertion order is significant and preserved by every operation.
//     Downstream consumers correlate identities by position, not only
//     by numeric id.
//   - Nothing is ever removed row-by-row. The only destructive
//     operations are Reset (full clear, capacity retained) and Drain
//     (bulk move of every row into another table, used to flush a
//     staging buffer).
//
// Rows returns the live backing slice rather than a copy: the tables
// sit inside a simulation inner loop, and the simplification adapter
// rewrites node times in place through that view.
package tables
