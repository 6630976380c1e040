// Package ancestra records the genealogical history produced by a
// forward-time population simulation — an Ancestral Recombination Graph
// (ARG) built one generation at a time.
//
// 🧬 What is ancestra?
//
//	A small, allocation-lean bookkeeping library that brings together:
//		• Append-only node & edge tables with positional-order guarantees
//		• Deterministic identity allocation across generations
//		• A once-per-generation lifecycle that materializes offspring
//		• A two-phase handshake with an external ARG simplifier
//
// ✨ Why choose ancestra?
//
//   - Inner-loop friendly – pure appends and integer arithmetic, no
//     validation overhead unless you ask for it
//   - Explicit contracts – checked mode surfaces every precondition as
//     a sentinel error; unchecked mode documents them instead
//   - Pure Go – no cgo, no hidden deps
//   - Simplifier-agnostic – bring any tool that speaks nodes, edges
//     and samples; ancestra handles the time-convention flip
//
// Everything is organized under two subpackages:
//
//	tables/   — Node, Edge, Span row types and the append-only
//	            NodeTable / EdgeTable containers
//	ancestry/ — the Tracker: identity allocation, edge staging, the
//	            generation lifecycle, and the simplification adapter
//
// Quick ASCII sketch of one recorded transmission:
//
//	parent copies: 2p, 2p+1          child copy: c
//
//	    2p ──[0.0, b)──▶ c
//	  2p+1 ──[b, 1.0)──▶ c
//
// one crossover at b splits the child's genome between the parent's
// two homologous copies; ancestra records the two edges and moves on.
//
// Dive into the ancestry package docs for the full lifecycle and the
// simplification handshake.
//
//	go get github.com/ashmarin/ancestra
package ancestra
