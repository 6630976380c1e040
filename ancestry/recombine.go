package ancestry

import "github.com/ashmarin/ancestra/tables"

// genomeEnd is the right boundary of the unit genome the engine
// records over; breakpoints at or beyond it cap the final segment.
const genomeEnd = 1.0

// SplitBreakpoints turns a sorted, duplicate-free meiosis breakpoint
// list over the unit genome into the two segment lists contributed by
// the parent's first and second copies. Segments alternate starting
// with the first copy:
//
//	breaks = [b1, b2, ...]  →  first:  [0,b1) [b2,b3) ...
//	                           second: [b1,b2) [b3,b4) ...
//
// A final breakpoint ≥ 1.0 acts as a cap: the segment it would open is
// truncated at the genome end instead (drivers conventionally append a
// sentinel breakpoint after the last real crossover). A nil or empty
// list yields a single whole-genome segment from the first copy.
//
// The engine does not validate breakpoint order or biology; it splits
// what it is told.
// Complexity: O(len(breaks)).
func SplitBreakpoints(breaks []float64) (first, second []tables.Span) {
	if len(breaks) == 0 {
		return []tables.Span{{Left: 0.0, Right: genomeEnd}}, nil
	}

	first = append(first, tables.Span{Left: 0.0, Right: breaks[0]})
	for i := 1; i < len(breaks); i++ {
		right := genomeEnd
		if i < len(breaks)-1 {
			right = breaks[i]
		}
		s := tables.Span{Left: breaks[i-1], Right: right}
		if i%2 == 0 {
			first = append(first, s)
		} else {
			second = append(second, s)
		}
	}

	return first, second
}

// StageRecombination stages the edges for one complete transmission
// from the parent copies in parents to child, given the meiosis
// breakpoint list. With no breakpoints the child inherits the whole
// genome from parents.First; otherwise the split segments are staged
// against parents.First and parents.Second respectively, first copy's
// segments first.
//
// Whether parents.First is the swapped copy was already decided at
// ParentIDs; this function records, it does not model Mendel.
// Complexity: O(len(breaks)).
func (t *Tracker) StageRecombination(breaks []float64, parents IDPair, child tables.NodeID) error {
	first, second := SplitBreakpoints(breaks)
	if err := t.StageSpans(first, parents.First, child); err != nil {
		return err
	}

	return t.StageSpans(second, parents.Second, child)
}
