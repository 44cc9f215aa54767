package winnow

// SearchPosition describes one assignment node actually reached by the
// backtracking recursion. Branches discarded by forward checking before
// recursing are never reported.
type SearchPosition interface {
	Assignment() Assignment
	Depth() int
}

// Tracer is notified once per visited search node, immediately before
// the node's completeness test.
type Tracer interface {
	Trace(p SearchPosition)
}
