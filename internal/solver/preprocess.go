package solver

import (
	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// oneConsistency applies every unary constraint to the problem's
// domains and strips the spent unary constraints from the active
// constraint list. It returns false, along with the variables whose
// domains were emptied, if the problem is proven unsolvable before any
// assignment is made.
//
// Every unary constraint is processed even after one has emptied a
// domain, so the surviving constraint list is free of unary
// constraints regardless of outcome.
func oneConsistency(problem winnow.Problem) (bool, []winnow.Variable) {
	domains := problem.Domains()
	remaining := make([]winnow.Constraint, 0, len(problem.Constraints()))
	var emptied []winnow.Variable
	seen := map[winnow.Variable]struct{}{}

	for _, c := range problem.Constraints() {
		unary, ok := c.(winnow.UnaryConstraint)
		if !ok {
			remaining = append(remaining, c)
			continue
		}
		filtered := winnow.Domain{}
		for value := range domains[unary.Variable] {
			if unary.Condition(value) {
				filtered.Add(value)
			}
		}
		if filtered.Empty() {
			if _, dup := seen[unary.Variable]; !dup {
				seen[unary.Variable] = struct{}{}
				emptied = append(emptied, unary.Variable)
			}
		}
		domains[unary.Variable] = filtered
	}

	problem.SetConstraints(remaining)
	return len(emptied) == 0, emptied
}
