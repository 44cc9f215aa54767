package solver

import (
	"sort"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// minimumRemainingValues selects the unassigned variable with the
// smallest live domain. Ties are broken by the variable's position in
// the problem's original ordering, which is why iteration runs over
// problem.Variables() rather than the domains map. The caller
// guarantees domains is non-empty.
func minimumRemainingValues(problem winnow.Problem, domains map[winnow.Variable]winnow.Domain) winnow.Variable {
	var best winnow.Variable
	bestSize := -1
	for _, v := range problem.Variables() {
		domain, ok := domains[v]
		if !ok {
			continue
		}
		if bestSize < 0 || domain.Len() < bestSize {
			best, bestSize = v, domain.Len()
		}
	}
	return best
}

// leastRestrainingValues ranks the candidate values of the variable
// about to be branched on. A value's restraint score is the number of
// (binary constraint, unassigned neighbor, neighbor value)
// combinations it would eliminate; lower scores sort first, with ties
// broken by ascending value. The function is a pure ranking: neither
// the problem nor the domains are mutated.
func leastRestrainingValues(problem winnow.Problem, variable winnow.Variable, domains map[winnow.Variable]winnow.Domain) []winnow.Value {
	values := domains[variable].Values()
	restraint := make(map[winnow.Value]int, len(values))

	for _, value := range values {
		eliminated := 0
		for _, c := range problem.Constraints() {
			binary, ok := c.(winnow.BinaryConstraint)
			if !ok {
				continue
			}
			neighbor, ok := binary.Other(variable)
			if !ok {
				continue
			}
			neighborDomain, ok := domains[neighbor]
			if !ok {
				// already assigned
				continue
			}
			for neighborValue := range neighborDomain {
				if !holdsWith(binary, variable, value, neighborValue) {
					eliminated++
				}
			}
		}
		restraint[value] = eliminated
	}

	sort.Slice(values, func(i, j int) bool {
		if restraint[values[i]] != restraint[values[j]] {
			return restraint[values[i]] < restraint[values[j]]
		}
		return values[i] < values[j]
	})
	return values
}

// holdsWith evaluates a binary constraint with subject bound to value
// and the constraint's other endpoint bound to otherValue, respecting
// the constraint's declared argument order.
func holdsWith(binary winnow.BinaryConstraint, subject winnow.Variable, value, otherValue winnow.Value) bool {
	if binary.Variables[0] == subject {
		return binary.Condition(value, otherValue)
	}
	return binary.Condition(otherValue, value)
}
