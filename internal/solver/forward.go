package solver

import (
	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// forwardCheck propagates a fresh assignment across every binary
// constraint touching the assigned variable, shrinking the domains of
// still-unassigned neighbors in place. It returns false as soon as any
// neighbor's domain would become empty; the emptied result is not
// written back, so a false return leaves domains with every entry
// non-empty.
//
// Constraints not touching the assigned variable, and neighbors absent
// from domains (already assigned), are skipped without side effects.
func forwardCheck(problem winnow.Problem, assigned winnow.Variable, value winnow.Value, domains map[winnow.Variable]winnow.Domain) bool {
	for _, c := range problem.Constraints() {
		binary, ok := c.(winnow.BinaryConstraint)
		if !ok {
			continue
		}
		neighbor, ok := binary.Other(assigned)
		if !ok {
			continue
		}
		neighborDomain, ok := domains[neighbor]
		if !ok {
			continue
		}
		filtered := winnow.Domain{}
		for neighborValue := range neighborDomain {
			if holdsWith(binary, assigned, value, neighborValue) {
				filtered.Add(neighborValue)
			}
		}
		if filtered.Empty() {
			return false
		}
		domains[neighbor] = filtered
	}
	return true
}
