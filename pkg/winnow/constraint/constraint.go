package constraint

import (
	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// Unary returns a Constraint restricting the values a single variable
// may take. Unary constraints are fully applied by preprocessing
// before search begins.
func Unary(v winnow.Variable, condition func(value winnow.Value) bool) winnow.Constraint {
	return winnow.UnaryConstraint{
		Variable:  v,
		Condition: condition,
	}
}

// Binary returns a Constraint over an ordered pair of distinct
// variables. The condition is always invoked with first's value in the
// first position and second's value in the second.
func Binary(first, second winnow.Variable, condition func(first, second winnow.Value) bool) winnow.Constraint {
	return winnow.BinaryConstraint{
		Variables: [2]winnow.Variable{first, second},
		Condition: condition,
	}
}

// Pin returns a Constraint that will permit only the given value for v.
func Pin(v winnow.Variable, value winnow.Value) winnow.Constraint {
	return Unary(v, func(candidate winnow.Value) bool {
		return candidate == value
	})
}

// Exclude returns a Constraint that will reject the given value for v.
// Callers may also decide to omit the value from v's domain rather
// than apply such a Constraint.
func Exclude(v winnow.Variable, value winnow.Value) winnow.Constraint {
	return Unary(v, func(candidate winnow.Value) bool {
		return candidate != value
	})
}

// NotEqual returns a Constraint forcing two variables to take
// different values.
func NotEqual(first, second winnow.Variable) winnow.Constraint {
	return Binary(first, second, func(a, b winnow.Value) bool {
		return a != b
	})
}

// AllDifferent returns the pairwise NotEqual constraints forcing every
// listed variable to take a distinct value. This is the binary
// reduction of the n-ary all-different relation.
func AllDifferent(vars ...winnow.Variable) []winnow.Constraint {
	var constraints []winnow.Constraint
	for i := range vars {
		for j := i + 1; j < len(vars); j++ {
			constraints = append(constraints, NotEqual(vars[i], vars[j]))
		}
	}
	return constraints
}
