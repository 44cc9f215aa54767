package winnow

import (
	"fmt"
	"sort"
	"strings"
)

// NotSatisfiable is an error returned when a problem is proven to have
// no solution. When infeasibility is discovered during preprocessing it
// carries the variables whose domains were emptied; when it is only
// discovered after exhausting the search tree it is empty.
type NotSatisfiable []Variable

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, v := range e {
		s[i] = string(v)
	}
	return fmt.Sprintf("%s: no admissible value for %s", msg, strings.Join(s, ", "))
}

// Variable values uniquely identify particular unknowns within the
// input to a single call to Solve.
type Variable string

func (v Variable) String() string {
	return string(v)
}

// VariableFromString returns a Variable based on a provided string.
func VariableFromString(s string) Variable {
	return Variable(s)
}

// Value is a single candidate assignment for a Variable. Values are
// integers so that candidate orderings have a natural total order;
// encoders map richer value spaces onto integers.
type Value int

// Constraint implementations limit the circumstances under which a
// particular combination of Variable assignments can appear in a
// solution. The two arities understood by the engine are
// UnaryConstraint and BinaryConstraint.
type Constraint interface {
	String() string
}

// UnaryConstraint restricts the values a single Variable may take.
// Unary constraints are consumed entirely by preprocessing and play no
// role during search.
type UnaryConstraint struct {
	Variable  Variable
	Condition func(value Value) bool
}

func (c UnaryConstraint) String() string {
	return fmt.Sprintf("unary constraint on %s", c.Variable)
}

// BinaryConstraint restricts the value combinations an ordered pair of
// distinct Variables may take. The condition is always invoked with the
// value of Variables[0] first and the value of Variables[1] second;
// constraints are not assumed symmetric.
type BinaryConstraint struct {
	Variables [2]Variable
	Condition func(first, second Value) bool
}

func (c BinaryConstraint) String() string {
	return fmt.Sprintf("binary constraint on (%s, %s)", c.Variables[0], c.Variables[1])
}

// Involves returns true if v is one of the constraint's two variables.
func (c BinaryConstraint) Involves(v Variable) bool {
	return c.Variables[0] == v || c.Variables[1] == v
}

// Other returns the constraint's other endpoint given one of its two
// variables. The second return value is false when v is not involved
// in the constraint at all.
func (c BinaryConstraint) Other(v Variable) (Variable, bool) {
	switch v {
	case c.Variables[0]:
		return c.Variables[1], true
	case c.Variables[1]:
		return c.Variables[0], true
	}
	return "", false
}

// Holds evaluates the constraint's condition against an assignment
// binding both endpoints, respecting the declared variable order. It
// returns true when either endpoint is unbound.
func (c BinaryConstraint) Holds(assignment Assignment) bool {
	first, ok := assignment[c.Variables[0]]
	if !ok {
		return true
	}
	second, ok := assignment[c.Variables[1]]
	if !ok {
		return true
	}
	return c.Condition(first, second)
}

// Assignment is a partial mapping of Variables to Values built up
// during search. Extensions copy rather than mutate so that sibling
// branches of the search tree never observe each other's bindings.
type Assignment map[Variable]Value

// Copy returns an independent copy of the assignment.
func (a Assignment) Copy() Assignment {
	next := make(Assignment, len(a))
	for v, value := range a {
		next[v] = value
	}
	return next
}

// Extend returns a copy of the assignment with one additional binding.
// The receiver is left untouched.
func (a Assignment) Extend(v Variable, value Value) Assignment {
	next := a.Copy()
	next[v] = value
	return next
}

// String renders the assignment with variables in sorted order so that
// traces are stable across runs.
func (a Assignment) String() string {
	vars := make([]string, 0, len(a))
	for v := range a {
		vars = append(vars, string(v))
	}
	sort.Strings(vars)
	s := make([]string, len(vars))
	for i, v := range vars {
		s[i] = fmt.Sprintf("%s=%d", v, a[Variable(v)])
	}
	return "{" + strings.Join(s, ", ") + "}"
}

// Problem is the surface the engine consumes. Implementations are
// built by external encoders; the engine mutates the problem exactly
// once, during preprocessing, and treats it as read-only afterwards.
type Problem interface {
	// Variables returns every variable of the problem in its original
	// declared order. That order breaks ties between heuristics and
	// must be stable for the lifetime of the problem.
	Variables() []Variable

	// Domains returns the problem's live domain storage. Preprocessing
	// writes filtered domains back through this map; search never
	// touches it again.
	Domains() map[Variable]Domain

	// Constraints returns the problem's active constraint list.
	Constraints() []Constraint

	// SetConstraints replaces the active constraint list. Used by
	// preprocessing to strip consumed unary constraints.
	SetConstraints(constraints []Constraint)

	// IsComplete returns true iff every variable has a binding in the
	// assignment.
	IsComplete(assignment Assignment) bool

	// SatisfiesConstraints returns true iff every active constraint
	// holds under the (complete) assignment.
	SatisfiesConstraints(assignment Assignment) bool
}
