package satsolver

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// cell names one admissible (variable, value) pair of the
// finite-domain problem. Each cell gets its own SAT literal.
type cell struct {
	variable winnow.Variable
	value    winnow.Value
}

type inconsistentLitMapping []error

func (inconsistentLitMapping) Error() string {
	return "internal solver failure"
}

// litMapping performs translation between a finite-domain problem and
// the variables that appear in the SAT formula: one literal per cell,
// an exactly-one clause group per problem variable, a blocking clause
// per value rejected by a unary constraint, and a conflict clause per
// value pair rejected by a binary constraint.
type litMapping struct {
	problem winnow.Problem
	lits    map[cell]z.Lit
	cells   map[z.Lit]cell
	clauses []z.Lit
	c       *logic.C
	errs    inconsistentLitMapping
}

// newLitMapping returns a new litMapping with its state initialized
// based on the provided problem. Domains are read through
// problem.Domains() as-is; unary constraints need no prior
// preprocessing because they are encoded as unit blocking clauses.
func newLitMapping(problem winnow.Problem) (*litMapping, error) {
	d := &litMapping{
		problem: problem,
		lits:    map[cell]z.Lit{},
		cells:   map[z.Lit]cell{},
		c:       logic.NewC(),
	}

	domains := problem.Domains()
	for _, v := range problem.Variables() {
		values := domains[v].Values()
		lits := make([]z.Lit, len(values))
		for i, value := range values {
			lits[i] = d.LitOf(v, value)
		}
		if len(lits) == 0 {
			// an empty domain admits no model at all
			d.clauses = append(d.clauses, d.c.F)
			continue
		}
		// the variable takes at least one of its values
		m := lits[0]
		for _, each := range lits[1:] {
			m = d.c.Or(m, each)
		}
		d.clauses = append(d.clauses, m)
		// and at most one
		if len(lits) > 1 {
			d.clauses = append(d.clauses, d.c.CardSort(lits).Leq(1))
		}
	}

	for _, c := range problem.Constraints() {
		switch c := c.(type) {
		case winnow.UnaryConstraint:
			for _, value := range domains[c.Variable].Values() {
				if !c.Condition(value) {
					d.clauses = append(d.clauses, d.LitOf(c.Variable, value).Not())
				}
			}
		case winnow.BinaryConstraint:
			first, second := c.Variables[0], c.Variables[1]
			for _, a := range domains[first].Values() {
				for _, b := range domains[second].Values() {
					if !c.Condition(a, b) {
						d.clauses = append(d.clauses, d.c.Or(d.LitOf(first, a).Not(), d.LitOf(second, b).Not()))
					}
				}
			}
		default:
			d.errs = append(d.errs, fmt.Errorf("unsupported constraint arity: %s", c))
		}
	}

	return d, nil
}

// LitOf returns the positive literal corresponding to the variable
// taking the given value.
func (d *litMapping) LitOf(v winnow.Variable, value winnow.Value) z.Lit {
	key := cell{variable: v, value: value}
	if m, ok := d.lits[key]; ok {
		return m
	}
	m := d.c.Lit()
	d.lits[key] = m
	d.cells[m] = key
	return m
}

// Error returns a single error value that is an aggregation of all
// errors encountered during a litMapping's lifetime, or nil if there
// have been none. A non-nil return value likely indicates a problem
// with the encoder or the constraint implementations.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}

// AddConstraints teaches the constraints encoded in the embedded
// circuit to the solver g.
func (d *litMapping) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
}

// AssumeConstraints assumes that every encoded clause holds.
func (d *litMapping) AssumeConstraints(g inter.S) {
	for _, m := range d.clauses {
		g.Assume(m)
	}
}

// AssignmentOf reconstructs the finite-domain assignment from a
// satisfying model held by g.
func (d *litMapping) AssignmentOf(g inter.S) winnow.Assignment {
	assignment := winnow.Assignment{}
	for key, m := range d.lits {
		if g.Value(m) {
			assignment[key.variable] = key.value
		}
	}
	return assignment
}
