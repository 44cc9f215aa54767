package input

import (
	"fmt"
	"strings"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

var _ winnow.Problem = &SimpleProblem{}

// SimpleProblem is a concrete winnow.Problem backed by plain slices and
// maps. Instances are produced by a ProblemBuilder and handed to the
// engine; after preprocessing the engine treats them as read-only.
type SimpleProblem struct {
	variables   []winnow.Variable
	domains     map[winnow.Variable]winnow.Domain
	constraints []winnow.Constraint
}

func (p *SimpleProblem) Variables() []winnow.Variable {
	return p.variables
}

func (p *SimpleProblem) Domains() map[winnow.Variable]winnow.Domain {
	return p.domains
}

func (p *SimpleProblem) Constraints() []winnow.Constraint {
	return p.constraints
}

func (p *SimpleProblem) SetConstraints(constraints []winnow.Constraint) {
	p.constraints = constraints
}

func (p *SimpleProblem) IsComplete(assignment winnow.Assignment) bool {
	for _, v := range p.variables {
		if _, ok := assignment[v]; !ok {
			return false
		}
	}
	return true
}

func (p *SimpleProblem) SatisfiesConstraints(assignment winnow.Assignment) bool {
	for _, c := range p.constraints {
		switch c := c.(type) {
		case winnow.UnaryConstraint:
			if value, ok := assignment[c.Variable]; ok && !c.Condition(value) {
				return false
			}
		case winnow.BinaryConstraint:
			if !c.Holds(assignment) {
				return false
			}
		}
	}
	return true
}

// DuplicateVariable is reported by a ProblemBuilder when the same
// variable is declared more than once.
type DuplicateVariable winnow.Variable

func (e DuplicateVariable) Error() string {
	return fmt.Sprintf("duplicate variable %q in input", winnow.Variable(e))
}

type malformedProblem []error

func (e malformedProblem) Error() string {
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("%d problem build errors: %s", len(e), strings.Join(s, ", "))
}

// ProblemBuilder accumulates variables, domains, and constraints and
// produces an immutable SimpleProblem. Construction errors are
// aggregated and reported once by Problem, so call sites can chain
// declarations without checking each one.
type ProblemBuilder struct {
	variables   []winnow.Variable
	domains     map[winnow.Variable]winnow.Domain
	constraints []winnow.Constraint
	errs        []error
}

func NewProblemBuilder() *ProblemBuilder {
	return &ProblemBuilder{
		domains: map[winnow.Variable]winnow.Domain{},
	}
}

// Variable declares a variable with its initial domain. Declaration
// order is significant: it is the tie-break order used by the engine's
// variable selection heuristic.
func (b *ProblemBuilder) Variable(v winnow.Variable, domain winnow.Domain) *ProblemBuilder {
	if _, ok := b.domains[v]; ok {
		b.errs = append(b.errs, DuplicateVariable(v))
		return b
	}
	b.variables = append(b.variables, v)
	b.domains[v] = domain
	return b
}

// Constraint adds constraints to the problem under construction.
func (b *ProblemBuilder) Constraint(constraints ...winnow.Constraint) *ProblemBuilder {
	b.constraints = append(b.constraints, constraints...)
	return b
}

// Problem validates the accumulated declarations and returns the
// finished problem. Constraints referencing undeclared variables and
// binary constraints whose endpoints coincide are build errors.
func (b *ProblemBuilder) Problem() (*SimpleProblem, error) {
	errs := b.errs
	for _, c := range b.constraints {
		switch c := c.(type) {
		case winnow.UnaryConstraint:
			if _, ok := b.domains[c.Variable]; !ok {
				errs = append(errs, fmt.Errorf("unary constraint references undeclared variable %q", c.Variable))
			}
		case winnow.BinaryConstraint:
			if c.Variables[0] == c.Variables[1] {
				errs = append(errs, fmt.Errorf("binary constraint endpoints coincide on %q", c.Variables[0]))
			}
			for _, v := range c.Variables {
				if _, ok := b.domains[v]; !ok {
					errs = append(errs, fmt.Errorf("binary constraint references undeclared variable %q", v))
				}
			}
		default:
			errs = append(errs, fmt.Errorf("unsupported constraint arity: %s", c))
		}
	}
	if len(errs) > 0 {
		return nil, malformedProblem(errs)
	}

	domains := make(map[winnow.Variable]winnow.Domain, len(b.domains))
	for v, d := range b.domains {
		domains[v] = d.Copy()
	}
	return &SimpleProblem{
		variables:   append([]winnow.Variable(nil), b.variables...),
		domains:     domains,
		constraints: append([]winnow.Constraint(nil), b.constraints...),
	}, nil
}
