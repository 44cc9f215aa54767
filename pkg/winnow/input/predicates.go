package input

import (
	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// Predicate returns true if a value should be admitted. Predicates are
// the condition half of unary constraints; encoders compose them with
// the combinators below.
type Predicate func(value winnow.Value) bool

func And(predicates ...Predicate) Predicate {
	return func(value winnow.Value) bool {
		eval := true
		for _, predicate := range predicates {
			eval = eval && predicate(value)
			if !eval {
				return false
			}
		}
		return eval
	}
}

func Or(predicates ...Predicate) Predicate {
	return func(value winnow.Value) bool {
		eval := false
		for _, predicate := range predicates {
			eval = eval || predicate(value)
			if eval {
				return true
			}
		}
		return eval
	}
}

func Not(predicate Predicate) Predicate {
	return func(value winnow.Value) bool {
		return !predicate(value)
	}
}

// In admits only the listed values.
func In(values ...winnow.Value) Predicate {
	admitted := winnow.NewDomain(values...)
	return func(value winnow.Value) bool {
		return admitted.Has(value)
	}
}
