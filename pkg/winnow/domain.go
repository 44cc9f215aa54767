package winnow

import (
	"fmt"
	"sort"
	"strings"
)

// Domain is the set of values still considered legal for a variable.
// Domains only ever shrink over the course of a run; emptiness is a
// terminal failure signal for the branch that produced it.
type Domain map[Value]struct{}

// NewDomain returns a Domain holding the given values.
func NewDomain(values ...Value) Domain {
	d := make(Domain, len(values))
	for _, v := range values {
		d[v] = struct{}{}
	}
	return d
}

// Range returns a Domain holding every value in [lo, hi).
func Range(lo, hi Value) Domain {
	d := make(Domain, hi-lo)
	for v := lo; v < hi; v++ {
		d[v] = struct{}{}
	}
	return d
}

// Has returns true if v is still admissible.
func (d Domain) Has(v Value) bool {
	_, ok := d[v]
	return ok
}

// Add marks v as admissible.
func (d Domain) Add(v Value) {
	d[v] = struct{}{}
}

// Remove marks v as inadmissible.
func (d Domain) Remove(v Value) {
	delete(d, v)
}

// Len returns the number of admissible values.
func (d Domain) Len() int {
	return len(d)
}

// Empty returns true if no admissible values remain.
func (d Domain) Empty() bool {
	return len(d) == 0
}

// Copy returns an independent copy of the domain.
func (d Domain) Copy() Domain {
	next := make(Domain, len(d))
	for v := range d {
		next[v] = struct{}{}
	}
	return next
}

// Values returns the admissible values in ascending order.
func (d Domain) Values() []Value {
	values := make([]Value, 0, len(d))
	for v := range d {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func (d Domain) String() string {
	values := d.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%d", v)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
