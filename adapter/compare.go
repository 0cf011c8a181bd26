package adapter

import (
	"cmp"

	"github.com/next-trace/scg-adapter/contract"
)

// Adapters have no identity of their own: every helper here looks only at Value.
// For comparable E the == operator on Adapter[E] gives the same answer as Equal.

// Equal reports whether the wrapped values are equal.
func Equal[E contract.Comparable](a, b Adapter[E]) bool { return a.Value == b.Value }

// EqualFunc reports whether eq considers the wrapped values equal.
func EqualFunc[E contract.Value](a, b Adapter[E], eq func(E, E) bool) bool {
	return eq(a.Value, b.Value)
}

// Compare orders two adapters the way cmp.Compare orders their values.
func Compare[E contract.Ordered](a, b Adapter[E]) int { return cmp.Compare(a.Value, b.Value) }

// Less reports whether a's value sorts before b's.
func Less[E contract.Ordered](a, b Adapter[E]) bool { return cmp.Less(a.Value, b.Value) }

// CompareFunc orders two adapters with compare applied to their values.
func CompareFunc[E contract.Value](a, b Adapter[E], compare func(E, E) int) int {
	return compare(a.Value, b.Value)
}

// Clone duplicates the adapter by cloning its value.
// Values without a Clone method are only copied by assignment.
func Clone[E contract.Cloner[E]](a Adapter[E]) Adapter[E] {
	return Adapter[E]{Value: a.Value.Clone()}
}
