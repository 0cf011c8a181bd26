// Package contract exposes the formatting capabilities an adapted value must have
// and the error surface the adapter provides in return.
//
// Display maps onto fmt.Stringer and Debug onto fmt.GoStringer, so any type that
// already prints nicely with %v and %#v qualifies without extra code.
package contract

import "cmp"

// Display renders a value as human-readable text (%v, %s).
type Display interface {
	String() string
}

// Debug renders a value as diagnostic text (%#v).
type Debug interface {
	GoString() string
}

// Value is anything with both a display and a debug rendering.
type Value interface {
	Display
	Debug
}

// Error is the error capability: the built-in error plus both renderings.
type Error interface {
	error
	Display
	Debug
}

// Comparable constrains values that support ==.
type Comparable interface {
	Value
	comparable
}

// Ordered constrains values whose underlying type is cmp.Ordered.
type Ordered interface {
	Value
	cmp.Ordered
}

// Cloner constrains values that know how to duplicate themselves.
type Cloner[E any] interface {
	Value
	Clone() E
}

// Hashable overrides structural hashing for a value.
// It has the same shape as hashstructure.Hashable so both are honoured.
type Hashable interface {
	Hash() (uint64, error)
}
