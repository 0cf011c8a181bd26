// Package adapter provides a generic wrapper that lets display/debug-capable values
// act as errors.
package adapter

import (
	"fmt"
	"io"

	"github.com/next-trace/scg-adapter/contract"
)

// Adapter holds a single value and implements contract.Error on its behalf.
//
// The zero Adapter of an interface type holds a nil value and renders as "<nil>".
// Use Adapter as a value: all methods have value receivers, so calling Error on a
// nil *Adapter stored in an error panics.
type Adapter[E contract.Value] struct {
	Value E
}

// compile-time guarantee that Adapter implements contract.Error and contract.Hashable
var (
	_ contract.Error    = Adapter[contract.Value]{}
	_ contract.Hashable = Adapter[contract.Value]{}
	_ fmt.Formatter     = Adapter[contract.Value]{}
)

// New wraps v. It never fails.
func New[E contract.Value](v E) Adapter[E] {
	return Adapter[E]{Value: v}
}

// ------ display (passthrough)

// Error returns the display rendering of the wrapped value.
func (a Adapter[E]) Error() string { return fmt.Sprint(a.Value) }

// String returns the display rendering of the wrapped value.
func (a Adapter[E]) String() string { return fmt.Sprint(a.Value) }

// ------ debug (named wrapper)

// GoString renders the adapter as Adapter(<debug rendering of the wrapped value>).
func (a Adapter[E]) GoString() string {
	return "Adapter(" + fmt.Sprintf("%#v", a.Value) + ")"
}

// Format hands every verb and flag to the wrapped value, except %#v which
// renders the adapter's own debug form.
func (a Adapter[E]) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('#') {
		_, _ = io.WriteString(s, a.GoString())
		return
	}

	fmt.Fprintf(s, fmt.FormatString(s, verb), a.Value)
}

// ------ standard errors helpers

// Unwrap returns whatever the wrapped value unwraps to, or nil.
func (a Adapter[E]) Unwrap() error {
	if u, ok := any(a.Value).(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}

	return nil
}

// ------ hashing

// Hash returns HashOf the wrapped value with default options.
// hashstructure calls it for adapters nested inside structs, maps and slices.
func (a Adapter[E]) Hash() (uint64, error) { return HashOf(a.Value) }

func (a Adapter[E]) contained() any { return a.Value }
