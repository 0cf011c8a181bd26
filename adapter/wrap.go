package adapter

import (
	"errors"

	"github.com/next-trace/scg-adapter/contract"
)

// Err wraps v and returns it behind a plain error handle.
func Err[E contract.Value](v E) error {
	return New(v)
}

// As finds the first Adapter[E] in err's chain and returns the value it holds.
//
// Behavior:
//   - nil input => zero value, false
//   - Adapter[E] anywhere in the chain (including via %w) => its Value, true
//   - an adapter over a different type does not match
func As[E contract.Value](err error) (E, bool) {
	var a Adapter[E]
	if errors.As(err, &a) {
		return a.Value, true
	}

	var zero E

	return zero, false
}
