// Package adapter turns any value with a display and a debug rendering into an error.
//
// It exposes a single generic type Adapter that implements contract.Error by forwarding
// to the value it holds. The adapter contributes nothing of its own except its name in
// debug output:
//   - Error, String and %v/%s/%q render exactly what the wrapped value renders
//   - GoString and %#v render Adapter(<wrapped %#v>)
//   - Unwrap forwards to the wrapped value's Unwrap when it has one
//   - Equality, ordering and hashing delegate to the wrapped value
//
// Err and As convert to and from a plain error handle. HashOf is the structural hashing
// scheme under which an adapter and its wrapped value hash identically.
package adapter
