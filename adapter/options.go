package adapter

import (
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// HashOption configures the hashing scheme used by HashOf.
type HashOption func(*hashstructure.HashOptions)

// WithHasher replaces the default xxhash digest.
// newHasher is called once per HashOf call, so an option can be shared between goroutines.
func WithHasher(newHasher func() hash.Hash64) HashOption {
	return func(o *hashstructure.HashOptions) { o.Hasher = newHasher() }
}

// WithSlicesAsSets hashes slices without regard to element order.
func WithSlicesAsSets() HashOption {
	return func(o *hashstructure.HashOptions) { o.SlicesAsSets = true }
}

// WithZeroNil treats nil pointers like the zero value of their element type.
func WithZeroNil() HashOption {
	return func(o *hashstructure.HashOptions) { o.ZeroNil = true }
}

// WithIgnoreZeroValue skips zero-valued struct fields.
func WithIgnoreZeroValue() HashOption {
	return func(o *hashstructure.HashOptions) { o.IgnoreZeroValue = true }
}

func newHashOptions(opts []HashOption) *hashstructure.HashOptions {
	o := &hashstructure.HashOptions{Hasher: xxhash.New()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
