package adapter

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/next-trace/scg-adapter/contract"
)

// wrapper is implemented by every Adapter instantiation.
type wrapper interface {
	contained() any
}

// HashOf computes the structural hash of v.
//
// Top-level adapters are peeled off first, so HashOf(New(v)) == HashOf(v) for any options.
// Values implementing contract.Hashable supply their own hash; everything else goes
// through hashstructure (FormatV2) with an xxhash digest unless WithHasher says otherwise.
// Kinds hashstructure cannot hash (funcs, channels) return an error.
//
// Adapters nested in fields, map values or slice elements hash through Adapter.Hash,
// which always uses the default options. With defaults a nested adapter hashes
// exactly like its value. With custom options only the top level follows them.
// Struct type names are part of the hash, so two differently named structs never match.
func HashOf(v any, opts ...HashOption) (uint64, error) {
	for {
		w, ok := v.(wrapper)
		if !ok {
			break
		}

		v = w.contained()
	}

	if h, ok := v.(contract.Hashable); ok {
		return h.Hash()
	}

	sum, err := hashstructure.Hash(v, hashstructure.FormatV2, newHashOptions(opts))
	if err != nil {
		return 0, fmt.Errorf("adapter: hash: %w", err)
	}

	return sum, nil
}
