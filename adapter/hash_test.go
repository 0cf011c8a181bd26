package adapter_test

import (
	"hash/fnv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-adapter/adapter"
)

type fixedHash struct{}

func (fixedHash) String() string        { return "fixed" }
func (fixedHash) GoString() string      { return "fixedHash{}" }
func (fixedHash) Hash() (uint64, error) { return 42, nil }

func mustHash(t *testing.T, v any, opts ...adapter.HashOption) uint64 {
	t.Helper()

	h, err := adapter.HashOf(v, opts...)
	require.NoError(t, err)

	return h
}

func TestHash_EqualValuesHashEqual(t *testing.T) {
	t.Parallel()

	h1, err := adapter.New(code(7)).Hash()
	require.NoError(t, err)

	h2, err := adapter.New(code(7)).Hash()
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.Equal(t, mustHash(t, code(7)), h1)
}

func TestHash_AdapterIsTransparent(t *testing.T) {
	t.Parallel()

	for _, v := range []any{code(7), text("x"), tags{"a", "b"}, testStruct{}} {
		var wrapped any
		switch tv := v.(type) {
		case code:
			wrapped = adapter.New(tv)
		case text:
			wrapped = adapter.New(adapter.New(tv))
		case tags:
			wrapped = adapter.New(tv)
		case testStruct:
			wrapped = adapter.New(tv)
		}

		assert.Equal(t, mustHash(t, v), mustHash(t, wrapped), "value %#v", v)
	}
}

func TestHash_OptionsApplyToBoth(t *testing.T) {
	t.Parallel()

	opts := []adapter.HashOption{adapter.WithHasher(fnv.New64a)}
	assert.Equal(t, mustHash(t, code(9), opts...), mustHash(t, adapter.New(code(9)), opts...))

	a := mustHash(t, adapter.New(tags{"a", "b"}), adapter.WithSlicesAsSets())
	b := mustHash(t, tags{"b", "a"}, adapter.WithSlicesAsSets())
	assert.Equal(t, a, b)
}

func TestHash_ValueSuppliedHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(42), mustHash(t, fixedHash{}))
	assert.Equal(t, uint64(42), mustHash(t, adapter.New(fixedHash{})))
}

func TestHash_UnhashableKind(t *testing.T) {
	t.Parallel()

	_, err := adapter.HashOf(func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adapter: hash:")
}

func TestHash_NestedAdapterMatchesValue(t *testing.T) {
	t.Parallel()

	plain := struct {
		Name string
		C    code
	}{Name: "disk", C: code(1)}
	wrapped := struct {
		Name string
		C    adapter.Adapter[code]
	}{Name: "disk", C: adapter.New(code(1))}

	assert.Equal(t, mustHash(t, plain), mustHash(t, wrapped))

	assert.Equal(t,
		mustHash(t, map[string]code{"a": 1, "b": 2}),
		mustHash(t, map[string]adapter.Adapter[code]{"a": adapter.New(code(1)), "b": adapter.New(code(2))}),
	)
	assert.Equal(t,
		mustHash(t, []code{1, 2}),
		mustHash(t, []adapter.Adapter[code]{adapter.New(code(1)), adapter.New(code(2))}),
	)
}

func TestHash_SharedHasherOptionIsConcurrencySafe(t *testing.T) {
	t.Parallel()

	opts := []adapter.HashOption{adapter.WithHasher(fnv.New64a)}
	want := mustHash(t, tags{"a", "b"}, opts...)

	var wg sync.WaitGroup

	got := make([]uint64, 8)
	for i := range got {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()

			got[i], _ = adapter.HashOf(adapter.New(tags{"a", "b"}), opts...)
		}()
	}

	wg.Wait()

	for _, h := range got {
		assert.Equal(t, want, h)
	}
}
