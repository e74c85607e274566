package memo

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	ristretto "github.com/dgraph-io/ristretto/v2"
)

var _ Table[any] = (*Cache[any])(nil)

type entry[O any] struct {
	keys  []Key
	value O
}

// Cache is a Table on ristretto, keyed by an xxhash digest of the key path.
// Each entry costs 1, so maxSize bounds the number of entries.
//
// Writes are buffered by ristretto and may be dropped under contention;
// call Wait to make preceding Stores visible.
type Cache[O any] struct {
	cache *ristretto.Cache[uint64, entry[O]]
}

func NewCache[O any](maxSize int64) (*Cache[O], error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("maxSize should be greater than 0: %d", maxSize)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[O]]{
		NumCounters:        10 * maxSize, // ristretto recommends 10x the number of entries
		MaxCost:            maxSize,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	return &Cache[O]{cache: cache}, nil
}

func (c *Cache[O]) Load(keys []Key) (O, bool) {
	e, ok := c.cache.Get(digest(keys))
	if !ok || !sameKeys(e.keys, keys) {
		var zero O
		return zero, false
	}
	return e.value, true
}

func (c *Cache[O]) Store(keys []Key, value O) {
	mustComparable(keys)
	c.cache.Set(digest(keys), entry[O]{keys: keys, value: value}, 1)
}

// Wait blocks until buffered Stores are applied.
func (c *Cache[O]) Wait() {
	c.cache.Wait()
}

func (c *Cache[O]) Close() {
	c.cache.Close()
}

func digest(keys []Key) uint64 {
	if len(keys) == 0 {
		panic("digest: empty keys")
	}
	d := xxhash.New()
	for _, k := range keys {
		// the type name keeps 1 and "1" apart
		fmt.Fprintf(d, "%T\x00%v\x00", k, k)
	}
	return d.Sum64()
}

// mustComparable panics on a key a map could not hold, as Trie does.
func mustComparable(keys []Key) {
	for i, k := range keys {
		if k == nil {
			continue
		}
		if t := reflect.TypeOf(k); !t.Comparable() {
			panic(fmt.Sprintf("key %d is not comparable: %v", i, t))
		}
	}
}

// sameKeys rejects digest collisions. Like a map key, a non-comparable Key panics.
func sameKeys(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
