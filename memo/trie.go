package memo

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/bind_ive_go/shared/helper"
)

var _ Table[any] = (*Trie[any])(nil)

// Trie is a bounded table of nested sync.Maps, one level per key.
// It keeps two generations: when the head reaches maxSize entries, the other
// generation is cleared and becomes the head, so at most 2*maxSize entries
// are retained and recent ones survive a rotation.
type Trie[O any] struct {
	mu      sync.Mutex // serializes rotation
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := load[O](t.memos[headIdx].Load(), keys); ok {
		return v, true
	}
	return load[O](t.memos[1-headIdx].Load(), keys)
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if t.size.Load() >= t.maxSize {
		t.rotate()
	}
	traverse(t.memos[t.headIdx.Load()].Load(), keys).Store(leaf{}, value)
	t.size.Add(1)
}

func (t *Trie[O]) rotate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size.Load() < t.maxSize {
		return
	}
	next := 1 - t.headIdx.Load()
	t.memos[next].Store(&sync.Map{})
	t.headIdx.Store(next)
	t.size.Store(0)
}

// leaf is the slot a value occupies inside the map of its last key,
// so values never share a key space with child maps.
type leaf struct{}

func load[O any](root *sync.Map, keys []Key) (O, bool) {
	m, ok := lookup(root, keys)
	if !ok {
		var zero O
		return zero, false
	}
	return helper.GetTypedValueOf2[O](func() (any, bool) {
		return m.Load(leaf{})
	})
}

// lookup walks existing child maps only; a missing level is a miss.
func lookup(targetMap *sync.Map, keys []Key) (*sync.Map, bool) {
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	for _, k := range keys {
		v, ok := targetMap.Load(k)
		if !ok {
			return nil, false
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, true
}

// traverse walks keys, creating child maps as needed, and returns the map
// whose leaf slot holds the value for keys.
func traverse(targetMap *sync.Map, keys []Key) *sync.Map {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}
	for _, k := range keys {
		v, ok := targetMap.Load(k)
		if !ok {
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap
}
