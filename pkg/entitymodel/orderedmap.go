package entitymodel

import (
	"cmp"
	"encoding/json"
	"sort"
)

// orderedMap is a map that keeps its keys in ascending order,
// generalizing the teacher's map+order-slice pattern
// (datamodel.BasicEndpoint's clusters/order pair) with Go generics so
// every descriptor kind in ConfigurationTree shares one implementation
// instead of fourteen hand-copied ones. Ascending-key order is what
// ModelAccessor's traversal (spec.md §4.8) requires, regardless of the
// order descriptors were set in — relevant when a cached tree is loaded
// out of discovery order.
//
// Callers are expected to hold the owning entity's SharedLock for any
// mutation; orderedMap itself does no locking (spec.md §5: the
// SharedLock is the single serializer, internal atomics/locks are
// unnecessary).
type orderedMap[K cmp.Ordered, V any] struct {
	m     map[K]V
	order []K
}

func newOrderedMap[K cmp.Ordered, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{m: make(map[K]V)}
}

// Set inserts or replaces the value at k, keeping order sorted.
func (o *orderedMap[K, V]) Set(k K, v V) {
	if _, exists := o.m[k]; !exists {
		i := sort.Search(len(o.order), func(i int) bool { return o.order[i] >= k })
		o.order = append(o.order, k)
		copy(o.order[i+1:], o.order[i:])
		o.order[i] = k
	}
	o.m[k] = v
}

// Get returns the value at k and whether it was present.
func (o *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

// Len returns the number of entries.
func (o *orderedMap[K, V]) Len() int {
	return len(o.m)
}

// Keys returns the keys in ascending order.
func (o *orderedMap[K, V]) Keys() []K {
	return append([]K{}, o.order...)
}

// ForEach calls fn for every entry in ascending key order.
func (o *orderedMap[K, V]) ForEach(fn func(K, V)) {
	for _, k := range o.order {
		fn(k, o.m[k])
	}
}

// orderedMapEntry is the on-the-wire shape of one orderedMap entry:
// its index alongside the value, since JSON arrays don't preserve a
// Go map's key type on their own.
type orderedMapEntry[K cmp.Ordered, V any] struct {
	Index K `json:"index"`
	Value V `json:"value"`
}

// MarshalJSON renders the map as an array of {index, value} entries in
// ascending key order, so the cache document (spec.md §4.7) carries
// the whole tree losslessly; the unexported m/order fields would
// otherwise marshal to an empty object.
func (o *orderedMap[K, V]) MarshalJSON() ([]byte, error) {
	entries := make([]orderedMapEntry[K, V], 0, len(o.order))
	for _, k := range o.order {
		entries = append(entries, orderedMapEntry[K, V]{Index: k, Value: o.m[k]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON rebuilds the map and its ascending order from the
// {index, value} array MarshalJSON produced.
func (o *orderedMap[K, V]) UnmarshalJSON(data []byte) error {
	var entries []orderedMapEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	o.m = make(map[K]V, len(entries))
	o.order = nil
	for _, e := range entries {
		o.Set(e.Index, e.Value)
	}
	return nil
}

// getNode looks up idx in om, translating a miss into
// ErrInvalidDescriptorIndex per spec.md §4.2's accessor contract.
func getNode[K cmp.Ordered, V any](om *orderedMap[K, V], idx K) (V, error) {
	v, ok := om.Get(idx)
	if !ok {
		var zero V
		return zero, ErrInvalidDescriptorIndex
	}
	return v, nil
}
