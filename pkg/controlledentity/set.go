package controlledentity

import "github.com/klokik/avdecc/pkg/lock"

// Set is the entity collection one controller manages: every
// ControlledEntity it is enumerating or has enumerated, sharing one
// SharedLock (spec.md §5). It is a typed wrapper over lock.Registry for
// callers that always deal in *ControlledEntity and don't want to
// assert the lock.Entity interface back down themselves.
type Set struct {
	registry *lock.Registry
}

// NewSet creates an empty Set backed by a freshly allocated SharedLock.
func NewSet() *Set {
	return NewSetWithLock(lock.New())
}

// NewSetWithLock creates an empty Set backed by an existing SharedLock,
// e.g. one already shared with entities constructed elsewhere.
func NewSetWithLock(shared *lock.SharedLock) *Set {
	return &Set{registry: lock.NewRegistry(shared)}
}

// Shared returns the lock shared by every entity in this set.
func (s *Set) Shared() *lock.SharedLock {
	return s.registry.SharedLock()
}

// Add registers e under its EID, returning lock.ErrEntityExists if
// already present.
func (s *Set) Add(e *ControlledEntity) error {
	return s.registry.Add(e)
}

// Remove unregisters the entity with the given EID, e.g. on ADP
// departure.
func (s *Set) Remove(eid uint64) {
	s.registry.Remove(eid)
}

// Get returns the entity registered under eid, or lock.ErrEntityNotFound.
func (s *Set) Get(eid uint64) (*ControlledEntity, error) {
	e, err := s.registry.Get(eid)
	if err != nil {
		return nil, err
	}
	return e.(*ControlledEntity), nil
}

// Count returns the number of registered entities.
func (s *Set) Count() int {
	return s.registry.Count()
}

// ForEach calls fn for every registered entity. The callback should
// not mutate the set.
func (s *Set) ForEach(fn func(*ControlledEntity)) {
	s.registry.ForEach(func(e lock.Entity) {
		fn(e.(*ControlledEntity))
	})
}
