package lock

import "testing"

type fakeEntity struct {
	eid uint64
}

func (f fakeEntity) EID() uint64 { return f.eid }

func TestRegistry_AddGetRemove(t *testing.T) {
	reg := NewRegistry(New())

	if err := reg.Add(fakeEntity{eid: 1}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := reg.Add(fakeEntity{eid: 1}); err != ErrEntityExists {
		t.Errorf("Add() duplicate error = %v, want ErrEntityExists", err)
	}

	e, err := reg.Get(1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if e.EID() != 1 {
		t.Errorf("Get().EID() = %d, want 1", e.EID())
	}

	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}

	reg.Remove(1)
	if _, err := reg.Get(1); err != ErrEntityNotFound {
		t.Errorf("Get() after Remove() error = %v, want ErrEntityNotFound", err)
	}
}

func TestRegistry_ForEach(t *testing.T) {
	reg := NewRegistry(New())
	for i := uint64(1); i <= 3; i++ {
		_ = reg.Add(fakeEntity{eid: i})
	}

	seen := map[uint64]bool{}
	reg.ForEach(func(e Entity) {
		seen[e.EID()] = true
	})

	for i := uint64(1); i <= 3; i++ {
		if !seen[i] {
			t.Errorf("ForEach() did not visit EID %d", i)
		}
	}
}
