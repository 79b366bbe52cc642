package world

import "testing"

func TestStoreCreateAppends(t *testing.T) {
	s := NewStore(nil)

	h1 := s.Create(Entity{Kind: KindBlock})
	h2 := s.Create(Entity{Kind: KindBlock})

	if h1 != 0 || h2 != 1 {
		t.Errorf("expected handles 0 and 1, got %d and %d", h1, h2)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 live entities, got %d", s.Len())
	}
}

func TestStoreIDsMonotonic(t *testing.T) {
	s := NewStore(nil)

	h1 := s.Create(Entity{Kind: KindBlock})
	s.Remove(h1)
	h2 := s.Create(Entity{Kind: KindBlock})

	// Slot is reused but the ID must not be.
	if h1 != h2 {
		t.Errorf("expected slot reuse, got %d then %d", h1, h2)
	}
	if got := s.Get(h2).ID; got != 2 {
		t.Errorf("expected ID 2 after reuse, got %d", got)
	}
}

func TestStoreSlotReuse(t *testing.T) {
	// Creating N entities, removing entity k, then creating one more must
	// land the new entity in slot k.
	const n = 8
	s := NewStore(nil)
	for i := 0; i < n; i++ {
		s.Create(Entity{Kind: KindBlock})
	}

	const k = 3
	s.Remove(Handle(k))
	if s.FreeLen() != 1 {
		t.Fatalf("expected 1 free slot, got %d", s.FreeLen())
	}

	h := s.Create(Entity{Kind: KindParticle})
	if h != Handle(k) {
		t.Errorf("expected reused slot %d, got %d", k, h)
	}
	if s.FreeLen() != 0 {
		t.Errorf("free-list should be empty after reuse, got %d", s.FreeLen())
	}
}

func TestStoreRemoveAll(t *testing.T) {
	// Removing all N entities leaves exactly N free slots with no
	// duplicate indices.
	const n = 10
	s := NewStore(nil)
	for i := 0; i < n; i++ {
		s.Create(Entity{Kind: KindBlock})
	}
	for i := 0; i < n; i++ {
		s.Remove(Handle(i))
	}

	if s.Len() != 0 {
		t.Errorf("expected 0 live entities, got %d", s.Len())
	}
	if s.FreeLen() != n {
		t.Errorf("expected %d free slots, got %d", n, s.FreeLen())
	}

	seen := make(map[int]bool, n)
	for _, idx := range s.free {
		if seen[idx] {
			t.Errorf("duplicate index %d in free-list", idx)
		}
		seen[idx] = true
	}
}

func TestStoreDoubleRemove(t *testing.T) {
	s := NewStore(nil)
	h := s.Create(Entity{Kind: KindBlock})

	s.Remove(h)
	s.Remove(h) // Second remove must not double-insert into the free-list

	if s.FreeLen() != 1 {
		t.Errorf("expected 1 free slot after double remove, got %d", s.FreeLen())
	}
}

func TestStoreRemoveOutOfBounds(t *testing.T) {
	s := NewStore(nil)
	s.Create(Entity{Kind: KindBlock})

	// Must be a no-op, not a panic.
	s.Remove(Handle(-1))
	s.Remove(Handle(99))

	if s.Len() != 1 {
		t.Errorf("out-of-bounds remove should not affect live count, got %d", s.Len())
	}
	if s.FreeLen() != 0 {
		t.Errorf("out-of-bounds remove should not grow free-list, got %d", s.FreeLen())
	}
}

func TestStoreForEachSkipsTombstones(t *testing.T) {
	s := NewStore(nil)
	s.Create(Entity{Kind: KindBlock})
	h := s.Create(Entity{Kind: KindBall})
	s.Create(Entity{Kind: KindPlayer})
	s.Remove(h)

	var kinds []Kind
	s.ForEach(func(_ Handle, e *Entity) {
		kinds = append(kinds, e.Kind)
	})

	if len(kinds) != 2 {
		t.Fatalf("expected 2 visited entities, got %d", len(kinds))
	}
	if kinds[0] != KindBlock || kinds[1] != KindPlayer {
		t.Errorf("unexpected iteration result: %v", kinds)
	}
}

func TestStoreGet(t *testing.T) {
	s := NewStore(nil)
	h := s.Create(Entity{Kind: KindBall})

	if e := s.Get(h); e == nil || e.Kind != KindBall {
		t.Error("Get should return the live entity")
	}

	s.Remove(h)
	if e := s.Get(h); e != nil {
		t.Error("Get should return nil for a tombstoned slot")
	}
	if e := s.Get(Handle(42)); e != nil {
		t.Error("Get should return nil for an out-of-bounds handle")
	}
}

func TestStoreClearKeepsIDCounter(t *testing.T) {
	s := NewStore(nil)
	s.Create(Entity{Kind: KindBlock})
	s.Create(Entity{Kind: KindBlock})
	s.Clear()

	h := s.Create(Entity{Kind: KindBlock})
	if got := s.Get(h).ID; got != 3 {
		t.Errorf("IDs must stay unique across Clear, expected 3, got %d", got)
	}
}
