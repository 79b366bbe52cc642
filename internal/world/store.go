package world

import "github.com/charmbracelet/log"

// Handle is a stable reference to a slot in the Store. Handles remain
// valid across creates and removes; whether the slot still holds the same
// entity can be checked against Entity.ID.
type Handle int

// Store is a growable entity list with a free-list of reusable slots.
// Removal is a logical delete: the slot is marked Tombstone and its index
// pushed onto the free-list, so storage never shrinks and no pointers are
// invalidated mid-frame. Creation reuses a free slot before appending.
type Store struct {
	slots  []Entity
	free   []int
	nextID uint64
	logger *log.Logger
}

// NewStore creates an empty store. The logger is used for the
// out-of-bounds removal warning; nil disables logging.
func NewStore(logger *log.Logger) *Store {
	return &Store{logger: logger}
}

// Create inserts an entity, reusing a free slot if one is available.
// The entity is assigned the next monotonic ID regardless of which slot
// it lands in. Returns a handle to the occupied slot.
func (s *Store) Create(e Entity) Handle {
	s.nextID++
	e.ID = s.nextID

	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[idx] = e
		return Handle(idx)
	}

	s.slots = append(s.slots, e)
	return Handle(len(s.slots) - 1)
}

// Remove logically deletes the entity at the given handle. An
// out-of-bounds handle is logged as a warning and ignored; removing an
// already tombstoned slot is a no-op, so a double remove cannot insert
// the index into the free-list twice.
func (s *Store) Remove(h Handle) {
	if h < 0 || int(h) >= len(s.slots) {
		if s.logger != nil {
			s.logger.Warn("remove: handle out of bounds", "handle", int(h), "slots", len(s.slots))
		}
		return
	}
	if s.slots[h].Kind == KindTombstone {
		return
	}
	s.slots[h].Kind = KindTombstone
	s.free = append(s.free, int(h))
}

// Get returns a pointer to the entity at the handle, or nil if the handle
// is out of bounds or the slot is tombstoned.
func (s *Store) Get(h Handle) *Entity {
	if h < 0 || int(h) >= len(s.slots) {
		return nil
	}
	if s.slots[h].Kind == KindTombstone {
		return nil
	}
	return &s.slots[h]
}

// ForEach visits every live entity in slot order. Slot order matches
// insertion order until slots are reused. The visitor may remove entities
// (including the one being visited); removal only tombstones the slot, so
// iteration stays well-defined.
func (s *Store) ForEach(fn func(Handle, *Entity)) {
	for i := range s.slots {
		if s.slots[i].Kind == KindTombstone {
			continue
		}
		fn(Handle(i), &s.slots[i])
	}
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(k Kind) int {
	n := 0
	for i := range s.slots {
		if s.slots[i].Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of live (non-tombstone) entities.
func (s *Store) Len() int {
	return len(s.slots) - len(s.free)
}

// FreeLen returns the number of reusable slots in the free-list.
func (s *Store) FreeLen() int {
	return len(s.free)
}

// Clear removes all entities and the free-list, keeping the ID counter so
// IDs stay unique across restarts.
func (s *Store) Clear() {
	s.slots = s.slots[:0]
	s.free = s.free[:0]
}
