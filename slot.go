package probemap

// SlotState is the tag of a Slot.
type SlotState uint8

const (
	// Empty marks a slot that has never held an entry on the current table.
	Empty SlotState = iota
	// Tombstone marks a slot whose entry was deleted. The key is kept, the
	// value is dropped.
	Tombstone
	// Occupied marks a slot holding a live entry.
	Occupied
)

func (s SlotState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Tombstone:
		return "tombstone"
	case Occupied:
		return "occupied"
	}
	return "unknown"
}

// Slot is one cell of the backing table. The zero Slot is Empty.
type Slot[K, V any] struct {
	state SlotState
	key   K
	value V
}

func occupied[K, V any](key K, value V) Slot[K, V] {
	return Slot[K, V]{state: Occupied, key: key, value: value}
}

func tombstone[K, V any](key K) Slot[K, V] {
	return Slot[K, V]{state: Tombstone, key: key}
}

// State returns the slot tag.
func (s Slot[K, V]) State() SlotState { return s.state }

// Key returns the key of an Occupied or Tombstone slot, the zero K otherwise.
func (s Slot[K, V]) Key() K { return s.key }

// Value returns the value of an Occupied slot, the zero V otherwise.
func (s Slot[K, V]) Value() V { return s.value }

func (s Slot[K, V]) IsEmpty() bool     { return s.state == Empty }
func (s Slot[K, V]) IsTombstone() bool { return s.state == Tombstone }
func (s Slot[K, V]) IsOccupied() bool  { return s.state == Occupied }
