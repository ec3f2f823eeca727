package probemap

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Hasher is the contract a key type must satisfy. Hash must be stable for
// as long as the key lives in a Map, and Equal must agree with it: equal
// keys have equal hashes.
type Hasher[K any] interface {
	Hash() int
	Equal(other K) bool
}

// Map is an open-addressing hash map using linear probing and tombstone
// deletion. It is not safe for concurrent use.
type Map[K Hasher[K], V any] struct {
	table         []Slot[K, V]
	size          int
	maxLoadFactor float64
	logger        *zap.Logger
}

// New creates an empty map with DefaultCapacity slots. It panics if an
// option carries an invalid load factor; use NewWithCapacity to get an error
// instead.
func New[K Hasher[K], V any](opts ...Option) *Map[K, V] {
	m, err := NewWithCapacity[K, V](DefaultCapacity, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewWithCapacity creates an empty map whose backing table has capacity
// slots.
func NewWithCapacity[K Hasher[K], V any](capacity int, opts ...Option) (*Map[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "capacity %d must be positive", capacity)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{
		table:         make([]Slot[K, V], capacity),
		maxLoadFactor: o.maxLoadFactor,
		logger:        o.logger,
	}, nil
}

// NewFromConfig creates an empty map from cfg. Options are applied after the
// config and win over it.
func NewFromConfig[K Hasher[K], V any](cfg Config, opts ...Option) (*Map[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithMaxLoadFactor(cfg.MaxLoadFactor)}, opts...)
	return NewWithCapacity[K, V](cfg.InitialCapacity, opts...)
}

// index returns abs(hash) mod capacity for the current table.
func (m *Map[K, V]) index(key K) int {
	idx := key.Hash() % len(m.table)
	if idx < 0 {
		idx = -idx
	}
	return idx
}

// find walks the probe sequence of key and returns the index of its live
// slot, or -1. The walk ends at the first Empty slot or after a full cycle.
func (m *Map[K, V]) find(key K) int {
	n := len(m.table)
	start := m.index(key)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		slot := &m.table[idx]
		switch slot.state {
		case Empty:
			return -1
		case Occupied:
			if slot.key.Equal(key) {
				return idx
			}
		}
	}
	return -1
}

// Set associates value with key. If key was already live its previous value
// is returned with replaced set to true. The table regrows to 2*Cap()+1
// before the insert when the insert would push the load above the maximum.
func (m *Map[K, V]) Set(key K, value V) (old V, replaced bool, err error) {
	if isNil(key) {
		return old, false, errors.Wrap(ErrInvalidArgument, "set: nil key")
	}
	if isNil(value) {
		return old, false, errors.Wrap(ErrInvalidArgument, "set: nil value")
	}

	if float64(m.size+1)/float64(len(m.table)) > m.maxLoadFactor {
		newCapacity := 2*len(m.table) + 1
		m.logger.Debug("regrowing backing table",
			zap.Int("from", len(m.table)),
			zap.Int("to", newCapacity),
			zap.Int("size", m.size))
		m.rehash(newCapacity)
	}

	n := len(m.table)
	start := m.index(key)
	firstTombstone := -1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		slot := &m.table[idx]
		switch slot.state {
		case Empty:
			if firstTombstone >= 0 {
				idx = firstTombstone
			}
			m.table[idx] = occupied(key, value)
			m.size++
			return old, false, nil
		case Tombstone:
			if firstTombstone < 0 {
				firstTombstone = idx
			}
		case Occupied:
			if slot.key.Equal(key) {
				old = slot.value
				slot.value = value
				return old, true, nil
			}
		}
	}

	// Full cycle with no Empty slot and no live match.
	if firstTombstone < 0 {
		return old, false, errors.AssertionFailedf(
			"no free slot for insert: size %d, capacity %d", m.size, n)
	}
	m.table[firstTombstone] = occupied(key, value)
	m.size++
	return old, false, nil
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if isNil(key) {
		return zero, errors.Wrap(ErrInvalidArgument, "get: nil key")
	}
	idx := m.find(key)
	if idx < 0 {
		return zero, errors.Wrap(ErrNotFound, "get")
	}
	return m.table[idx].value, nil
}

// Contains reports whether key is live in the map.
func (m *Map[K, V]) Contains(key K) (bool, error) {
	if isNil(key) {
		return false, errors.Wrap(ErrInvalidArgument, "contains: nil key")
	}
	return m.find(key) >= 0, nil
}

// Delete removes key and returns the value it held. The slot becomes a
// tombstone so later probes keep walking past it.
func (m *Map[K, V]) Delete(key K) (V, error) {
	var zero V
	if isNil(key) {
		return zero, errors.Wrap(ErrInvalidArgument, "delete: nil key")
	}
	idx := m.find(key)
	if idx < 0 {
		return zero, errors.Wrap(ErrNotFound, "delete")
	}
	removed := m.table[idx].value
	m.table[idx] = tombstone[K, V](m.table[idx].key)
	m.size--
	return removed, nil
}

// Resize rebuilds the backing table with newCapacity slots. Tombstones are
// dropped. newCapacity may be smaller than the current capacity but not
// smaller than Len().
func (m *Map[K, V]) Resize(newCapacity int) error {
	if newCapacity <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "resize: capacity %d must be positive", newCapacity)
	}
	if newCapacity < m.size {
		return errors.Wrapf(ErrInvalidArgument, "resize: capacity %d below size %d", newCapacity, m.size)
	}
	m.logger.Debug("resizing backing table",
		zap.Int("from", len(m.table)),
		zap.Int("to", newCapacity),
		zap.Int("size", m.size))
	m.rehash(newCapacity)
	return nil
}

// rehash moves every live entry into a fresh table, scanning the old table
// in ascending index order. The caller guarantees newCapacity >= m.size.
func (m *Map[K, V]) rehash(newCapacity int) {
	old := m.table
	m.table = make([]Slot[K, V], newCapacity)
	for i := range old {
		if old[i].state != Occupied {
			continue
		}
		start := m.index(old[i].key)
		for j := 0; j < newCapacity; j++ {
			idx := (start + j) % newCapacity
			if m.table[idx].state == Empty {
				m.table[idx] = old[i]
				break
			}
		}
	}
}

// Clear drops every entry and resets the table to DefaultCapacity slots.
func (m *Map[K, V]) Clear() {
	m.logger.Debug("clearing map",
		zap.Int("capacity", len(m.table)),
		zap.Int("size", m.size))
	m.size = 0
	m.table = make([]Slot[K, V], DefaultCapacity)
}

// Keys returns the live keys in no particular order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.table {
		if m.table[i].state == Occupied {
			keys = append(keys, m.table[i].key)
		}
	}
	return keys
}

// Values returns the live values in no particular order. Duplicates are kept.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for i := range m.table {
		if m.table[i].state == Occupied {
			values = append(values, m.table[i].value)
		}
	}
	return values
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the length of the backing table.
func (m *Map[K, V]) Cap() int { return len(m.table) }

// Load returns Len()/Cap().
func (m *Map[K, V]) Load() float64 {
	return float64(m.size) / float64(len(m.table))
}

// Table returns a copy of the backing table, for inspection in tests and
// debugging. Changing it has no effect on the map.
func (m *Map[K, V]) Table() []Slot[K, V] {
	snapshot := make([]Slot[K, V], len(m.table))
	copy(snapshot, m.table)
	return snapshot
}
