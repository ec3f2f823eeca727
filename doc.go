/*
Package probemap provides an open-addressing hash map with linear probing.

Map keeps its entries in a single backing table of slots. Each slot is
empty, a tombstone left behind by a deletion, or occupied by a live entry.
Keys bring their own hash and equality by implementing Hasher; String,
Bytes and Int are ready-made key types.

Basic usage:

	import "github.com/theflywheel/probemap"

	m := probemap.New[probemap.String, int]()

	// Insert data
	if _, _, err := m.Set("answer", 42); err != nil {
		log.Fatal(err)
	}

	// Retrieve data
	v, err := m.Get("answer")
	if errors.Is(err, probemap.ErrNotFound) {
		fmt.Println("missing")
	}

	// Remove data
	old, err := m.Delete("answer")

Features:

  - Linear probing from abs(hash) mod capacity, wrapping at the end
  - Lazy deletion with tombstones that are reused by later inserts
  - Automatic regrowth to 2*capacity+1 when the load would exceed 0.67
  - Explicit Resize, which may also shrink down to the live entry count
  - Configurable through options or a TOML file (LoadConfig)
  - Resize events reported through a zap logger

Implementation Details:

Set walks the whole probe sequence of a key before it reuses a tombstone,
so a key that is live further along the sequence is updated in place
rather than duplicated. Get, Contains and Delete stop at the first empty
slot and step over tombstones.

Resizing allocates a fresh table and reinserts the live entries in
ascending order of their old slot index. Tombstones do not survive it.

A Map is owned by a single goroutine. Callers that share one must
serialize access themselves.
*/
package probemap
