package probemap

import "github.com/cespare/xxhash/v2"

// String is a string key hashed with xxhash.
type String string

func (s String) Hash() int           { return int(xxhash.Sum64String(string(s))) }
func (s String) Equal(o String) bool { return s == o }

// Bytes is a byte-string key hashed with xxhash. It is stored as a string
// so that later changes to the source slice cannot move it.
type Bytes string

// BytesKey copies b into a Bytes key.
func BytesKey(b []byte) Bytes { return Bytes(b) }

func (b Bytes) Hash() int {
	return int(xxhash.Sum64([]byte(b)))
}

func (b Bytes) Equal(o Bytes) bool { return b == o }

// Int is an integer key whose hash is the integer itself, so Int(k) starts
// probing at k mod capacity.
type Int int

func (i Int) Hash() int        { return int(i) }
func (i Int) Equal(o Int) bool { return i == o }
