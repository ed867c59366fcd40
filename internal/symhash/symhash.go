// Package symhash provides a fast, non-wire-visible hash table keyed by
// (character, previous-symbol-index) pairs, used internally by the lzpb and
// lzex column encoders (spec.md S4.5) to look up whether a growable symbol
// chain already exists. This is purely a performance structure over an
// in-memory map during a single save-bin call; it never touches the
// packed sym_tab layout and is unrelated to the spec-mandated hash_name
// algorithm in internal/hash, which must follow a fixed bit-exact recipe
// instead.
package symhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Table maps a (char, prev) key to the symbol index that already encodes
// "prev's expansion followed by char".
type Table struct {
	m map[uint64]uint16
}

// New creates an empty symbol lookup table with capacity hints for size
// entries.
func New(size int) *Table {
	return &Table{m: make(map[uint64]uint16, size)}
}

// Key computes the lookup key for a (char, prev) pair. It is a plain xxHash
// of the 4-byte packed representation (char then prev, little-endian).
// Table stores one symbol index per key, and callers use the index Get
// returns as-is, without re-checking it against sym_tab.
func Key(char uint16, prev uint16) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[0:2], char)
	binary.LittleEndian.PutUint16(buf[2:4], prev)

	return xxhash.Sum64(buf[:])
}

// Get looks up the symbol index for (char, prev).
func (t *Table) Get(char, prev uint16) (uint16, bool) {
	idx, ok := t.m[Key(char, prev)]

	return idx, ok
}

// Set records that symbolIndex encodes (char, prev).
func (t *Table) Set(char, prev uint16, symbolIndex uint16) {
	t.m[Key(char, prev)] = symbolIndex
}

// Len returns the number of entries tracked.
func (t *Table) Len() int {
	return len(t.m)
}

// Reset clears all entries, keeping the underlying map for reuse.
func (t *Table) Reset() {
	clear(t.m)
}
