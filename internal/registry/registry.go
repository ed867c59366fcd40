// Package registry provides hash-keyed, insertion-ordered name tracking used
// by the stringtable model for its key space: registering a key is
// idempotent-by-hash, and genuine hash collisions between distinct
// identifiers are detected (spec.md S6).
//
// This generalizes arloliu-mebo's internal/collision.Tracker: that tracker
// tolerates a same-hash/different-name collision by flagging it and storing
// both names in the blob, because mebo's metric names are optional
// metadata. locpak's key hash IS the wire identity with no alternate
// disambiguation, so a collision here is a content error that must be
// rejected, not silently absorbed.
package registry

import (
	"sort"

	"github.com/locpak/locpak/errs"
)

// Registry tracks hash -> name registrations, preserving first-seen order.
type Registry struct {
	byHash  map[uint32]string
	ordered []string
	hashes  []uint32
	index   map[uint32]int
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byHash: make(map[uint32]string),
		index:  make(map[uint32]int),
	}
}

// Register records name under hash.
//
// Re-registering the same (hash, name) pair is a no-op (idempotent, per
// spec.md S4.3's add_source/add_column semantics). Registering a different
// name under an already-used hash is a genuine collision and returns
// errs.ErrHashCollision — except that an empty name is treated as an
// anonymous placeholder (a key seen only through a binary key table or a
// raw hex identifier, which carries no name at all): registering a real
// name over an anonymous entry promotes it in place rather than colliding,
// and registering an empty name over an existing entry is a no-op that
// keeps whatever name was already there.
//
// Returns true if this call newly registered the hash (false if it already
// existed, whether anonymous or not).
func (r *Registry) Register(h uint32, name string) (bool, error) {
	if existing, ok := r.byHash[h]; ok {
		switch {
		case existing == name:
			return false, nil
		case existing == "" && name != "":
			r.byHash[h] = name
			r.ordered[r.index[h]] = name

			return false, nil
		case name == "":
			return false, nil
		default:
			return false, errs.ErrHashCollision
		}
	}

	r.byHash[h] = name
	r.index[h] = len(r.ordered)
	r.ordered = append(r.ordered, name)
	r.hashes = append(r.hashes, h)

	return true, nil
}

// Lookup returns the name registered under h, if any.
func (r *Registry) Lookup(h uint32) (string, bool) {
	name, ok := r.byHash[h]

	return name, ok
}

// Has reports whether h has been registered.
func (r *Registry) Has(h uint32) bool {
	_, ok := r.byHash[h]

	return ok
}

// Names returns the registered names in first-seen order.
func (r *Registry) Names() []string {
	return r.ordered
}

// Count returns the number of distinct registered hashes.
func (r *Registry) Count() int {
	return len(r.ordered)
}

// HashesDescending returns every registered hash in strictly descending
// numeric order, matching spec.md S3's "keys are stored in strictly
// descending numeric order" requirement for traversal.
func (r *Registry) HashesDescending() []uint32 {
	out := make([]uint32, len(r.hashes))
	copy(out, r.hashes)

	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })

	return out
}

// Reset clears all registrations but keeps the allocated backing storage.
func (r *Registry) Reset() {
	for k := range r.byHash {
		delete(r.byHash, k)
	}

	r.ordered = r.ordered[:0]
	r.hashes = r.hashes[:0]

	for k := range r.index {
		delete(r.index, k)
	}
}
