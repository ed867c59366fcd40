// Package stringtable holds locpak's in-memory aggregate (spec.md S4.3):
// the ordered key-hash-to-name map, the ordered source list, and the
// ordered column list, each a map from key hash to UTF-16-capable text.
// Mutators are additive and idempotent by name-hash; save-bin/save-csv/
// save-map consume the model without mutating it.
package stringtable

import (
	"time"

	"github.com/locpak/locpak/internal/hash"
	"github.com/locpak/locpak/internal/registry"
)

// Source is one contributing CSV file, in first-seen order.
type Source struct {
	CSVPath      string
	Prefix       string
	ModifiedTime time.Time
}

// Column is a named set of localized texts, one optional entry per key.
type Column struct {
	Name     string
	NameHash uint32
	Rows     map[uint32]string
}

// Table is the stringtable model. The zero value is not usable; call New.
type Table struct {
	names   *registry.Registry
	sources []Source
	srcIdx  map[uint32]int
	columns []Column
	colIdx  map[uint32]int
}

// New creates an empty Table.
func New() *Table {
	return &Table{
		names:  registry.New(),
		srcIdx: make(map[uint32]int),
		colIdx: make(map[uint32]int),
	}
}

// Clear resets the table to empty, matching the CLI's `clear` command
// (spec.md S6.1).
func (t *Table) Clear() {
	t.names.Reset()
	t.sources = nil
	t.columns = nil

	for k := range t.srcIdx {
		delete(t.srcIdx, k)
	}

	for k := range t.colIdx {
		delete(t.colIdx, k)
	}
}

// AddName registers a display name under its key hash. It is a no-op if
// the pair was already registered, and returns errs.ErrHashCollision
// (via the underlying registry) if the hash was already claimed by a
// different name.
func (t *Table) AddName(key uint32, name string) error {
	_, err := t.names.Register(key, name)

	return err
}

// Name returns the display name registered under key, if any.
func (t *Table) Name(key uint32) (string, bool) {
	return t.names.Lookup(key)
}

// HasKey reports whether key is registered, with or without a display name.
func (t *Table) HasKey(key uint32) bool {
	return t.names.Has(key)
}

// EnsureKey registers key in the row-identity space without a display
// name, if it isn't already known. Binary containers carry hashes but no
// names (spec.md S4.4's key table is bare u32s), so reading one back must
// still give every row a place in KeysDescending even though read-bin alone
// can never supply a name for it.
func (t *Table) EnsureKey(key uint32) {
	_, _ = t.names.Register(key, "")
}

// KeysDescending returns every registered key hash in strictly descending
// order (spec.md S3), the iteration order every packed column and the key
// table must follow.
func (t *Table) KeysDescending() []uint32 {
	return t.names.HashesDescending()
}

// AddSource registers csvPath as a contributing source, idempotent on
// hash.Name(csvPath) per spec.md S4.3. Returns the (possibly pre-existing)
// Source by index so callers can update its ModifiedTime.
func (t *Table) AddSource(csvPath, prefix string) int {
	h := hash.Name(csvPath)
	if idx, ok := t.srcIdx[h]; ok {
		return idx
	}

	t.sources = append(t.sources, Source{CSVPath: csvPath, Prefix: prefix})
	idx := len(t.sources) - 1
	t.srcIdx[h] = idx

	return idx
}

// Source returns the source at idx.
func (t *Table) Source(idx int) *Source { return &t.sources[idx] }

// Sources returns every registered source, in first-seen order.
func (t *Table) Sources() []Source { return t.sources }

// AddColumn registers name as a column, idempotent on hash.Name(name) per
// spec.md S4.3. Returns the column's index.
func (t *Table) AddColumn(name string) int {
	h := hash.Name(name)
	if idx, ok := t.colIdx[h]; ok {
		return idx
	}

	t.columns = append(t.columns, Column{Name: name, NameHash: h, Rows: make(map[uint32]string)})
	idx := len(t.columns) - 1
	t.colIdx[h] = idx

	return idx
}

// Column returns the column at idx.
func (t *Table) Column(idx int) *Column { return &t.columns[idx] }

// Columns returns every registered column, in first-seen order.
func (t *Table) Columns() []Column { return t.columns }

// SetCell records text for key in the column at colIdx. An empty string is
// equivalent to leaving the row absent (spec.md S3: "empty strings are
// represented by the row being absent").
func (t *Table) SetCell(colIdx int, key uint32, text string) {
	if text == "" {
		delete(t.columns[colIdx].Rows, key)

		return
	}

	t.columns[colIdx].Rows[key] = text
}

// Cell returns the text stored for key in the column at colIdx.
func (t *Table) Cell(colIdx int, key uint32) (string, bool) {
	text, ok := t.columns[colIdx].Rows[key]

	return text, ok
}
