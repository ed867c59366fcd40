// Package container reads and writes the locpak binary container format
// (spec.md S4.4): the fixed file header and stringtable header, the source
// manifest, the column-name table, the per-column data table, and the key
// table. Writing uses a two-pass strategy — a bincodec.PosWriter dry run to
// resolve every streamref before a real bincodec.Writer pass emits the
// bytes — matching spec.md S4.2's position-tracking sink.
package container

import (
	"time"

	"github.com/locpak/locpak/codec"
)

// SourceEntry is one contributing CSV file as it appears in the model
// handed to Write.
type SourceEntry struct {
	CSVPath      string
	ModifiedTime time.Time
}

// Model is the flattened input to Write: everything needed to lay out a
// container, already packed by package codec and ordered by package
// stringtable.
type Model struct {
	BigEndian   bool
	Version     byte
	Sources     []SourceEntry
	ColumnNames []string
	ColumnData  []*codec.SymbolTable // aligned 1:1 with ColumnNames
	KeysDesc    []uint32
}
