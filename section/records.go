package section

// SourceRecord is one entry of the source manifest (spec.md S4.4): a
// u16-prefixed csv_path followed by a FILETIME modification timestamp
// (stored on the wire as {high, low} u32 halves; see internal/filetime).
type SourceRecord struct {
	CSVPath      string
	ModifiedTime uint64 // FILETIME ticks, see internal/filetime
}

// ColumnDataRef is one entry of the column data table (spec.md S4.4): a pair
// of streamrefs addressing a column's (str_tab+seq_tab) region and its
// sym_tab region.
type ColumnDataRef struct {
	StrRef Streamref
	SymRef Streamref
}
