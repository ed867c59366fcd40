package container

import (
	"github.com/locpak/locpak/bincodec"
	"github.com/locpak/locpak/codec"
	"github.com/locpak/locpak/endian"
	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/internal/filetime"
	"github.com/locpak/locpak/section"
)

// Read parses a complete container file back into a Model. The returned
// Model's ColumnData entries are ready for codec.Decode.
func Read(data []byte) (*Model, error) {
	var hdr section.Header
	if err := hdr.Parse(data); err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	if hdr.BigEndian {
		engine = endian.GetBigEndianEngine()
	}

	var sth section.StringTableHeader
	if err := sth.Parse(data[section.FileHeaderSize:], engine); err != nil {
		return nil, err
	}

	m := &Model{BigEndian: hdr.BigEndian, Version: sth.Version}

	r := bincodec.NewReader(data, engine)

	if err := readSources(r, &sth, m); err != nil {
		return nil, err
	}

	if err := readColumnNames(r, &sth, m); err != nil {
		return nil, err
	}

	colData, err := readColumnData(r, &sth)
	if err != nil {
		return nil, err
	}

	m.ColumnData = colData

	keys, err := readKeyTable(r, &sth)
	if err != nil {
		return nil, err
	}

	m.KeysDesc = keys

	if r.Err() != nil {
		return nil, r.Err()
	}

	return m, nil
}

func readSources(r *bincodec.Reader, sth *section.StringTableHeader, m *Model) error {
	r.Seek(int(sth.SrcTable))

	for i := uint32(0); i < sth.SrcCount; i++ {
		path := r.PrefixedString()
		high := r.U32()
		low := r.U32()

		m.Sources = append(m.Sources, SourceEntry{
			CSVPath:      path,
			ModifiedTime: filetime.FromFileTime(filetime.JoinU32(high, low)),
		})
	}

	if r.State() == bincodec.StateBad {
		return errs.ErrTruncatedSection
	}

	return nil
}

func readColumnNames(r *bincodec.Reader, sth *section.StringTableHeader, m *Model) error {
	r.Seek(int(sth.ColNames))

	refs := make([]section.Streamref, sth.ColCount)
	for i := range refs {
		refs[i] = r.Streamref()
	}

	for _, ref := range refs {
		name, err := r.CStringAt(int(ref.Pos))
		if err != nil {
			return err
		}

		m.ColumnNames = append(m.ColumnNames, name)
	}

	return nil
}

func readColumnData(r *bincodec.Reader, sth *section.StringTableHeader) ([]*codec.SymbolTable, error) {
	r.Seek(int(sth.ColTable))

	refs := make([]section.ColumnDataRef, sth.ColCount)
	for i := range refs {
		refs[i] = section.ColumnDataRef{StrRef: r.Streamref(), SymRef: r.Streamref()}
	}

	out := make([]*codec.SymbolTable, sth.ColCount)

	for i, ref := range refs {
		st := &codec.SymbolTable{}

		r.Seek(int(ref.StrRef.Pos))

		st.StrTab = r.U32Array(int(sth.RowCount))

		seqLen := (int(ref.StrRef.Size) - int(sth.RowCount)*4) / 2
		if seqLen < 0 {
			return nil, errs.ErrBadOffset
		}

		st.SeqTab = r.U16Array(seqLen)

		r.Seek(int(ref.SymRef.Pos))
		st.SymTab = r.U32Array(int(ref.SymRef.Size) / 4)

		out[i] = st
	}

	return out, nil
}

func readKeyTable(r *bincodec.Reader, sth *section.StringTableHeader) ([]uint32, error) {
	r.Seek(int(sth.KeyTable))

	ref := r.Streamref()

	r.Seek(int(ref.Pos))

	return r.U32Array(int(sth.RowCount)), nil
}
