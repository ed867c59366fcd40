package container

import (
	"github.com/locpak/locpak/bincodec"
	"github.com/locpak/locpak/endian"
	"github.com/locpak/locpak/section"
)

// Write serializes m into a complete container file: the fixed file header
// and stringtable header, followed by the body layoutPass produces.
func Write(m *Model) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	if m.BigEndian {
		engine = endian.GetBigEndianEngine()
	}

	r := &resolved{}

	pw := bincodec.NewPosWriter(section.HeaderTotalSize)
	layoutPass(pw, m, r, false)

	w := bincodec.NewContainerWriter(engine)
	defer w.Release()

	hdr := section.Header{BigEndian: m.BigEndian}
	w.Raw(hdr.Bytes())

	sth := section.StringTableHeader{
		Version:  m.Version,
		SrcCount: uint32(len(m.Sources)),
		ColCount: uint32(len(m.ColumnNames)),
		RowCount: uint32(len(m.KeysDesc)),
		SrcTable: r.SrcTable,
		ColNames: r.ColNames,
		ColTable: r.ColTable,
		KeyTable: r.KeyTable,
	}
	w.Raw(sth.Bytes(engine))

	layoutPass(w, m, r, true)

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())

	return out, nil
}
