package section

import (
	"github.com/locpak/locpak/endian"
	"github.com/locpak/locpak/errs"
)

// StringTableHeader is the 36-byte fixed block that immediately follows the
// file header (spec.md S4.4).
type StringTableHeader struct {
	Version  byte // opaque provenance byte from the magic, preserved on read (spec.md open question)
	SrcCount uint32
	Reserved uint32
	ColCount uint32
	RowCount uint32
	SrcTable uint32 // offset to the source manifest
	ColNames uint32 // offset to the column-name streamref array
	ColTable uint32 // offset to the column data-ref array
	KeyTable uint32 // offset to the streamref pointing at the key table
}

// Parse parses the stringtable header from data using engine's byte order.
func (h *StringTableHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < StringTableHeaderSize {
		return errs.ErrTruncatedHeader
	}

	// The magic's four bytes are positional ('S','T','B',version), like the
	// file header's FourCC — they are read as literal bytes, never
	// byte-swapped by endianness.
	if data[0] != MagicS || data[1] != MagicT || data[2] != MagicB {
		return errs.ErrBadSignature
	}

	if data[3] < StringTableVersionMin {
		return errs.ErrBadVersion
	}

	h.Version = data[3]
	h.SrcCount = engine.Uint32(data[4:8])
	h.Reserved = engine.Uint32(data[8:12])
	h.ColCount = engine.Uint32(data[12:16])
	h.RowCount = engine.Uint32(data[16:20])
	h.SrcTable = engine.Uint32(data[20:24])
	h.ColNames = engine.Uint32(data[24:28])
	h.ColTable = engine.Uint32(data[28:32])
	h.KeyTable = engine.Uint32(data[32:36])

	return nil
}

// Bytes serializes the stringtable header using engine's byte order.
func (h *StringTableHeader) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, StringTableHeaderSize)

	b[0], b[1], b[2], b[3] = MagicS, MagicT, MagicB, h.Version

	engine.PutUint32(b[4:8], h.SrcCount)
	engine.PutUint32(b[8:12], h.Reserved)
	engine.PutUint32(b[12:16], h.ColCount)
	engine.PutUint32(b[16:20], h.RowCount)
	engine.PutUint32(b[20:24], h.SrcTable)
	engine.PutUint32(b[24:28], h.ColNames)
	engine.PutUint32(b[28:32], h.ColTable)
	engine.PutUint32(b[32:36], h.KeyTable)

	return b
}
