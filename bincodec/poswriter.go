package bincodec

import "github.com/locpak/locpak/section"

// PosWriter is the position-tracking sink from spec.md S4.2: a first pass
// over the data that discards the bytes it's given and only records how
// many would have been written, so the container writer can compute every
// section's streamref before the real (size-known) layout pass allocates
// its single output buffer.
//
// It implements the same typed-write surface as Writer by delegating size
// accounting to a running counter; nothing is ever retained.
type PosWriter struct {
	base int
	n    int
}

// NewPosWriter creates a PosWriter whose position starts at base (normally
// section.HeaderTotalSize, the first byte after the fixed headers).
func NewPosWriter(base int) *PosWriter {
	return &PosWriter{base: base}
}

// Pos returns the absolute position the next byte would land at.
func (p *PosWriter) Pos() int { return p.base + p.n }

// Advance records n additional bytes without storing them.
func (p *PosWriter) Advance(n int) { p.n += n }

// U8 records one byte.
func (p *PosWriter) U8(uint8) { p.n++ }

// U16 records two bytes.
func (p *PosWriter) U16(uint16) { p.n += 2 }

// U32 records four bytes.
func (p *PosWriter) U32(uint32) { p.n += 4 }

// U64 records eight bytes.
func (p *PosWriter) U64(uint64) { p.n += 8 }

// Raw records len(b) bytes.
func (p *PosWriter) Raw(b []byte) { p.n += len(b) }

// PrefixedString records a u16-length-prefixed string's on-wire size.
func (p *PosWriter) PrefixedString(s string) {
	p.U16(0)
	p.Raw([]byte(s))
}

// CString records s plus its NUL terminator.
func (p *PosWriter) CString(s string) {
	p.Raw([]byte(s))
	p.U8(0)
}

// Streamref records a streamref's fixed 8-byte size.
func (p *PosWriter) Streamref(section.Streamref) { p.n += section.StreamrefSize }

// Pad advances to the next multiple of align.
func (p *PosWriter) Pad(align int) {
	if align <= 0 {
		return
	}

	for p.Pos()%align != 0 {
		p.U8(0)
	}
}

// Mark returns the current absolute position, to be paired with a later
// call to Since to produce a streamref once the span's total size is known.
func (p *PosWriter) Mark() int { return p.Pos() }

// Since builds a streamref spanning [start, Pos()).
func (p *PosWriter) Since(start int) section.Streamref {
	return section.Streamref{Pos: uint32(start), Size: uint32(p.Pos() - start)}
}
