package bincodec

import (
	"github.com/locpak/locpak/endian"
	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/section"
)

// Reader provides endian-aware, bounds-checked typed reads over an in-memory
// byte slice, tracking byte position and a State per spec.md S4.1.
//
// A failed read zero-fills its destination and leaves State() as StateFail
// (StateEOF when the read starts at the very end of the buffer); it does
// not panic and does not advance the position, so callers can check
// State() once after a sequence of reads instead of after every call.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
	state  State
}

// NewReader creates a Reader over data using engine's byte order, starting
// at position 0.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine, state: StateGood}
}

// Pos returns the current byte position.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// State returns the reader's current stream state.
func (r *Reader) State() State { return r.state }

// Err returns a FormatError-tagged error if State() is not good, else nil.
func (r *Reader) Err() error {
	if r.state.OK() {
		return nil
	}

	return errs.ErrTruncatedSection
}

// Seek repositions the reader to an absolute byte offset. It fails (setting
// StateBad) if pos is negative or beyond the buffer length.
func (r *Reader) Seek(pos int) {
	if pos < 0 || pos > len(r.data) {
		r.state = StateBad

		return
	}

	r.pos = pos
	if r.state == StateEOF {
		r.state = StateGood
	}
}

func (r *Reader) ensure(n int) bool {
	if r.pos+n > len(r.data) {
		if r.pos >= len(r.data) {
			r.state = StateEOF
		} else {
			r.state = StateFail
		}

		return false
	}

	return true
}

// U8 reads a single byte.
func (r *Reader) U8() uint8 {
	if !r.ensure(1) {
		return 0
	}

	v := r.data[r.pos]
	r.pos++

	return v
}

// I8 reads a signed byte.
func (r *Reader) I8() int8 { return int8(r.U8()) }

// U16 reads a u16 honoring the reader's byte order.
func (r *Reader) U16() uint16 {
	if !r.ensure(2) {
		return 0
	}

	v := r.engine.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2

	return v
}

// I16 reads an i16.
func (r *Reader) I16() int16 { return int16(r.U16()) }

// U32 reads a u32 honoring the reader's byte order.
func (r *Reader) U32() uint32 {
	if !r.ensure(4) {
		return 0
	}

	v := r.engine.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return v
}

// I32 reads an i32.
func (r *Reader) I32() int32 { return int32(r.U32()) }

// U64 reads a u64 honoring the reader's byte order.
func (r *Reader) U64() uint64 {
	if !r.ensure(8) {
		return 0
	}

	v := r.engine.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8

	return v
}

// I64 reads an i64.
func (r *Reader) I64() int64 { return int64(r.U64()) }

// Bytes reads n raw bytes. The returned slice aliases the reader's buffer
// and must not be retained past the buffer's lifetime if it may be reused.
func (r *Reader) Bytes(n int) []byte {
	if !r.ensure(n) {
		return make([]byte, n)
	}

	v := r.data[r.pos : r.pos+n]
	r.pos += n

	return v
}

// U32Array reads n consecutive u32 values.
func (r *Reader) U32Array(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.U32()
	}

	return out
}

// U16Array reads n consecutive u16 values.
func (r *Reader) U16Array(n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = r.U16()
	}

	return out
}

// Streamref reads a streamref: size then pos (spec.md S4.1 wire order).
func (r *Reader) Streamref() section.Streamref {
	size := r.U32()
	pos := r.U32()

	return section.Streamref{Pos: pos, Size: size}
}

// PrefixedString reads a u16-length-prefixed byte string (no terminator on
// the wire).
func (r *Reader) PrefixedString() string {
	n := r.U16()

	return string(r.Bytes(int(n)))
}

// CStringAt reads a NUL-terminated byte string starting at absolute offset
// pos, without disturbing the reader's current position or State. It
// returns errs.ErrBadOffset if pos lies outside the buffer and
// errs.ErrTruncatedSection if no NUL terminator is found before the end of
// the buffer.
func (r *Reader) CStringAt(pos int) (string, error) {
	if pos < 0 || pos > len(r.data) {
		return "", errs.ErrBadOffset
	}

	end := pos
	for end < len(r.data) && r.data[end] != 0 {
		end++
	}

	if end >= len(r.data) {
		return "", errs.ErrTruncatedSection
	}

	return string(r.data[pos:end]), nil
}
