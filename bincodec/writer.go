package bincodec

import (
	"github.com/locpak/locpak/endian"
	"github.com/locpak/locpak/internal/pool"
	"github.com/locpak/locpak/section"
)

// Writer provides endian-aware typed writes into a pooled byte buffer,
// tracking byte position and a State per spec.md S4.1. A Writer never fails
// a write outright (the backing buffer grows as needed); State only ever
// moves to StateBad, which Release sets.
type Writer struct {
	buf     *pool.ByteBuffer
	putBack func(*pool.ByteBuffer)
	engine  endian.EndianEngine
	state   State
}

// NewWriter allocates a pooled column-sized buffer and returns a Writer over
// it. Call Release when done to return the buffer to its pool.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{buf: pool.GetColumnBuffer(), putBack: pool.PutColumnBuffer, engine: engine, state: StateGood}
}

// NewContainerWriter allocates a pooled container-sized buffer, for writers
// that assemble a whole file rather than a single column.
func NewContainerWriter(engine endian.EndianEngine) *Writer {
	return &Writer{buf: pool.GetContainerBuffer(), putBack: pool.PutContainerBuffer, engine: engine, state: StateGood}
}

// Release returns the backing buffer to its pool. The Writer must not be
// used afterward.
func (w *Writer) Release() {
	if w.putBack != nil && w.buf != nil {
		w.putBack(w.buf)
		w.buf = nil
		w.putBack = nil
	}

	w.state = StateBad
}

// Pos returns the current write position (equal to the number of bytes
// written so far).
func (w *Writer) Pos() int { return w.buf.Len() }

// State returns the writer's current stream state.
func (w *Writer) State() State { return w.state }

// Bytes returns the bytes written so far. The slice aliases the writer's
// buffer and is only valid until the next write or Release.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) checkState() bool {
	return w.state == StateGood
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) {
	if !w.checkState() {
		return
	}

	w.buf.MustWrite([]byte{v})
}

// I8 appends a signed byte.
func (w *Writer) I8(v int8) { w.U8(uint8(v)) }

// U16 appends a u16 honoring the writer's byte order.
func (w *Writer) U16(v uint16) {
	if !w.checkState() {
		return
	}

	var buf [2]byte
	w.engine.PutUint16(buf[:], v)
	w.buf.MustWrite(buf[:])
}

// I16 appends an i16.
func (w *Writer) I16(v int16) { w.U16(uint16(v)) }

// U32 appends a u32 honoring the writer's byte order.
func (w *Writer) U32(v uint32) {
	if !w.checkState() {
		return
	}

	var buf [4]byte
	w.engine.PutUint32(buf[:], v)
	w.buf.MustWrite(buf[:])
}

// I32 appends an i32.
func (w *Writer) I32(v int32) { w.U32(uint32(v)) }

// U64 appends a u64 honoring the writer's byte order.
func (w *Writer) U64(v uint64) {
	if !w.checkState() {
		return
	}

	var buf [8]byte
	w.engine.PutUint64(buf[:], v)
	w.buf.MustWrite(buf[:])
}

// I64 appends an i64.
func (w *Writer) I64(v int64) { w.U64(uint64(v)) }

// Raw appends raw bytes verbatim.
func (w *Writer) Raw(b []byte) {
	if !w.checkState() {
		return
	}

	w.buf.MustWrite(b)
}

// U32Array appends a sequence of u32 values.
func (w *Writer) U32Array(vs []uint32) {
	for _, v := range vs {
		w.U32(v)
	}
}

// U16Array appends a sequence of u16 values.
func (w *Writer) U16Array(vs []uint16) {
	for _, v := range vs {
		w.U16(v)
	}
}

// Streamref appends a streamref: size then pos (spec.md S4.1 wire order).
func (w *Writer) Streamref(ref section.Streamref) {
	w.U32(ref.Size)
	w.U32(ref.Pos)
}

// PrefixedString appends a u16-length-prefixed byte string.
func (w *Writer) PrefixedString(s string) {
	w.U16(uint16(len(s)))
	w.Raw([]byte(s))
}

// CString appends s followed by a single NUL terminator, with no alignment
// padding; callers that need 4-byte alignment pad separately via Pad.
func (w *Writer) CString(s string) {
	w.Raw([]byte(s))
	w.U8(0)
}

// Pad appends zero bytes until Pos() is a multiple of align.
func (w *Writer) Pad(align int) {
	if align <= 0 {
		return
	}

	for w.Pos()%align != 0 {
		w.U8(0)
	}
}
