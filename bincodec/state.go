// Package bincodec implements the primitive binary codec (spec.md S4.1) and
// the position-tracking sink (spec.md S4.2) shared by the container reader
// and writer.
//
// This generalizes the teacher's per-header Parse/Bytes methods
// (section.NumericHeader.Parse, section.NumericHeader.Bytes in
// arloliu-mebo) into reusable Reader/Writer types with explicit
// good/eof/fail/bad state, since locpak's container has many more variably
// sized, offset-addressed sections than mebo's single fixed header —
// re-deriving bounds-checked field access for each one would duplicate the
// same logic five times over.
package bincodec

// State mirrors the good/eof/fail/bad stream-state bits spec.md S4.1 and S9
// call for, modeled as an explicit value instead of an implicit
// boolean-coercion overload (spec.md S9's "safe-bool" redesign note).
type State uint8

const (
	StateGood State = iota
	StateEOF
	StateFail
	StateBad
)

func (s State) String() string {
	switch s {
	case StateGood:
		return "good"
	case StateEOF:
		return "eof"
	case StateFail:
		return "fail"
	case StateBad:
		return "bad"
	default:
		return "unknown"
	}
}

// OK reports whether the stream can still be read from or written to.
func (s State) OK() bool {
	return s == StateGood
}
