// Package codec implements the five column-compression strategies and
// shared decoder from spec.md S4.5: each strategy fills the same
// str_tab/seq_tab/sym_tab shape (spec.md S3), differing only in how
// aggressively they grow and reuse symbol chains.
package codec

import (
	"unicode/utf16"

	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/format"
	"github.com/locpak/locpak/section"
)

// SymbolTable is one packed column: the three flat arrays spec.md S3
// defines, in descending-key order for StrTab.
type SymbolTable struct {
	StrTab []uint32
	SeqTab []uint16
	SymTab []uint32
}

// Encode packs rows (keyed by key hash) into a SymbolTable, processing keys
// in keysDesc order (which must already be descending, per spec.md S3).
// Keys absent from rows, or mapped to an empty string, decode to absent
// rows (str_tab entry section.EmptyStringMarker).
func Encode(keysDesc []uint32, rows map[uint32]string, strategy format.Strategy) (*SymbolTable, error) {
	switch strategy {
	case format.StrategyNone:
		return encodeLeafStrategy(keysDesc, rows, true)
	case format.StrategyFast:
		return encodeLeafStrategy(keysDesc, rows, false)
	case format.StrategyLZPB:
		return encodeGreedyStrategy(keysDesc, rows, false)
	case format.StrategyLZEX:
		return encodeGreedyStrategy(keysDesc, rows, true)
	case format.StrategyTree:
		return encodeTreeStrategy(keysDesc, rows)
	case format.StrategyBest:
		return encodeBestStrategy(keysDesc, rows)
	default:
		return nil, errs.ErrInvalidLevel
	}
}

func toUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func fromUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}

func padSeqTab(seqTab []uint16) []uint16 {
	if len(seqTab) == 0 {
		return []uint16{0, 0}
	}

	if len(seqTab)%2 != 0 {
		seqTab = append(seqTab, 0)
	}

	return seqTab
}

func nonEmptyRows(keysDesc []uint32, rows map[uint32]string) (order []uint32, texts [][]uint16) {
	for _, k := range keysDesc {
		text, ok := rows[k]
		if !ok || text == "" {
			continue
		}

		order = append(order, k)
		texts = append(texts, toUTF16(text))
	}

	return order, texts
}

// Decode reverses a SymbolTable into a row map keyed by the same keysDesc
// positions, per spec.md S4.5's decoding algorithm and CorruptTable error
// set.
func Decode(st *SymbolTable, keysDesc []uint32) (map[uint32]string, error) {
	if len(st.StrTab) != len(keysDesc) {
		return nil, &errs.CorruptTableError{Reason: errs.ErrBadOffset}
	}

	out := make(map[uint32]string, len(keysDesc))

	for i, key := range keysDesc {
		p := st.StrTab[i]
		if p == section.EmptyStringMarker {
			continue
		}

		text, err := decodeRow(st, p)
		if err != nil {
			return nil, err
		}

		out[key] = text
	}

	return out, nil
}

func decodeRow(st *SymbolTable, start uint32) (string, error) {
	if int(start) >= len(st.SeqTab) {
		return "", &errs.CorruptTableError{Reason: errs.ErrBadSequenceIndex}
	}

	var units []uint16

	p := start

	for {
		if int(p) >= len(st.SeqTab) {
			return "", &errs.CorruptTableError{Reason: errs.ErrUnterminatedSequence}
		}

		s := st.SeqTab[p]
		if s == 0 {
			break
		}

		chars, err := expandSymbol(st.SymTab, s)
		if err != nil {
			return "", err
		}

		units = append(units, chars...)
		p++
	}

	return fromUTF16(units), nil
}

func expandSymbol(symTab []uint32, sym uint16) ([]uint16, error) {
	var rev []uint16

	s := sym
	hops := 0

	for s != 0 {
		if int(s) >= len(symTab) {
			return nil, &errs.CorruptTableError{Reason: errs.ErrBadSymbolIndex}
		}

		entry := symTab[s]
		ch := uint16(entry >> 16)
		prev := uint16(entry)

		if ch == 0 {
			return nil, &errs.CorruptTableError{Reason: errs.ErrNullCharInSymbol}
		}

		rev = append(rev, ch)

		hops++
		if hops > section.MaxDepth {
			return nil, &errs.CorruptTableError{Reason: errs.ErrChainTooDeep}
		}

		s = prev
	}

	out := make([]uint16, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}

	return out, nil
}
