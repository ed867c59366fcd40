package codec

import "github.com/locpak/locpak/section"

// encodeLeafStrategy implements both "none" and "fast" (spec.md S4.5): one
// symbol per code unit, never chained. "none" pre-populates a leaf for
// every representable code unit before encoding any row; "fast" allocates
// leaves lazily as distinct code units are first seen.
//
// sym_tab's length is capped at section.MaxSymbols including the reserved
// zero entry, so "none" can pre-populate at most MaxSymbols-1 code units.
// It pre-populates 0x0001 through 0xFFFF; code unit 0x0000 gets no symbol,
// since the decoder rejects a symbol whose character is zero.
func encodeLeafStrategy(keysDesc []uint32, rows map[uint32]string, preallocateAll bool) (*SymbolTable, error) {
	b := newBuilder()

	if preallocateAll {
		for c := 1; c < section.MaxSymbols; c++ {
			if _, ok := b.ensureLeaf(uint16(c)); !ok {
				break
			}
		}
	}

	strTab := make([]uint32, len(keysDesc))

	var seqTab []uint16

	for i, k := range keysDesc {
		text, ok := rows[k]
		if !ok || text == "" {
			strTab[i] = section.EmptyStringMarker

			continue
		}

		strTab[i] = uint32(len(seqTab))

		for _, c := range toUTF16(text) {
			if idx, ok := b.ensureLeaf(c); ok {
				seqTab = append(seqTab, idx)
			}
		}

		seqTab = append(seqTab, 0)
	}

	seqTab = padSeqTab(seqTab)

	return &SymbolTable{StrTab: strTab, SeqTab: seqTab, SymTab: b.symTab}, nil
}
