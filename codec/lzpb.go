package codec

import "github.com/locpak/locpak/section"

// encodeGreedyStrategy implements "lzpb" and, when ext is set, "lzex"
// (spec.md S4.5): greedy one-growing chains via builder.extend, plus (for
// lzex) whole-sequence reuse by scanning the seq_tab written so far for an
// identical contiguous run.
func encodeGreedyStrategy(keysDesc []uint32, rows map[uint32]string, ext bool) (*SymbolTable, error) {
	b := newBuilder()

	if err := b.seedLeavesFromRows(rows); err != nil {
		return nil, err
	}

	strTab := make([]uint32, len(keysDesc))

	var seqTab []uint16

	for i, k := range keysDesc {
		text, ok := rows[k]
		if !ok || text == "" {
			strTab[i] = section.EmptyStringMarker

			continue
		}

		frag := greedyEncodeRow(b, toUTF16(text))
		frag = append(frag, 0)

		if ext {
			if offset, found := findSubrun(seqTab, frag); found {
				strTab[i] = uint32(offset)

				continue
			}
		}

		strTab[i] = uint32(len(seqTab))
		seqTab = append(seqTab, frag...)
	}

	seqTab = padSeqTab(seqTab)

	return &SymbolTable{StrTab: strTab, SeqTab: seqTab, SymTab: b.symTab}, nil
}

// findSubrun searches haystack for an occurrence of needle, returning the
// offset of the first match. Linear in len(haystack)*len(needle), matching
// spec.md S4.5's "at-most-linear-in-table-size search" characterization of
// the lzex reuse step.
func findSubrun(haystack, needle []uint16) (int, bool) {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return 0, false
	}

	for start := 0; start+len(needle) <= len(haystack); start++ {
		match := true

		for j, v := range needle {
			if haystack[start+j] != v {
				match = false

				break
			}
		}

		if match {
			return start, true
		}
	}

	return 0, false
}
