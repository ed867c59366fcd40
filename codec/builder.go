package codec

import (
	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/internal/symhash"
	"github.com/locpak/locpak/section"
)

// builder accumulates a sym_tab shared across all rows of a column,
// enforcing the two hard ceilings from spec.md S3: at most
// section.MaxSymbols live entries, and chains no deeper than
// section.MaxDepth hops. Lookups are served by internal/symhash, an
// xxhash-backed (char, prevSymbolIndex) -> symbolIndex table distinct from
// the wire hash_name algorithm.
type builder struct {
	symTab []uint32
	table  *symhash.Table
	depth  []uint8
}

func newBuilder() *builder {
	return &builder{
		symTab: []uint32{0},
		table:  symhash.New(1024),
		depth:  []uint8{0},
	}
}

func (b *builder) full() bool {
	return len(b.symTab) >= section.MaxSymbols
}

func (b *builder) alloc(c uint16, prev uint16) (uint16, bool) {
	if b.full() {
		return 0, false
	}

	idx := uint16(len(b.symTab))
	b.symTab = append(b.symTab, uint32(c)<<16|uint32(prev))
	b.table.Set(c, prev, idx)
	b.depth = append(b.depth, b.depth[prev]+1)

	return idx, true
}

// ensureLeaf returns the leaf symbol (prev == 0) for c, allocating one if
// the table has room.
func (b *builder) ensureLeaf(c uint16) (uint16, bool) {
	if idx, ok := b.table.Get(c, 0); ok {
		return idx, true
	}

	return b.alloc(c, 0)
}

// seedLeavesFromRows pre-registers a leaf symbol for every distinct UTF-16
// code unit used anywhere in rows, before any chain growth or promotion
// begins. The reference C++ (original_source/genome/localization/
// stringtable.cpp, lzpb's pre-pass around line 1193) does the same: it
// reserves the whole column alphabet as unlinked leaves first, so that once
// sym_tab fills during growth, "restart from the leaf symbol for that
// character" (spec.md S4.5) always finds one instead of silently dropping
// the character. Fails only if the column's distinct alphabet alone cannot
// fit in the symbol table.
func (b *builder) seedLeavesFromRows(rows map[uint32]string) error {
	for _, text := range rows {
		if text == "" {
			continue
		}

		if err := b.seedLeavesFromUnits(toUTF16(text)); err != nil {
			return err
		}
	}

	return nil
}

// seedLeavesFromTexts is seedLeavesFromRows for callers that already hold
// the column's rows as decoded UTF-16 (tree/best, which need the same
// slices to build the suffix tree).
func (b *builder) seedLeavesFromTexts(texts [][]uint16) error {
	for _, units := range texts {
		if err := b.seedLeavesFromUnits(units); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) seedLeavesFromUnits(units []uint16) error {
	for _, c := range units {
		if _, ok := b.ensureLeaf(c); !ok {
			return errs.ErrSymbolTableFull
		}
	}

	return nil
}

// extend looks up or allocates the symbol reached by appending c after
// prev. It refuses to allocate past section.MaxDepth hops, signalling the
// caller to flush and restart instead.
func (b *builder) extend(prev uint16, c uint16) (uint16, bool) {
	if idx, ok := b.table.Get(c, prev); ok {
		return idx, true
	}

	if b.depth[prev]+1 > section.MaxDepth {
		return 0, false
	}

	return b.alloc(c, prev)
}

// greedyEncodeRow implements the lzpb growth rule shared by the lzpb, lzex,
// tree, and best strategies: extend the current symbol by each input
// character while an existing or newly allocatable chain covers it; flush
// and restart from a leaf when extension is refused (depth cap or table
// full).
func greedyEncodeRow(b *builder, units []uint16) []uint16 {
	var seq []uint16

	var cur uint16

	for _, c := range units {
		if cur == 0 {
			if idx, ok := b.ensureLeaf(c); ok {
				cur = idx
			}

			continue
		}

		if next, ok := b.extend(cur, c); ok {
			cur = next

			continue
		}

		seq = append(seq, cur)
		cur = 0

		if idx, ok := b.ensureLeaf(c); ok {
			cur = idx
		}
	}

	if cur != 0 {
		seq = append(seq, cur)
	}

	return seq
}

// ensureChain walks chain from a leaf, extending as far as the builder
// allows, and reports how many leading characters of chain it actually
// managed to fold into the returned symbol.
func ensureChain(b *builder, chain []uint16) (uint16, int) {
	if len(chain) == 0 {
		return 0, 0
	}

	idx, ok := b.ensureLeaf(chain[0])
	if !ok {
		return 0, 0
	}

	n := 1

	for _, c := range chain[1:] {
		next, ok := b.extend(idx, c)
		if !ok {
			break
		}

		idx = next
		n++
	}

	return idx, n
}
