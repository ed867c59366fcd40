package codec

import (
	"sort"

	"github.com/locpak/locpak/section"
	"github.com/locpak/locpak/suffixtree"
)

// encodeTreeStrategy implements "tree" (spec.md S4.5): build a generalized
// suffix tree over every non-empty row, promote its highest-weight nodes
// into sym_tab chains (capped at section.MaxDepth, until section.MaxSymbols
// is reached), then encode each row by the same greedy chain-extension rule
// lzpb uses, now seeded with the promoted chains instead of growing from
// nothing.
func encodeTreeStrategy(keysDesc []uint32, rows map[uint32]string) (*SymbolTable, error) {
	b := newBuilder()

	_, texts := nonEmptyRows(keysDesc, rows)

	if err := b.seedLeavesFromTexts(texts); err != nil {
		return nil, err
	}

	tree := suffixtree.Build(texts)
	promoteFromTree(b, tree)

	return finishTreeLikeEncode(keysDesc, rows, b)
}

// encodeBestStrategy implements "best" (spec.md S4.5): run tree first; if
// its seq_tab came out shorter than its sym_tab — a sign the per-node
// promotion wasted symbol slots relative to how much it shortened
// sequences — rerun with the char-anchored strategy instead.
func encodeBestStrategy(keysDesc []uint32, rows map[uint32]string) (*SymbolTable, error) {
	treeResult, err := encodeTreeStrategy(keysDesc, rows)
	if err != nil {
		return nil, err
	}

	if len(treeResult.SeqTab) >= len(treeResult.SymTab) {
		return treeResult, nil
	}

	b := newBuilder()

	_, texts := nonEmptyRows(keysDesc, rows)

	if err := b.seedLeavesFromTexts(texts); err != nil {
		return nil, err
	}

	tree := suffixtree.Build(texts)
	promoteFromTree(b, tree)

	return finishCharAnchoredEncode(keysDesc, rows, b, tree)
}

func finishTreeLikeEncode(keysDesc []uint32, rows map[uint32]string, b *builder) (*SymbolTable, error) {
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

		if offset, found := findSubrun(seqTab, frag); found {
			strTab[i] = uint32(offset)

			continue
		}

		strTab[i] = uint32(len(seqTab))
		seqTab = append(seqTab, frag...)
	}

	seqTab = padSeqTab(seqTab)

	return &SymbolTable{StrTab: strTab, SeqTab: seqTab, SymTab: b.symTab}, nil
}

type emission struct {
	pos int
	sym uint16
}

// finishCharAnchoredEncode implements the "best" fallback's char-anchored
// row encoding: for every uncovered interval of a row, find the position
// whose longest tree-backed match maximizes weight*length, fold that match
// into a (possibly newly grown) symbol, and recurse on the remaining
// prefix/suffix intervals. Ties and the global cross-interval ordering the
// reference implementation uses are approximated by resolving intervals
// breadth-first and reassembling by original position afterward, rather
// than maintaining one global priority queue.
func finishCharAnchoredEncode(keysDesc []uint32, rows map[uint32]string, b *builder, tree *suffixtree.Tree) (*SymbolTable, error) {
	strTab := make([]uint32, len(keysDesc))

	var seqTab []uint16

	for i, k := range keysDesc {
		text, ok := rows[k]
		if !ok || text == "" {
			strTab[i] = section.EmptyStringMarker

			continue
		}

		units := toUTF16(text)
		frag := charAnchoredEncodeRow(b, tree, units)
		frag = append(frag, 0)

		if offset, found := findSubrun(seqTab, frag); found {
			strTab[i] = uint32(offset)

			continue
		}

		strTab[i] = uint32(len(seqTab))
		seqTab = append(seqTab, frag...)
	}

	seqTab = padSeqTab(seqTab)

	return &SymbolTable{StrTab: strTab, SeqTab: seqTab, SymTab: b.symTab}, nil
}

func charAnchoredEncodeRow(b *builder, tree *suffixtree.Tree, units []uint16) []uint16 {
	type interval struct{ lo, hi int }

	var emits []emission

	queue := []interval{{0, len(units)}}

	for len(queue) > 0 {
		iv := queue[0]
		queue = queue[1:]

		if iv.lo >= iv.hi {
			continue
		}

		bestPos, bestLen, bestWeight := iv.lo, 0, -1

		for p := iv.lo; p < iv.hi; p++ {
			node, length := tree.LongestMatch(units[p:iv.hi])
			if length == 0 {
				continue
			}

			if length > section.MaxDepth {
				length = section.MaxDepth
			}

			w := tree.Weight(node)
			if bestWeight < 0 || w*length > bestWeight*bestLen {
				bestWeight, bestLen, bestPos = w, length, p
			}
		}

		if bestLen == 0 {
			for p := iv.lo; p < iv.hi; p++ {
				if idx, ok := b.ensureLeaf(units[p]); ok {
					emits = append(emits, emission{pos: p, sym: idx})
				}
			}

			continue
		}

		idx, actualLen := ensureChain(b, units[bestPos:bestPos+bestLen])
		if actualLen == 0 {
			if idx2, ok := b.ensureLeaf(units[bestPos]); ok {
				emits = append(emits, emission{pos: bestPos, sym: idx2})
			}

			actualLen = 1
		} else {
			emits = append(emits, emission{pos: bestPos, sym: idx})
		}

		queue = append(queue, interval{iv.lo, bestPos})
		queue = append(queue, interval{bestPos + actualLen, iv.hi})
	}

	sort.Slice(emits, func(i, j int) bool { return emits[i].pos < emits[j].pos })

	seq := make([]uint16, len(emits))
	for i, e := range emits {
		seq[i] = e.sym
	}

	return seq
}

func promoteFromTree(b *builder, tree *suffixtree.Tree) {
	type candidate struct {
		idx    int32
		weight int
		length int
	}

	var candidates []candidate

	tree.Walk(func(idx int32, n suffixtree.Node) {
		if idx == tree.Root() {
			return
		}

		w := tree.Weight(idx)
		if w < 2 {
			return
		}

		candidates = append(candidates, candidate{idx: idx, weight: w, length: tree.Length(idx, true)})
	})

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight > candidates[j].weight
		}

		return candidates[i].length > candidates[j].length
	})

	for _, c := range candidates {
		if b.full() {
			return
		}

		path := tree.Path(c.idx, section.MaxDepth)
		if len(path) == 0 {
			continue
		}

		ensureChain(b, path)
	}
}
