// Package hash implements the two wire-format identifier hashes used by
// locpak's stringtable: the case-insensitive name hash and its
// filename-segment variant. Both are part of the binary contract (the packed
// key table stores these 32-bit values directly), so unlike locpak's other
// hashing needs they cannot be delegated to a general-purpose hash library —
// see internal/symhash for the one that can.
package hash

// Name computes the 32-bit identifier hash of name, case-folding ASCII
// letters to lower-case before hashing.
//
// Algorithm (spec-mandated, bit-for-bit): h starts at 5381; for each byte c
// of the lower-cased name, h = h + (h<<5) + sign_extend_8_to_32(c). The sign
// extension is part of the contract: a source byte of 0xC4 contributes
// 0xFFFFFFC4 to the running sum, not 0x000000C4.
func Name(name string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(name); i++ {
		h = update(h, lower(name[i]))
	}

	return h
}

// FilenameHash computes the Name hash of path after stripping any "%...."
// debug-variant segment: a run starting with '%' and ending at the next '.'
// is removed, so "item%debug.ext" hashes identically to "item.ext".
func FilenameHash(path string) uint32 {
	var h uint32 = 5381
	i := 0
	for i < len(path) {
		c := path[i]
		if c == '%' {
			j := i + 1
			for j < len(path) && path[j] != '.' {
				j++
			}
			i = j

			continue
		}

		h = update(h, lower(c))
		i++
	}

	return h
}

func update(h uint32, c byte) uint32 {
	// int8(c) sign-extends the byte to int32 before the uint32 conversion,
	// matching the C++ reference's signed-char contribution.
	signExtended := uint32(int32(int8(c)))

	return h + (h << 5) + signExtended
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}

	return c
}
