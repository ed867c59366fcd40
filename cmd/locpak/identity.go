package main

import (
	"strconv"
	"strings"

	"github.com/locpak/locpak/internal/hash"
)

// resolveIdentifier turns one CSV identifier cell (spec.md S6.2: "either a
// display name (possibly prefixed 'prefix:id') or an eight-character hex
// hash") into its key and, if any, the display name that should be
// registered for it. An eight-hex-digit cell is taken as the raw hash
// directly and carries no name of its own. A cell already containing a
// "prefix:id" colon is used as-is (save-csv writes cells in this already-
// prefixed form); a bare cell is combined with the source's prefix, if any,
// into "<prefix>:<id>" before hashing.
func resolveIdentifier(prefix, cell string) (key uint32, name string) {
	if h, ok := parseHexHash(cell); ok {
		return h, ""
	}

	full := cell
	if prefix != "" && !strings.Contains(cell, ":") {
		full = prefix + ":" + cell
	}

	return hash.Name(full), full
}

func parseHexHash(s string) (uint32, bool) {
	if len(s) != 8 {
		return 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}
