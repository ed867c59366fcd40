// Package namemap reads and writes the hash-to-name map consumed by the
// CLI's read-map/save-map commands (spec.md S6.1): one
// "<prefix:id>|<hashhex>" line per identifier (the prefix is optional).
package namemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/locpak/locpak/errs"
)

// Entry is one mapped identifier.
type Entry struct {
	Name string // display name, "prefix:id" or bare "id"
	Hash uint32
}

// Parse reads text and returns one Entry per non-blank line. Malformed
// lines (missing the '|' separator, or an unparsable hex hash) produce an
// errs.LineError naming the 1-based line number, per spec.md S7.
func Parse(source, text string) ([]Entry, error) {
	var entries []Entry

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, hexHash, ok := strings.Cut(line, "|")
		if !ok {
			return nil, &errs.LineError{Reason: errs.ErrMalformedIdentity, Source: source, Line: i + 1}
		}

		h, err := strconv.ParseUint(hexHash, 16, 32)
		if err != nil {
			return nil, &errs.LineError{Reason: errs.ErrMalformedIdentity, Source: source, Line: i + 1}
		}

		entries = append(entries, Entry{Name: name, Hash: uint32(h)})
	}

	return entries, nil
}

// Format serializes entries as "<name>|<hashhex>" lines, hash printed as
// lower-case 8-digit hex.
func Format(entries []Entry) string {
	var b strings.Builder

	for _, e := range entries {
		fmt.Fprintf(&b, "%s|%08x\n", e.Name, e.Hash)
	}

	return b.String()
}
