// Package inicfg reads the loc.ini-style configuration consumed by the
// CLI's read-ini command (spec.md S6.1): a sequence of "prefix=..." and
// "csv=..." lines, where each non-empty csv= line names a source whose
// prefix is whatever prefix= value was last seen above it.
package inicfg

import "strings"

// Entry is one registered source: a CSV path paired with the prefix in
// effect when it was encountered.
type Entry struct {
	CSVPath string
	Prefix  string
}

// Parse reads text and returns one Entry per non-empty csv= line, in
// document order. Lines that are blank, or that don't start with "prefix="
// or "csv=", are ignored.
func Parse(text string) []Entry {
	var entries []Entry

	var prefix string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "prefix":
			prefix = value
		case "csv":
			if value != "" {
				entries = append(entries, Entry{CSVPath: value, Prefix: prefix})
			}
		}
	}

	return entries
}
