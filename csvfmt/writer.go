package csvfmt

import "strings"

// FormatRecords escapes every field and joins records with pipes and LF
// terminators, per spec.md S6.2's "on write, UTF-8 with Unix line endings."
func FormatRecords(records []Record) string {
	var b strings.Builder

	for _, rec := range records {
		for i, f := range rec {
			if i > 0 {
				b.WriteByte('|')
			}

			b.WriteString(Escape(f))
		}

		b.WriteByte('\n')
	}

	return b.String()
}
