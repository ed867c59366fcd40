package csvfmt

import "strings"

// Record is one parsed CSV row: unescaped field values, in column order.
type Record []string

// ParseRecords splits text into pipe-delimited, LF-terminated records and
// unescapes every field. A trailing blank line (from a final LF) is
// dropped; CR immediately before LF is stripped so CRLF-terminated files
// parse the same as LF-terminated ones.
func ParseRecords(text string) []Record {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	records := make([]Record, len(lines))

	for i, line := range lines {
		fields := strings.Split(line, "|")
		for j, f := range fields {
			fields[j] = Unescape(f)
		}

		records[i] = fields
	}

	return records
}
