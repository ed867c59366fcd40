package csvfmt

import "unicode/utf16"

// Decode converts raw file bytes to a UTF-8 Go string, per spec.md S6.2: a
// BOM always wins; absent a BOM, utfFlag requests a heuristic over the
// first two bytes to tell UTF-8 from UTF-16 LE/BE; otherwise the bytes are
// treated as Windows-1252.
//
// Full locale/codepage conversion is an explicit Non-goal (spec.md S1
// treats it as an external collaborator specified only at its interface);
// this covers exactly the cases the CLI's read-csv needs and no more.
func Decode(data []byte, utfFlag bool) string {
	switch {
	case hasUTF8BOM(data):
		return string(data[3:])
	case hasUTF16LEBOM(data):
		return decodeUTF16LE(data[2:])
	case hasUTF16BEBOM(data):
		return decodeUTF16BE(data[2:])
	case utfFlag && looksLikeUTF16LE(data):
		return decodeUTF16LE(data)
	case utfFlag && looksLikeUTF16BE(data):
		return decodeUTF16BE(data)
	case utfFlag:
		return string(data)
	default:
		return decodeWindows1252(data)
	}
}

// Encode converts s to UTF-8 bytes for writing, per spec.md S6.2's "on
// write, UTF-8 with Unix line endings" — no BOM, no conversion needed.
func Encode(s string) []byte {
	return []byte(s)
}

func hasUTF8BOM(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF
}

func hasUTF16LEBOM(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE
}

func hasUTF16BEBOM(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF
}

// looksLikeUTF16LE heuristically detects UTF-16LE text with no BOM: ASCII
// text encoded LE has a zero high byte on every other position, starting at
// offset 1.
func looksLikeUTF16LE(data []byte) bool {
	return len(data) >= 2 && data[0] != 0 && data[1] == 0
}

func looksLikeUTF16BE(data []byte) bool {
	return len(data) >= 2 && data[0] == 0 && data[1] != 0
}

func decodeUTF16LE(data []byte) string {
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}

	return string(utf16.Decode(units))
}

func decodeUTF16BE(data []byte) string {
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}

	return string(utf16.Decode(units))
}

// windows1252High maps bytes 0x80-0x9F to their Windows-1252 code points;
// 0xA0-0xFF are identical to Latin-1 and need no table.
var windows1252High = [32]rune{
	0x20AC, 0x0081, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008D, 0x017D, 0x008F,
	0x0090, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x009D, 0x017E, 0x0178,
}

func decodeWindows1252(data []byte) string {
	out := make([]rune, len(data))

	for i, b := range data {
		switch {
		case b < 0x80 || b >= 0xA0:
			out[i] = rune(b)
		default:
			out[i] = windows1252High[b-0x80]
		}
	}

	return string(out)
}
