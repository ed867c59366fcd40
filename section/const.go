// Package section defines the fixed-size wire structures of the locpak
// binary container (spec.md S4.4): the file header, the stringtable header,
// the streamref offset/size pair, and the source/column record shapes.
// The two fixed headers parse and serialize themselves here (Header and
// StringTableHeader Parse/Bytes); the variable-length sections are read and
// written through package bincodec's generic Reader/Writer machinery.
package section

const (
	// FileHeaderSize is the size in bytes of the fixed file header.
	FileHeaderSize = 8

	// StringTableHeaderSize is the size in bytes of the stringtable header
	// that immediately follows the file header.
	StringTableHeaderSize = 36

	// StreamrefSize is the size in bytes of a single streamref (size, pos).
	StreamrefSize = 8

	// MaxDepth is the hard ceiling on symbol-chain length (spec.md S3/S4.5).
	MaxDepth = 33

	// MaxSymbols is the hard ceiling on live symbols per column (spec.md S3).
	MaxSymbols = 1 << 16

	// EmptyStringMarker is the str_tab sentinel meaning "row absent".
	EmptyStringMarker = 0xFFFFFFFF
)

// File header magic bytes and endian flags.
const (
	FourCCG = 'G'
	FourCCA = 'A'
	FourCCR = 'R'

	VersionByteMin = '5'

	EndianFlagBig    = 0x10
	EndianFlagLittle = 0x20
)

// Stringtable header magic.
const (
	MagicS = 'S'
	MagicT = 'T'
	MagicB = 'B'

	// StringTableVersionMin is the minimum accepted stringtable magic
	// version byte (spec.md S4.4: "version_byte >= 5 required").
	StringTableVersionMin = 5
)

// HeaderTotalSize is the combined size of the file header and the
// stringtable header; every valid streamref position must be >= this value.
const HeaderTotalSize = FileHeaderSize + StringTableHeaderSize

