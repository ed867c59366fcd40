package section

import "github.com/locpak/locpak/errs"

// Header is the 8-byte file header at the very start of the container:
// 'G','A','R','5', endian_flag, 0, 0, 0 (spec.md S4.4). The fourth byte is a
// fixed literal '5' — part of the magic, not a variable version (the
// variable version lives in the stringtable header's own magic, see
// StringTableHeader).
type Header struct {
	BigEndian bool
}

// Parse validates and parses the 8-byte file header from data.
func (h *Header) Parse(data []byte) error {
	if len(data) < FileHeaderSize {
		return errs.ErrTruncatedHeader
	}

	if data[0] != FourCCG || data[1] != FourCCA || data[2] != FourCCR {
		return errs.ErrBadSignature
	}

	if data[3] != VersionByteMin {
		return errs.ErrBadVersion
	}

	switch data[4] {
	case EndianFlagBig:
		h.BigEndian = true
	case EndianFlagLittle:
		h.BigEndian = false
	default:
		return errs.ErrBadEndian
	}

	return nil
}

// Bytes serializes the file header.
func (h *Header) Bytes() []byte {
	b := make([]byte, FileHeaderSize)
	b[0] = FourCCG
	b[1] = FourCCA
	b[2] = FourCCR
	b[3] = VersionByteMin

	if h.BigEndian {
		b[4] = EndianFlagBig
	} else {
		b[4] = EndianFlagLittle
	}

	return b
}
