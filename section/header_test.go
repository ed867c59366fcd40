package section_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locpak/locpak/errs"
	"github.com/locpak/locpak/section"
)

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{true, false} {
		h := section.Header{BigEndian: big}
		data := h.Bytes()
		require.Len(t, data, section.FileHeaderSize)

		var got section.Header
		require.NoError(t, got.Parse(data))
		assert.Equal(t, h, got)
	}
}

func TestHeader_BadSignature(t *testing.T) {
	data := []byte{'X', 'A', 'R', '5', section.EndianFlagLittle, 0, 0, 0}
	var h section.Header
	assert.ErrorIs(t, h.Parse(data), errs.ErrBadSignature)
}

func TestHeader_BadVersion(t *testing.T) {
	data := []byte{'G', 'A', 'R', '6', section.EndianFlagLittle, 0, 0, 0}
	var h section.Header
	assert.ErrorIs(t, h.Parse(data), errs.ErrBadVersion)
}

func TestHeader_BadEndian(t *testing.T) {
	data := []byte{'G', 'A', 'R', '5', 0x99, 0, 0, 0}
	var h section.Header
	assert.ErrorIs(t, h.Parse(data), errs.ErrBadEndian)
}

func TestHeader_Truncated(t *testing.T) {
	var h section.Header
	assert.ErrorIs(t, h.Parse([]byte{'G', 'A'}), errs.ErrTruncatedHeader)
}
