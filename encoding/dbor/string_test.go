package dbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeOfUTF8ForCodepoint(t *testing.T) {
	assert.Equal(t, 1, SizeOfUTF8ForCodepoint(0x00))
	assert.Equal(t, 1, SizeOfUTF8ForCodepoint(0x7F))
	assert.Equal(t, 2, SizeOfUTF8ForCodepoint(0x80))
	assert.Equal(t, 2, SizeOfUTF8ForCodepoint(0x7FF))
	assert.Equal(t, 3, SizeOfUTF8ForCodepoint(0x800))
	assert.Equal(t, 0, SizeOfUTF8ForCodepoint(0xD800), "surrogate")
	assert.Equal(t, 0, SizeOfUTF8ForCodepoint(0xDFFF), "surrogate")
	assert.Equal(t, 3, SizeOfUTF8ForCodepoint(0xFFFF))
	assert.Equal(t, 4, SizeOfUTF8ForCodepoint(0x10000))
	assert.Equal(t, 4, SizeOfUTF8ForCodepoint(0x10FFFF))
	assert.Equal(t, 0, SizeOfUTF8ForCodepoint(0x110000))
}

func TestFirstCodepointInASCII(t *testing.T) {
	c, n := FirstCodepointIn([]byte("A"))
	assert.Equal(t, CodePoint('A'), c)
	assert.Equal(t, 1, n)
}

func TestFirstCodepointInMultiByte(t *testing.T) {
	// U+00E9 'é' = 0xC3 0xA9
	c, n := FirstCodepointIn([]byte{0xC3, 0xA9})
	assert.Equal(t, CodePoint(0xE9), c)
	assert.Equal(t, 2, n)

	// U+20AC '€' = 0xE2 0x82 0xAC
	c, n = FirstCodepointIn([]byte{0xE2, 0x82, 0xAC})
	assert.Equal(t, CodePoint(0x20AC), c)
	assert.Equal(t, 3, n)

	// U+1F600 (emoji) = 0xF0 0x9F 0x98 0x80
	c, n = FirstCodepointIn([]byte{0xF0, 0x9F, 0x98, 0x80})
	assert.Equal(t, CodePoint(0x1F600), c)
	assert.Equal(t, 4, n)
}

func TestFirstCodepointInEmpty(t *testing.T) {
	c, n := FirstCodepointIn(nil)
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 0, n)
}

func TestFirstCodepointInMalformed(t *testing.T) {
	// lone continuation byte, invalid lead.
	c, n := FirstCodepointIn([]byte{0x80})
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 1, n)

	// 2-byte lead but truncated.
	c, n = FirstCodepointIn([]byte{0xC3})
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 1, n)

	// 2-byte lead with bad continuation byte.
	c, n = FirstCodepointIn([]byte{0xC3, 0x41})
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 1, n)

	// overlong encoding of U+0041 as 2 bytes.
	c, n = FirstCodepointIn([]byte{0xC1, 0x81})
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 2, n)

	// surrogate half encoded as 3 bytes.
	c, n = FirstCodepointIn([]byte{0xED, 0xA0, 0x80})
	assert.Equal(t, InvalidCodepoint, c)
	assert.Equal(t, 3, n)
}

func TestOffsetOfLastCodepointIn(t *testing.T) {
	assert.Equal(t, 0, OffsetOfLastCodepointIn(nil))
	assert.Equal(t, 0, OffsetOfLastCodepointIn([]byte{'A'}))

	// ends mid-multibyte-sequence: walk back to the lead byte.
	euroTruncated := []byte{'x', 0xE2, 0x82}
	assert.Equal(t, 1, OffsetOfLastCodepointIn(euroTruncated))

	complete := []byte{'x', 0xE2, 0x82, 0xAC}
	assert.Equal(t, 1, OffsetOfLastCodepointIn(complete))
}

func TestStringCheckEmpty(t *testing.T) {
	code, count, minc, maxc := NewString(nil).Check()
	assert.Equal(t, OK, code)
	assert.Equal(t, 0, count)
	assert.Equal(t, InvalidCodepoint, minc)
	assert.Equal(t, InvalidCodepoint, maxc)
}

func TestStringCheckWellFormed(t *testing.T) {
	s := NewString([]byte("Ab€"))
	code, count, minc, maxc := s.Check()
	assert.Equal(t, OK, code)
	assert.Equal(t, 3, count)
	assert.Equal(t, CodePoint('A'), minc)
	assert.Equal(t, CodePoint(0x20AC), maxc)
}

func TestStringCheckIllformed(t *testing.T) {
	code, _, _, _ := NewString([]byte{0xFF}).Check()
	assert.Equal(t, Illformed, code)
}

func TestStringGetASCII(t *testing.T) {
	code, ascii := NewString([]byte("hello")).GetASCII(false)
	require.Equal(t, OK, code)
	assert.Equal(t, []byte("hello"), ascii)

	code, ascii = NewString([]byte("hi€")).GetASCII(false)
	assert.Equal(t, Range, code)
	assert.Nil(t, ascii)

	code, ascii = NewString([]byte("\x01")).GetASCII(true)
	assert.Equal(t, Range, code, "control character rejected when printableOnly")
	assert.Nil(t, ascii)

	code, ascii = NewString([]byte{0xFF}).GetASCII(false)
	assert.Equal(t, Illformed, code)
	assert.Nil(t, ascii)
}

func TestStringGetUTF8(t *testing.T) {
	code, utf8 := NewString([]byte("Ab€")).GetUTF8(0, 0x10FFFF)
	require.Equal(t, OK, code)
	assert.Equal(t, []byte("Ab€"), utf8)

	code, utf8 = NewString([]byte("Ab€")).GetUTF8(0, 0xFF)
	assert.Equal(t, Range, code)
	assert.Nil(t, utf8)
}
