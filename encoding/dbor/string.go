package dbor

// CodePoint is a Unicode code point. A valid CodePoint lies in 0x0000..
// 0xD7FF or 0xE000..0x10FFFF; surrogate halves and values above 0x10FFFF
// are never valid.
type CodePoint uint32

// InvalidCodepoint is returned by the decoders below in place of any
// CodePoint that could not be determined.
const InvalidCodepoint CodePoint = 0xFFFFFFFF

// SizeOfUTF8ForCodepoint returns the number of bytes the UTF-8 encoding of
// c occupies, or 0 if c is not a valid code point.
func SizeOfUTF8ForCodepoint(c CodePoint) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	case c < 0x10000:
		if c >= 0xD800 && c <= 0xDFFF {
			return 0
		}
		return 3
	case c < 0x110000:
		return 4
	default:
		return 0
	}
}

// FirstCodepointIn returns the first well-formed UTF-8 encoded code point
// in p, and the number of bytes it occupies. It returns InvalidCodepoint if
// p is empty or does not start with a well-formed encoding; size is then 0
// for an empty p, or the number of bytes examined before the malformation
// was found (at least 1, at most min(4, len(p))).
func FirstCodepointIn(p []byte) (c CodePoint, size int) {
	if len(p) == 0 {
		return InvalidCodepoint, 0
	}

	first := p[0]
	if first < 0b10000000 {
		return CodePoint(first), 1
	}
	if first < 0b11000000 || first >= 0b11111000 {
		return InvalidCodepoint, 1
	}

	// first      h      n
	// ---------  -----  --
	// 110xxxxx   0010   2
	// 1110xxxx   0001   3
	// 11110xxx   0000   4
	h := (^uint(first) >> 4) & (uint(first) >> 5)
	n := 4 - int(h)

	if n > len(p) {
		return InvalidCodepoint, len(p)
	}

	v := CodePoint(first) & CodePoint(0x7F>>uint(n))
	i := 1
	for {
		b := p[i]
		if b&0xC0 != 0x80 {
			return InvalidCodepoint, i
		}
		v = v<<6 | CodePoint(b&0x3F)
		i++
		if i >= n {
			break
		}
	}

	if n != SizeOfUTF8ForCodepoint(v) {
		return InvalidCodepoint, n
	}
	return v, n
}

// OffsetOfLastCodepointIn returns the offset of the start of the last
// potential UTF-8 encoded code point in p: it walks back at most 3
// continuation bytes (10xxxxxx) from the end. It returns 0 if p is empty.
func OffsetOfLastCodepointIn(p []byte) int {
	if len(p) == 0 {
		return 0
	}

	offset := len(p) - 1
	n := 3
	if offset < n {
		n = offset
	}
	for n > 0 && p[offset]&0xC0 == 0x80 {
		offset--
		n--
	}
	return offset
}

// String is a non-owning view of a byte slice intended to hold a UTF-8
// encoded Unicode string. A nil or empty slice is a valid, empty String.
type String struct {
	buffer []byte
}

// NewString wraps buffer as a String without copying it.
func NewString(buffer []byte) String {
	return String{buffer: buffer}
}

// Bytes returns the underlying buffer.
func (s String) Bytes() []byte {
	return s.buffer
}

// Check reports whether s is empty or a well-formed UTF-8 string, along
// with the code point count and range. On Illformed, count is 0 and both
// code points are InvalidCodepoint.
func (s String) Check() (code ResultCode, count int, minCodePoint, maxCodePoint CodePoint) {
	if len(s.buffer) == 0 {
		return OK, 0, InvalidCodepoint, InvalidCodepoint
	}
	return s.checkNonEmpty()
}

func (s String) checkNonEmpty() (code ResultCode, count int, minCodePoint, maxCodePoint CodePoint) {
	minc := InvalidCodepoint
	var maxc CodePoint

	p := s.buffer
	n := 0
	for {
		c, size := FirstCodepointIn(p)
		if c == InvalidCodepoint {
			return Illformed, 0, InvalidCodepoint, InvalidCodepoint
		}
		if minc > c {
			minc = c
		}
		if maxc < c {
			maxc = c
		}
		p = p[size:]
		n++
		if len(p) == 0 {
			return OK, n, minc, maxc
		}
	}
}

// GetASCII returns s's buffer if it is empty or a well-formed UTF-8 string
// of ASCII-range code points: 0x00..0x7F, or 0x20..0x7E if printableOnly.
// On RANGE the string is well-formed but has code points outside that
// range; on Illformed it is not well-formed UTF-8; in either case the
// returned slice is nil.
func (s String) GetASCII(printableOnly bool) (code ResultCode, ascii []byte) {
	if len(s.buffer) == 0 {
		return OK, nil
	}

	code, _, minc, maxc := s.checkNonEmpty()
	if code != OK {
		return code, nil
	}

	inRange := maxc < 0x80
	if printableOnly {
		inRange = minc >= 0x20 && maxc < 0x7F
	}
	if !inRange {
		return Range, nil
	}
	return OK, s.buffer
}

// GetUTF8 returns s's buffer if it is empty or a well-formed UTF-8 string
// whose code points all lie in minCodePoint..maxCodePoint. On RANGE the
// string is well-formed but has a code point outside that range; on
// Illformed it is not well-formed UTF-8.
func (s String) GetUTF8(minCodePoint, maxCodePoint CodePoint) (code ResultCode, utf8 []byte) {
	if len(s.buffer) == 0 {
		return OK, nil
	}

	code, _, minc, maxc := s.checkNonEmpty()
	if code != OK {
		return code, nil
	}
	if minc < minCodePoint || maxc > maxCodePoint {
		return Range, nil
	}
	return OK, s.buffer
}
