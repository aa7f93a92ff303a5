package dbor

// SizeOfInteger returns the number of bytes an IntegerValue encoding the
// unsigned magnitude value occupies: 1 byte inline for value < 24, then one
// more byte per additional 0x100-ish band of NaturalToken magnitude, up to
// 9 bytes for the largest 64-bit magnitudes.
func SizeOfInteger(value uint64) int {
	switch {
	case value < 24:
		return 1
	case value < 24+0x100:
		return 2
	case value < 24+0x10100:
		return 3
	case value < 24+0x1010100:
		return 4
	case value < 24+0x101010100:
		return 5
	case value < 24+0x10101010100:
		return 6
	case value < 24+0x1010101010100:
		return 7
	case value < 24+0x101010101010100:
		return 8
	default:
		return 9
	}
}

// SizeOfSignedInteger returns the number of bytes an IntegerValue encoding
// the signed value value occupies, mapping negative values onto the same
// magnitude space as SizeOfInteger (-(1+v) for the nonnegative magnitude v).
func SizeOfSignedInteger(value int64) int {
	if value < 0 {
		return SizeOfInteger(uint64(-(value + 1)))
	}
	return SizeOfInteger(uint64(value))
}

// SizeOfByteString returns the number of bytes a ByteStringValue encoding a
// byte string of stringSize bytes occupies: the length token plus the
// string itself, saturated at math.MaxInt64 instead of overflowing.
func SizeOfByteString(stringSize int) int {
	return AddSaturating(SizeOfInteger(uint64(stringSize)), stringSize)
}

// SizeOfUTF8String returns the number of bytes a Utf8StringValue encoding a
// UTF-8 string of stringSize bytes occupies. Same shape as SizeOfByteString;
// the two are identical because the length token encoding does not depend
// on the value's kind.
func SizeOfUTF8String(stringSize int) int {
	return AddSaturating(SizeOfInteger(uint64(stringSize)), stringSize)
}

// AddSaturating returns n+m, or the largest representable int if that sum
// would overflow.
func AddSaturating(n, m int) int {
	if m < maxInt-n {
		return m + n
	}
	return maxInt
}
