package dbor

// tokenSize returns the size in bytes, 1..9, of the token whose first byte
// is b. This is a pure function of b alone: the token's own length is
// always self-evident from its first byte, independent of what follows.
//
//	000xxxxx  IntegerValue, v >= 0
//	001xxxxx  IntegerValue, v < 0
//	010xxxxx  ByteStringValue
//	011xxxxx  Utf8StringValue
//	100xxxxx  SequenceValue
//	101xxxxx  DictionaryValue
//	11000yyy  AllocatedValue
//	11001yyy  BinaryRationalValue
//	1101xyyy  DecimalRationalValue(..., e), magnitude of e given by a
//	          trailing NaturalToken (sign x, |e| >= 9)
//	1110xeee  DecimalRationalValue(..., e), |e| = eee + 1 given directly
//	          (sign x, 1 <= |e| <= 8)
//	1111xxxx  MinimalToken (numberlike, none, reserved)
func tokenSize(b byte) int {
	if b >= 0xE0 || (b < 0xC0 && (b&0x1F) < 0x18) {
		return 1
	}
	return 2 + int(b&7)
}

// kind classifies the first byte of a DBOR value. It is total over 0x00..0xFF;
// kindReserved is returned for 0xF0..0xFB, which has no other defined kind.
type kind uint8

const (
	kindIntegerNonNeg kind = iota
	kindIntegerNeg
	kindByteString
	kindUtf8String
	kindSequence
	kindDictionary
	kindAllocated
	kindBinaryRational
	kindDecimalRational
	kindMinusZero
	kindMinusInfinity
	kindInfinity
	kindNone
	kindReserved
)

var kindNames = [...]string{
	kindIntegerNonNeg:   "IntegerValue",
	kindIntegerNeg:      "IntegerValue",
	kindByteString:      "ByteStringValue",
	kindUtf8String:      "Utf8StringValue",
	kindSequence:        "SequenceValue",
	kindDictionary:      "DictionaryValue",
	kindAllocated:       "AllocatedValue",
	kindBinaryRational:  "BinaryRationalValue",
	kindDecimalRational: "DecimalRationalValue",
	kindMinusZero:       "MinusZero",
	kindMinusInfinity:   "MinusInfinity",
	kindInfinity:        "Infinity",
	kindNone:            "None",
	kindReserved:        "Reserved",
}

func (k kind) String() string {
	return kindNames[k]
}

func classify(b byte) kind {
	switch {
	case b < 0x20:
		return kindIntegerNonNeg
	case b < 0x40:
		return kindIntegerNeg
	case b < 0x60:
		return kindByteString
	case b < 0x80:
		return kindUtf8String
	case b < 0xA0:
		return kindSequence
	case b < 0xC0:
		return kindDictionary
	case b < 0xC8:
		return kindAllocated
	case b < 0xD0:
		return kindBinaryRational
	case b < 0xF0:
		return kindDecimalRational
	case b < 0xFC:
		return kindReserved
	case b == 0xFC:
		return kindMinusZero
	case b == 0xFD:
		return kindMinusInfinity
	case b == 0xFE:
		return kindInfinity
	default: // 0xFF
		return kindNone
	}
}

// isInlineLengthToken reports whether b is a ByteString/Utf8String/
// Sequence/Dictionary token (0x40..0xBF) whose length is encoded inline in
// b itself (length < 24), needing no NaturalToken payload.
func isInlineLengthToken(b byte) bool {
	return b < 0xC0 && (b&0x1F) < 0x18
}

// sizeOfValueIn returns the size in bytes of the first complete value in
// p, or 0 if p does not contain enough bytes to determine that size (the
// size would depend on bytes beyond the end of p).
func sizeOfValueIn(p []byte) int {
	if len(p) == 0 {
		return 0
	}

	b := p[0]
	s1 := tokenSize(b)

	switch {
	case b < 0x40:
		// IntegerValue: the token is the entire value, inline or not.
		return s1

	case b < 0xC8:
		// ByteStringValue, Utf8StringValue, SequenceValue, DictionaryValue,
		// AllocatedValue: s1 covers the length token; length m is either
		// inline in b or a NaturalToken occupying the rest of the token.
		if isInlineLengthToken(b) {
			return s1 + int(b&0x1F)
		}
		if len(p) < s1 {
			return 0
		}
		m, ok := decodeNaturalToken64(p[1:s1], 23)
		if !ok {
			return 0
		}
		total := uint64(s1) + m
		if total > uint64(maxInt) {
			return 0
		}
		return int(total)

	case b < 0xD0:
		// BinaryRationalValue: token is the entire value.
		return s1

	case b < 0xF0:
		// DecimalRationalValue: s1 covers the exponent; a following
		// IntegerToken mantissa must be inspected to know the total size.
		if len(p) < s1+1 {
			return 0
		}
		follow := p[s1]
		if follow >= 0x40 {
			// Not an IntegerToken: ill-formed, second token not consumed.
			return s1
		}
		return s1 + tokenSize(follow)

	default:
		// Reserved, MinusZero, MinusInfinity, Infinity, None: single-byte
		// token is the entire (possibly kindless) value.
		return s1
	}
}

const maxInt = int(^uint(0) >> 1)
