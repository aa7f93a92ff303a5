package dbor

import "math"

// Value is a non-owning view of a single well-formed, ill-formed or
// incomplete DBOR value inside a buffer. The zero Value is the incomplete,
// zero-size value (no buffer assigned).
//
// A Value is complete if and only if its buffer was long enough to
// determine both the type and the declared size of the value, and
// contained that many bytes. An incomplete Value's buffer is truncated to
// whatever capacity was actually available.
type Value struct {
	buffer   []byte
	complete bool
}

// NewValue returns the first value in buffer. If buffer is empty the
// result is the zero Value.
func NewValue(buffer []byte) Value {
	if len(buffer) == 0 {
		return Value{}
	}

	size := sizeOfValueIn(buffer)
	complete := true
	if size == 0 || size > len(buffer) {
		size = len(buffer)
		complete = false
	}
	return Value{buffer: buffer[:size], complete: complete}
}

// Buffer returns the bytes of v, nil if and only if v.Size() == 0.
func (v Value) Buffer() []byte {
	return v.buffer
}

// Size returns len(v.Buffer()).
func (v Value) Size() int {
	return len(v.buffer)
}

// IsComplete reports whether v's buffer was long enough to determine both
// v's type and its full declared size.
func (v Value) IsComplete() bool {
	return v.complete
}

func (v Value) firstByte() (byte, bool) {
	if len(v.buffer) == 0 {
		return 0, false
	}
	return v.buffer[0], true
}

// IsNone reports whether v is the None value (single byte 0xFF).
func (v Value) IsNone() bool {
	b, ok := v.firstByte()
	return ok && classify(b) == kindNone
}

// IsNumberlike reports whether v is MinusZero, MinusInfinity, Infinity or
// None: a single-byte value that is not an ordinary IntegerValue,
// BinaryRationalValue or DecimalRationalValue.
func (v Value) IsNumberlike() bool {
	b, ok := v.firstByte()
	if !ok {
		return false
	}
	switch classify(b) {
	case kindMinusZero, kindMinusInfinity, kindInfinity, kindNone:
		return true
	default:
		return false
	}
}

// IsNumber reports whether v is an IntegerValue, BinaryRationalValue or
// DecimalRationalValue (well-formed, ill-formed or incomplete).
func (v Value) IsNumber() bool {
	b, ok := v.firstByte()
	if !ok {
		return false
	}
	switch classify(b) {
	case kindIntegerNonNeg, kindIntegerNeg, kindBinaryRational, kindDecimalRational:
		return true
	default:
		return false
	}
}

// IsString reports whether v is a ByteStringValue or Utf8StringValue.
func (v Value) IsString() bool {
	b, ok := v.firstByte()
	if !ok {
		return false
	}
	switch classify(b) {
	case kindByteString, kindUtf8String:
		return true
	default:
		return false
	}
}

// IsContainer reports whether v is a SequenceValue, DictionaryValue or
// AllocatedValue.
func (v Value) IsContainer() bool {
	b, ok := v.firstByte()
	if !ok {
		return false
	}
	switch classify(b) {
	case kindSequence, kindDictionary, kindAllocated:
		return true
	default:
		return false
	}
}

// Kind returns the name of v's DBOR type, e.g. "IntegerValue" or "None".
// It returns "" for the zero Value.
func (v Value) Kind() string {
	b, ok := v.firstByte()
	if !ok {
		return ""
	}
	return classify(b).String()
}

// integerMagnitude decodes the magnitude and sign of v, assuming v is an
// IntegerValue. ok is false if the NaturalToken payload is ill-formed.
func (v Value) integerMagnitude() (mag uint64, neg bool, ok bool) {
	b := v.buffer[0]
	n := b & 0x1F
	if n < 0x18 {
		return uint64(n), classify(b) == kindIntegerNeg, true
	}
	s1 := tokenSize(b)
	m, decOk := decodeNaturalToken64(v.buffer[1:s1], 23)
	if !decOk {
		return 0, false, false
	}
	return m, classify(b) == kindIntegerNeg, true
}

// uint64Value decodes v as an unsigned integer with full uint64 range,
// before any target-width narrowing.
func (v Value) uint64Value() (uint64, ResultCode) {
	if !v.complete {
		return 0, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return 0, NoObject
	}
	switch classify(b) {
	case kindNone:
		return 0, NoObject
	case kindMinusZero:
		return 0, OK
	case kindInfinity:
		return math.MaxUint64, ApproxExtreme
	case kindMinusInfinity:
		return 0, ApproxExtreme
	case kindIntegerNeg:
		return 0, ApproxExtreme
	case kindIntegerNonNeg:
		mag, _, decOk := v.integerMagnitude()
		if !decOk {
			return 0, Illformed
		}
		return mag, OK
	case kindBinaryRational, kindDecimalRational:
		return 0, Incompatible
	default:
		return 0, Incompatible
	}
}

// int64Value decodes v as a signed integer with full int64 range, before
// any target-width narrowing.
func (v Value) int64Value() (int64, ResultCode) {
	if !v.complete {
		return 0, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return 0, NoObject
	}
	switch classify(b) {
	case kindNone:
		return 0, NoObject
	case kindMinusZero:
		return 0, OK
	case kindInfinity:
		return math.MaxInt64, ApproxExtreme
	case kindMinusInfinity:
		return math.MinInt64, ApproxExtreme
	case kindIntegerNonNeg:
		mag, _, decOk := v.integerMagnitude()
		if !decOk {
			return 0, Illformed
		}
		if mag > math.MaxInt64 {
			return math.MaxInt64, ApproxExtreme
		}
		return int64(mag), OK
	case kindIntegerNeg:
		mag, _, decOk := v.integerMagnitude()
		if !decOk {
			return 0, Illformed
		}
		if mag > uint64(math.MaxInt64) {
			return math.MinInt64, ApproxExtreme
		}
		neg := -int64(mag) - 1
		return neg, OK
	case kindBinaryRational, kindDecimalRational:
		return 0, Incompatible
	default:
		return 0, Incompatible
	}
}

func narrowUint(v uint64, max uint64) (uint64, ResultCode) {
	if v > max {
		return max, ApproxExtreme
	}
	return v, OK
}

func narrowInt(v int64, min, max int64) (int64, ResultCode) {
	if v < min {
		return min, ApproxExtreme
	}
	if v > max {
		return max, ApproxExtreme
	}
	return v, OK
}

func worstOf(a, b ResultCode) ResultCode {
	if b > a {
		return b
	}
	return a
}

// Uint8 decodes v as an IntegerValue in the range 0..255.
func (v Value) Uint8() (uint8, ResultCode) {
	u, code := v.uint64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowUint(u, math.MaxUint8)
	return uint8(n), worstOf(code, narrowCode)
}

// Uint16 decodes v as an IntegerValue in the range 0..65535.
func (v Value) Uint16() (uint16, ResultCode) {
	u, code := v.uint64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowUint(u, math.MaxUint16)
	return uint16(n), worstOf(code, narrowCode)
}

// Uint32 decodes v as an IntegerValue in the range 0..4294967295.
func (v Value) Uint32() (uint32, ResultCode) {
	u, code := v.uint64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowUint(u, math.MaxUint32)
	return uint32(n), worstOf(code, narrowCode)
}

// Uint64 decodes v as an IntegerValue in the range 0..2^64-1.
func (v Value) Uint64() (uint64, ResultCode) {
	return v.uint64Value()
}

// Int8 decodes v as an IntegerValue in the range -128..127.
func (v Value) Int8() (int8, ResultCode) {
	i, code := v.int64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowInt(i, math.MinInt8, math.MaxInt8)
	return int8(n), worstOf(code, narrowCode)
}

// Int16 decodes v as an IntegerValue in the range -32768..32767.
func (v Value) Int16() (int16, ResultCode) {
	i, code := v.int64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowInt(i, math.MinInt16, math.MaxInt16)
	return int16(n), worstOf(code, narrowCode)
}

// Int32 decodes v as an IntegerValue in the range -2147483648..2147483647.
func (v Value) Int32() (int32, ResultCode) {
	i, code := v.int64Value()
	if code != OK && code != ApproxExtreme {
		return 0, code
	}
	n, narrowCode := narrowInt(i, math.MinInt32, math.MaxInt32)
	return int32(n), worstOf(code, narrowCode)
}

// Int64 decodes v as an IntegerValue in the range -2^63..2^63-1.
func (v Value) Int64() (int64, ResultCode) {
	return v.int64Value()
}

// Float32 decodes v as a BinaryRationalValue, MinusZero, Infinity or
// MinusInfinity, into a binary32 float.
func (v Value) Float32() (float32, ResultCode) {
	if !v.complete {
		return 0, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return 0, NoObject
	}
	switch classify(b) {
	case kindNone:
		return 0, NoObject
	case kindMinusZero:
		return float32(math.Copysign(0, -1)), OK
	case kindInfinity:
		return float32(math.Inf(1)), OK
	case kindMinusInfinity:
		return float32(math.Inf(-1)), OK
	case kindIntegerNonNeg, kindIntegerNeg, kindDecimalRational:
		return 0, Incompatible
	case kindBinaryRational:
		k := int(b & 7)
		payload := v.buffer[1:]
		if k <= 3 {
			return math.Float32frombits(decodeBinaryRational32(payload, k)), OK
		}
		bits64 := decodeBinaryRational64(payload, k)
		if k == 7 {
			if f, code, reserved := binaryRational64Reserved(bits64); reserved {
				return float32(f), code
			}
		}
		f64 := math.Float64frombits(bits64)
		if math.Abs(f64) >= 0x1p128 {
			return float32(math.Copysign(math.Inf(1), f64)), ApproxExtreme
		}
		f32 := float32(f64)
		if math.Abs(float64(f32)) > math.Abs(f64) {
			f32 = math.Nextafter32(f32, 0)
		}
		if float64(f32) != f64 {
			return f32, ApproxImprecise
		}
		return f32, OK
	default:
		return 0, Incompatible
	}
}

// binaryRational64Reserved reports whether bits64, the binary64 bit pattern
// decoded from a k==7 BinaryRationalValue payload, hits a pattern DBOR
// reserves rather than encodes: an all-zero exponent and mantissa (zero has
// its own dedicated encoding and is never reached via BinaryRationalValue)
// or a saturated exponent (out of the representable range).
func binaryRational64Reserved(bits64 uint64) (f float64, code ResultCode, reserved bool) {
	exp := (bits64 >> 52) & 0x7FF
	mantissa := bits64 & (1<<52 - 1)
	negative := bits64>>63 != 0
	switch {
	case exp == 0 && mantissa == 0:
		return math.NaN(), Illformed, true
	case exp == 0x7FF:
		if negative {
			return math.Inf(-1), ApproxExtreme, true
		}
		return math.Inf(1), ApproxExtreme, true
	default:
		return 0, OK, false
	}
}

// Float64 decodes v as a BinaryRationalValue, MinusZero, Infinity or
// MinusInfinity, into a binary64 float.
func (v Value) Float64() (float64, ResultCode) {
	if !v.complete {
		return 0, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return 0, NoObject
	}
	switch classify(b) {
	case kindNone:
		return 0, NoObject
	case kindMinusZero:
		return math.Copysign(0, -1), OK
	case kindInfinity:
		return math.Inf(1), OK
	case kindMinusInfinity:
		return math.Inf(-1), OK
	case kindIntegerNonNeg, kindIntegerNeg, kindDecimalRational:
		return 0, Incompatible
	case kindBinaryRational:
		k := int(b & 7)
		payload := v.buffer[1:]
		if k <= 3 {
			bits64 := widenBinaryRational32To64(decodeBinaryRational32(payload, k))
			return math.Float64frombits(bits64), OK
		}
		bits64 := decodeBinaryRational64(payload, k)
		if k == 7 {
			if f, code, reserved := binaryRational64Reserved(bits64); reserved {
				return f, code
			}
		}
		return math.Float64frombits(bits64), OK
	default:
		return 0, Incompatible
	}
}

// Decimal decodes v into mantissa*10^exp10. A DecimalRationalValue decodes
// directly; an IntegerValue decodes to (v, 0); MinusZero to (0, 0); and
// MinusInfinity/Infinity to (-math.MaxInt32 or math.MaxInt32, math.MaxInt32).
// A mantissa that does not fit int32 is clamped to math.MaxInt32 or
// math.MinInt32 and reported as ApproxImprecise, with exp10 unchanged.
func (v Value) Decimal() (mantissa int32, exp10 int32, code ResultCode) {
	if !v.complete {
		return 0, 0, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return 0, 0, NoObject
	}
	switch classify(b) {
	case kindNone:
		return 0, 0, NoObject
	case kindIntegerNonNeg, kindIntegerNeg:
		m, mCode := v.int64Value()
		if mCode == Illformed || mCode == Incomplete {
			return 0, 0, mCode
		}
		if m > math.MaxInt32 {
			return math.MaxInt32, 0, ApproxImprecise
		}
		if m < math.MinInt32 {
			return math.MinInt32, 0, ApproxImprecise
		}
		return int32(m), 0, OK
	case kindBinaryRational:
		return 0, 0, Incompatible
	case kindMinusZero:
		return 0, 0, ApproxImprecise
	case kindMinusInfinity:
		return -math.MaxInt32, math.MaxInt32, ApproxExtreme
	case kindInfinity:
		return math.MaxInt32, math.MaxInt32, ApproxExtreme
	case kindDecimalRational:
		return v.decodeDecimalRational()
	default:
		return 0, 0, Incompatible
	}
}

func (v Value) decodeDecimalRational() (mantissa int32, exp10 int32, code ResultCode) {
	b := v.buffer[0]
	s1 := tokenSize(b)

	var e int64
	if b < 0xE0 {
		// 0xD0..0xDF: exponent magnitude is a NaturalToken, offset so its
		// smallest value is 9, one past the largest inline magnitude (8).
		eMag, decOk := decodeNaturalToken64(v.buffer[1:s1], 8)
		if !decOk {
			return 0, 0, Illformed
		}
		e = int64(eMag)
		if b&0x08 != 0 {
			e = -e
		}
	} else {
		// 0xE0..0xEF: exponent magnitude is (b&7)+1, sign in bit 3 of b.
		e = int64(b&7) + 1
		if b&0x08 != 0 {
			e = -e
		}
	}

	if len(v.buffer) < s1+1 {
		return 0, 0, Illformed
	}
	mantissaValue := NewValue(v.buffer[s1:])
	m, mCode := mantissaValue.int64Value()

	if e > math.MaxInt32 || e < math.MinInt32 {
		return 0, 0, Unsupported
	}

	if mCode == ApproxExtreme {
		if m > 0 {
			return math.MaxInt32, int32(e), ApproxImprecise
		}
		return math.MinInt32, int32(e), ApproxImprecise
	}
	if mCode != OK {
		return 0, 0, Illformed
	}
	if m > math.MaxInt32 {
		return math.MaxInt32, int32(e), ApproxImprecise
	}
	if m < math.MinInt32 {
		return math.MinInt32, int32(e), ApproxImprecise
	}
	return int32(m), int32(e), OK
}

// ByteString decodes v as a ByteStringValue, returning its raw bytes.
func (v Value) ByteString() ([]byte, ResultCode) {
	if !v.complete {
		return nil, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return nil, NoObject
	}
	if classify(b) == kindNone {
		return nil, NoObject
	}
	if classify(b) != kindByteString {
		return nil, Incompatible
	}
	return v.stringPayload(), OK
}

// UTF8String decodes v as a Utf8StringValue of at most maxSize bytes,
// returning a String view of its payload. If the payload is longer than
// maxSize, the view is truncated at the last code point boundary at or
// before maxSize and ApproxExtreme is reported.
func (v Value) UTF8String(maxSize int) (String, ResultCode) {
	if !v.complete {
		return String{}, Incomplete
	}
	b, ok := v.firstByte()
	if !ok {
		return String{}, NoObject
	}
	if classify(b) == kindNone {
		return String{}, NoObject
	}
	if classify(b) != kindUtf8String {
		return String{}, Incompatible
	}
	payload := v.stringPayload()
	if len(payload) <= maxSize {
		return NewString(payload), OK
	}
	offset := OffsetOfLastCodepointIn(payload[:maxSize+1])
	return NewString(payload[:offset]), ApproxExtreme
}

// stringPayload returns the bytes following v's length token, assuming v
// is a ByteStringValue or Utf8StringValue.
func (v Value) stringPayload() []byte {
	b := v.buffer[0]
	if isInlineLengthToken(b) {
		return v.buffer[1:]
	}
	s1 := tokenSize(b)
	return v.buffer[s1:]
}

// Compare returns -1, 0 or 1 as v is less than, equal to or greater than
// other. Completeness is compared first: an incomplete value sorts below
// every complete value, whatever its length. Values of equal completeness
// are then compared by buffer length, then byte by byte from the first
// byte. Value{} is the least element of this order. The first byte is not
// compared ahead of the length, and the bytes are not compared from the
// tail.
func (v Value) Compare(other Value) int {
	if v.complete != other.complete {
		if !v.complete {
			return -1
		}
		return 1
	}
	if len(v.buffer) != len(other.buffer) {
		if len(v.buffer) < len(other.buffer) {
			return -1
		}
		return 1
	}
	for i := range v.buffer {
		if v.buffer[i] != other.buffer[i] {
			if v.buffer[i] < other.buffer[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
