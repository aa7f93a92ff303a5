// Package dbor implements a decoder (and the encoder primitives needed to
// round-trip it) for DBOR, the Dense Binary Object Representation.
//
// DBOR is a compact, self-delimiting, type-tagged binary encoding of
// numbers, strings and containers, designed for embedded and
// resource-constrained systems. This package owns no I/O, starts no
// goroutines and allocates nothing beyond what a caller's own output
// parameters require: every decoder here operates on a caller-supplied
// []byte and returns typed values plus a ResultCode.
//
// # Values
//
// A Value is a non-owning view over a single well-formed, ill-formed or
// incomplete DBOR value inside a buffer. Construct one with NewValue and
// read it with its typed getters (Int64, Uint32, Float64, ByteString, ...).
// Every getter returns a ResultCode describing how faithfully its output
// represents the encoded object; ResultCode.OK means exact, anything else
// means the output was approximated, absent, incompatible or the input was
// malformed; see ResultCode's doc comment for the full taxonomy.
//
// # Sequences
//
// A buffer holding several concatenated values is read with a
// ValueSequence, which yields one Value per call to Next and never reads
// past the supplied capacity.
//
// # Strings
//
// String is a non-owning view of a byte slice intended as UTF-8. Its
// methods validate and, for Value.UTF8String, truncate at a code point
// boundary rather than in the middle of a multi-byte sequence.
package dbor

import "math"

// init verifies that IEEE-754 binary32/binary64 bit-casts round-trip
// through math.Float32bits/Float64bits, which this package's decoders rely
// on and never check again. It does not check the byte width: Go's byte is
// always 8 bits. Every target Go actually runs on passes the check; it
// exists so a port to an exotic platform fails loudly at package load
// instead of producing silently wrong floats.
func init() {
	if math.Float64frombits(math.Float64bits(1.5)) != 1.5 {
		panic("dbor: platform does not round-trip IEEE-754 binary64 bit patterns")
	}
	if math.Float32frombits(math.Float32bits(1.5)) != 1.5 {
		panic("dbor: platform does not round-trip IEEE-754 binary32 bit patterns")
	}
}
