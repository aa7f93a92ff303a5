package dbor

import "strings"

// ResultCode describes how faithfully a decoder's output represents the
// DBOR-encoded object it was asked to read. The zero value, OK, means an
// exact result; every other value names a specific way the result fell
// short. Values are bit flags (see ResultCodeSet) ordered from least to
// most severe, matching the order they are declared in.
type ResultCode uint8

const (
	// OK is the zero value: the output represents the encoded object exactly.
	OK ResultCode = 0

	// ApproxImprecise means the output is a representable approximation of
	// the object, rounded towards zero.
	ApproxImprecise ResultCode = 1 << 0

	// ApproxExtreme means the output was saturated to the minimum or
	// maximum of the representable range because the object lies outside it,
	// or, for strings, truncated at a code point boundary to fit a
	// caller-supplied maximum size.
	ApproxExtreme ResultCode = 1 << 1

	// Range means the object exists and is well-formed but lies outside a
	// caller-supplied acceptance range.
	Range ResultCode = 1 << 2

	// NoObject means the input represents None (the absent value).
	NoObject ResultCode = 1 << 3

	// Incompatible means the input is well-formed but of a type the getter
	// does not accept.
	Incompatible ResultCode = 1 << 4

	// Unsupported means the input is well-formed but carries a sub-field
	// outside the getter's working precision.
	Unsupported ResultCode = 1 << 5

	// Illformed means the token bytes violate an encoding invariant.
	Illformed ResultCode = 1 << 6

	// Incomplete means the buffer ends before a determinable value is complete.
	Incomplete ResultCode = 1 << 7
)

var resultCodeNames = [...]struct {
	code ResultCode
	name string
}{
	{ApproxImprecise, "APPROX_IMPRECISE"},
	{ApproxExtreme, "APPROX_EXTREME"},
	{Range, "RANGE"},
	{NoObject, "NO_OBJECT"},
	{Incompatible, "INCOMPATIBLE"},
	{Unsupported, "UNSUPPORTED"},
	{Illformed, "ILLFORMED"},
	{Incomplete, "INCOMPLETE"},
}

// String returns the code's canonical name, e.g. "ILLFORMED". OK is "OK".
func (c ResultCode) String() string {
	if c == OK {
		return "OK"
	}
	for _, e := range resultCodeNames {
		if e.code == c {
			return e.name
		}
	}
	return ResultCodeSet(c).String()
}

// Set returns the ResultCodeSet containing exactly this code (or the empty
// set, for OK).
func (c ResultCode) Set() ResultCodeSet {
	return ResultCodeSet(c)
}

// ResultCodeSet is a set of ResultCode values other than OK, packed as a
// bitset. The empty set (ResultCodeSetNone) corresponds to OK.
type ResultCodeSet uint8

const (
	// ResultCodeSetNone is the empty set: "not ok" results is empty.
	ResultCodeSetNone ResultCodeSet = 0
	// ResultCodeSetAll is the set of every defined ResultCode other than OK.
	ResultCodeSetAll ResultCodeSet = 0xFF
)

// Union returns the set of codes present in s or in other.
func (s ResultCodeSet) Union(other ResultCodeSet) ResultCodeSet {
	return s | other
}

// UnionCode returns s with c added.
func (s ResultCodeSet) UnionCode(c ResultCode) ResultCodeSet {
	return s | ResultCodeSet(c)
}

// Intersect returns the set of codes present in both s and other.
func (s ResultCodeSet) Intersect(other ResultCodeSet) ResultCodeSet {
	return s & other
}

// Difference returns the set of codes present in s but not in other.
func (s ResultCodeSet) Difference(other ResultCodeSet) ResultCodeSet {
	return s &^ other
}

// IsOK reports whether s is the empty set.
func (s ResultCodeSet) IsOK() bool {
	return s == ResultCodeSetNone
}

// IsOKExcept reports whether s, with every code in exceptions cleared, is empty.
func (s ResultCodeSet) IsOKExcept(exceptions ResultCodeSet) bool {
	return s.Difference(exceptions).IsOK()
}

// IsApprox reports whether s is non-empty and a subset of
// {ApproxImprecise, ApproxExtreme}.
func (s ResultCodeSet) IsApprox() bool {
	const approx = ResultCodeSet(ApproxImprecise | ApproxExtreme)
	return s != ResultCodeSetNone && s&^approx == 0
}

// Contains reports whether c is a member of s.
func (s ResultCodeSet) Contains(c ResultCode) bool {
	return c != OK && s&ResultCodeSet(c) != 0
}

// LeastSevereIn extracts the lowest-valued member of s, or OK if s is empty.
// Repeatedly removing the result lets a caller iterate the set from least
// to most severe.
func (s ResultCodeSet) LeastSevereIn() ResultCode {
	u := uint8(s)
	return ResultCode(u & -u)
}

// Codes returns the members of s in increasing severity order.
func (s ResultCodeSet) Codes() []ResultCode {
	var out []ResultCode
	for s != ResultCodeSetNone {
		c := s.LeastSevereIn()
		out = append(out, c)
		s = s.Difference(ResultCodeSet(c))
	}
	return out
}

// String renders s as e.g. "{ILLFORMED,INCOMPLETE}", or "{}" when empty.
func (s ResultCodeSet) String() string {
	if s == ResultCodeSetNone {
		return "{}"
	}
	names := make([]string, 0, 8)
	for _, c := range s.Codes() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Union combines two codes into the set containing both.
func Union(a, b ResultCode) ResultCodeSet {
	return ResultCodeSet(a).UnionCode(b)
}
