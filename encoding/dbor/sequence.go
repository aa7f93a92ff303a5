package dbor

// ValueSequence is a forward-only cursor over zero or more DBOR values
// packed back-to-back in a buffer, such as the payload of a SequenceValue
// or DictionaryValue, or a whole file of concatenated top-level values.
//
//	seq := dbor.NewValueSequence(buffer)
//	for {
//		v, ok := seq.Next()
//		if !ok {
//			break
//		}
//		...
//	}
type ValueSequence struct {
	remaining []byte
}

// NewValueSequence returns a ValueSequence over buffer. buffer is not
// copied; the sequence's Next calls slice into it.
func NewValueSequence(buffer []byte) ValueSequence {
	return ValueSequence{remaining: buffer}
}

// AtEnd reports whether every value in the sequence has already been
// returned by Next.
func (s *ValueSequence) AtEnd() bool {
	return len(s.remaining) == 0
}

// RemainingSize returns the number of bytes not yet consumed by Next.
func (s *ValueSequence) RemainingSize() int {
	return len(s.remaining)
}

// Next returns the next value in the sequence and advances past it. ok is
// false once the sequence is exhausted, and Next then returns the zero
// Value without advancing further.
//
// An incomplete value (one whose declared size reaches past the end of
// the sequence's buffer) is still returned once, consuming whatever bytes
// remain; the following call then reports ok == false.
func (s *ValueSequence) Next() (Value, bool) {
	if len(s.remaining) == 0 {
		return Value{}, false
	}
	v := NewValue(s.remaining)
	s.remaining = s.remaining[v.Size():]
	return v, true
}

// Values drains s, returning every remaining value in order.
func (s *ValueSequence) Values() []Value {
	var out []Value
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
