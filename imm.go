package imm

import "fmt"

// New returns the 32-bit immediate holding v. It is the only constructor that
// accepts an arbitrary bit pattern.
func New(v uint32) U32 {
	return U32{v}
}

// Zero returns the all-zero immediate of type I. It is the same value as the
// zero value of I.
func Zero[I Immediate]() I {
	var zero I
	return zero
}

// Equal reports whether a and b hold the same raw value, regardless of width.
func Equal[A, B Immediate](a A, b B) bool {
	return a.Uint32() == b.Uint32()
}

// Bool reports whether v is set. A U1 only ever holds 0 or 1; any other raw
// value reads as false.
func (v U1) Bool() bool {
	return v.raw == 1
}

// EqualBool reports whether v holds the bit pattern of b. When the raw value
// is neither 0 nor 1 the result is false for both true and false.
func (v U1) EqualBool(b bool) bool {
	return (v.raw == 1 && b) || (v.raw == 0 && !b)
}

func format(width int, raw uint32) string {
	return fmt.Sprintf("u%d(%#x)", width, raw)
}
