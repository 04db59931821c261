// Package imm provides width-tagged unsigned immediates for instruction
// encoders, decoders and other bit-packing code.
//
// An immediate of width N is a value of type UN (U1 through U32) whose low N
// bits are significant. Widths are part of the type, so a U4 and a U8 are
// never interchangeable; moving between widths goes through one of four
// method families whose availability is fixed at compile time:
//
//	v.Low4()       // U8 -> U4, the 4 least significant bits
//	v.High4()      // U8 -> U4, the 4 most significant bits
//	v.Extend16()   // U8 -> U16, same value
//	v.Concat4(r)   // U8, U4 -> U12, v high and r low
//
// Downcasts exist only to narrower widths, upcasts only to wider ones, and
// concatenation only where the summed width is at most 32. Asking for any
// other transition does not compile.
//
// Arbitrary bit patterns enter through New, which builds a U32. Every other
// value is derived from it or from Zero. All values are immutable, four bytes
// wide and safe to share between goroutines.
//
// Every construction path keeps the raw value below 2^N: downcasts and
// concatenation mask their result, and zero extension cannot set new bits.
package imm

//go:generate go run ./cmd/immtool gen -o imm_gen.go
