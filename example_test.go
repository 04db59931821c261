package imm_test

import (
	"fmt"

	"imm"
)

func Example() {
	hi := imm.New(0b1010).Low4()
	lo := imm.New(0b0011).Low4()

	b := hi.Concat4(lo)
	fmt.Println(b, b.Uint32())
	fmt.Println(b.High4().Uint32(), b.Low4().Uint32())
	// Output:
	// u8(0xa3) 163
	// 10 3
}

func ExampleU32_High8() {
	word := imm.New(0xFFFFFFFF)
	fmt.Println(word.High8(), word.Low8())
	// Output: u8(0xff) u8(0xff)
}

func ExampleU8_Extend16() {
	b := imm.New(0x80).Low8()
	fmt.Println(b.Extend16(), imm.Equal(b, b.Extend16()))
	// Output: u16(0x80) true
}

func ExampleZero() {
	lo := imm.New(0x34).Low8()
	fmt.Println(imm.Zero[imm.U8]().Concat8(lo) == lo.Extend16())
	// Output: true
}
