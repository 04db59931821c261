package main

import (
	"fmt"

	"imm"
)

// Assembles a 16-bit word from two bytes and slices it back apart.
func main() {
	upper := imm.New(0xAB).Low8()
	lower := imm.New(0xCD).Low8()
	word := upper.Concat8(lower)
	highNibble := word.High4()
	lowByte := word.Low8()

	fmt.Printf("word=0x%x high=%d low=0x%x\n", word.Uint32(), highNibble.Uint32(), lowByte.Uint32())
	fmt.Println(word, word.High8() == upper, lowByte == lower)
}
