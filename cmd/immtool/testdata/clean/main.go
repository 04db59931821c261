package main

import (
	"fmt"

	"imm"
)

func main() {
	word := imm.New(0xCAFEF00D)
	opcode := word.Low7()
	fmt.Println(opcode, word.High12().Extend16())
}
