package main

import (
	"fmt"

	"imm"
)

func main() {
	word := imm.New(0xCAFEF00D)
	word.High8()
	fmt.Println(word.Low8())
}
