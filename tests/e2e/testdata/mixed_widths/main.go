package main

import "imm"

func main() {
	var field imm.U8 = imm.New(0x3).Low4()
	_ = field
}
