package main

import "imm"

func main() {
	hi := imm.New(0xA).Low4()
	_ = hi.Concat4(imm.New(0x3).Low8())
}
