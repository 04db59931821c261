package main

import "imm"

func main() {
	nibble := imm.New(0xF).Low4()
	_ = nibble.Low8()
}
