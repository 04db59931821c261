package main

import "imm"

func main() {
	wide := imm.New(0).Low20()
	_ = wide.Concat13(imm.Zero[imm.U13]())
}
