package main

import (
	"fmt"

	"imm"
	"imm/internal/rvimm"
)

// Decodes the immediates of a short RV32 listing and re-encodes them.
func main() {
	listing := []struct {
		text   string
		format rvimm.Format
		inst   uint32
	}{
		{"addi x1, x0, -1", rvimm.FormatI, 0xFFF00093},
		{"sw x2, -4(x1)", rvimm.FormatS, 0xFE20AE23},
		{"beq x0, x0, -8", rvimm.FormatB, 0xFE000CE3},
		{"lui x1, 0x12345", rvimm.FormatU, 0x123450B7},
		{"jal x1, -4", rvimm.FormatJ, 0xFFDFF0EF},
	}
	for _, line := range listing {
		off, err := rvimm.Offset(line.format, line.inst)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%-16s %s offset=%d\n", line.text, line.format, off)
	}

	b := rvimm.DecodeB(imm.New(0xFE000CE3))
	fmt.Println(b, rvimm.EncodeB(b).Uint32() == 0xFE000CE3&rvimm.FormatB.FieldMask())
}
