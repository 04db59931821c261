package main

import (
	"fmt"

	"imm"
)

type rType struct {
	opcode imm.U7
	rd     imm.U5
	funct3 imm.U3
	rs1    imm.U5
	rs2    imm.U5
	funct7 imm.U7
}

func split(inst imm.U32) rType {
	return rType{
		opcode: inst.Low7(),
		rd:     inst.Low12().High5(),
		funct3: inst.Low15().High3(),
		rs1:    inst.Low20().High5(),
		rs2:    inst.Low25().High5(),
		funct7: inst.High7(),
	}
}

func join(r rType) imm.U32 {
	return r.funct7.Concat5(r.rs2).Concat5(r.rs1).Concat3(r.funct3).Concat5(r.rd).Concat7(r.opcode)
}

// Splits R-type instructions into their fields and reassembles them.
func main() {
	for _, raw := range []uint32{0x00B50533, 0x40B50533} {
		r := split(imm.New(raw))
		fmt.Printf("opcode=%#x rd=%d funct3=%d rs1=%d rs2=%d funct7=%d\n",
			r.opcode.Uint32(), r.rd.Uint32(), r.funct3.Uint32(), r.rs1.Uint32(), r.rs2.Uint32(), r.funct7.Uint32())
		fmt.Printf("reassembled=0x%08x ok=%v\n", join(r).Uint32(), join(r).Equal(raw))
	}
}
