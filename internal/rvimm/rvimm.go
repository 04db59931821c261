// Package rvimm extracts and places the immediate fields of RV32 instruction
// words using width-tagged immediates.
//
// Each DecodeX returns the immediate exactly as the ISA defines it, unsigned
// and with the implicit zero low bit of the B and J formats included. EncodeX
// is the inverse: it returns an instruction word whose only set bits are the
// immediate fields of the given format.
package rvimm

import (
	"fmt"

	"imm"
)

// Format is an RV32 instruction encoding format carrying an immediate.
type Format int

const (
	FormatI Format = iota
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FieldMask returns the instruction bits holding the immediate of f.
func (f Format) FieldMask() uint32 {
	switch f {
	case FormatI:
		return 0xFFF00000
	case FormatS, FormatB:
		return 0xFE000F80
	case FormatU, FormatJ:
		return 0xFFFFF000
	default:
		return 0
	}
}

// DecodeI returns inst[31:20].
func DecodeI(inst imm.U32) imm.U12 {
	return inst.High12()
}

// DecodeS returns inst[31:25] ++ inst[11:7].
func DecodeS(inst imm.U32) imm.U12 {
	return inst.High7().Concat5(inst.Low12().High5())
}

// DecodeB returns the 13-bit branch offset inst[31] ++ inst[7] ++
// inst[30:25] ++ inst[11:8] ++ 0.
func DecodeB(inst imm.U32) imm.U13 {
	b12 := inst.High1()
	b11 := inst.Low8().High1()
	b10to5 := inst.High7().Low6()
	b4to1 := inst.Low12().High4()
	return b12.Concat1(b11).Concat6(b10to5).Concat4(b4to1).Concat1(imm.Zero[imm.U1]())
}

// DecodeU returns inst[31:12] with the low 12 bits cleared.
func DecodeU(inst imm.U32) imm.U32 {
	return inst.High20().Concat12(imm.Zero[imm.U12]())
}

// DecodeJ returns the 21-bit jump offset inst[31] ++ inst[19:12] ++ inst[20]
// ++ inst[30:21] ++ 0.
func DecodeJ(inst imm.U32) imm.U21 {
	b20 := inst.High1()
	b19to12 := inst.High20().Low8()
	b11 := inst.High12().Low1()
	b10to1 := inst.High11().Low10()
	return b20.Concat8(b19to12).Concat1(b11).Concat10(b10to1).Concat1(imm.Zero[imm.U1]())
}

// EncodeI places v in inst[31:20].
func EncodeI(v imm.U12) imm.U32 {
	return v.Concat20(imm.Zero[imm.U20]())
}

// EncodeS places v[11:5] in inst[31:25] and v[4:0] in inst[11:7].
func EncodeS(v imm.U12) imm.U32 {
	return v.High7().
		Concat13(imm.Zero[imm.U13]()).
		Concat5(v.Low5()).
		Concat7(imm.Zero[imm.U7]())
}

// EncodeB places a branch offset. Bit 0 of v is not encodable and is dropped.
func EncodeB(v imm.U13) imm.U32 {
	b12 := v.High1()
	b11 := v.High2().Low1()
	b10to5 := v.Low11().High6()
	b4to1 := v.Low5().High4()
	return b12.Concat6(b10to5).
		Concat13(imm.Zero[imm.U13]()).
		Concat4(b4to1).
		Concat1(b11).
		Concat7(imm.Zero[imm.U7]())
}

// EncodeU places v[31:12] in inst[31:12]; the low 12 bits of v are dropped.
func EncodeU(v imm.U32) imm.U32 {
	return v.High20().Concat12(imm.Zero[imm.U12]())
}

// EncodeJ places a jump offset. Bit 0 of v is not encodable and is dropped.
func EncodeJ(v imm.U21) imm.U32 {
	b20 := v.High1()
	b19to12 := v.High9().Low8()
	b11 := v.Low12().High1()
	b10to1 := v.Low11().High10()
	return b20.Concat10(b10to1).
		Concat1(b11).
		Concat8(b19to12).
		Concat12(imm.Zero[imm.U12]())
}

// SignExtend interprets the top bit of v as a sign bit.
func SignExtend[I imm.Immediate](v I) int32 {
	shift := 32 - v.Width()
	return int32(v.Uint32()<<shift) >> shift
}

// Offset decodes the immediate of inst in format f and sign-extends it.
func Offset(f Format, inst uint32) (int32, error) {
	word := imm.New(inst)
	switch f {
	case FormatI:
		return SignExtend(DecodeI(word)), nil
	case FormatS:
		return SignExtend(DecodeS(word)), nil
	case FormatB:
		return SignExtend(DecodeB(word)), nil
	case FormatU:
		return SignExtend(DecodeU(word)), nil
	case FormatJ:
		return SignExtend(DecodeJ(word)), nil
	default:
		return 0, fmt.Errorf("rvimm: unknown format %s", f)
	}
}
