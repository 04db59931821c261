package rvimm

import (
	"math/rand/v2"
	"testing"

	"imm"
)

// Reference decoders written with plain shifts and masks.

func signExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

func refI(inst uint32) int32 { return signExtend(inst>>20, 12) }

func refS(inst uint32) int32 {
	low := (inst >> 7) & 0x1F
	hi := (inst >> 25) & 0x7F
	return signExtend((hi<<5)|low, 12)
}

func refB(inst uint32) int32 {
	v := ((inst>>31)&1)<<12 |
		((inst>>25)&0x3F)<<5 |
		((inst>>8)&0xF)<<1 |
		((inst>>7)&1)<<11
	return signExtend(v, 13)
}

func refU(inst uint32) int32 { return int32(inst & 0xFFFFF000) }

func refJ(inst uint32) int32 {
	v := ((inst>>31)&1)<<20 |
		((inst>>21)&0x3FF)<<1 |
		((inst>>20)&1)<<11 |
		((inst>>12)&0xFF)<<12
	return signExtend(v, 21)
}

var references = map[Format]func(uint32) int32{
	FormatI: refI,
	FormatS: refS,
	FormatB: refB,
	FormatU: refU,
	FormatJ: refJ,
}

func instructionSamples() []uint32 {
	rng := rand.New(rand.NewPCG(5, 6))
	out := []uint32{0, 0xFFFFFFFF, 0x80000000, 0x7FFFFFFF, 0x00000F80, 0xFE000000}
	for i := 0; i < 512; i++ {
		out = append(out, rng.Uint32())
	}
	return out
}

func TestOffsetMatchesReference(t *testing.T) {
	for f, ref := range references {
		for _, inst := range instructionSamples() {
			got, err := Offset(f, inst)
			if err != nil {
				t.Fatalf("Offset(%s, %#x): %v", f, inst, err)
			}
			if want := ref(inst); got != want {
				t.Fatalf("Offset(%s, %#08x) = %d, want %d", f, inst, got, want)
			}
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, inst := range instructionSamples() {
		word := imm.New(inst)
		cases := []struct {
			f   Format
			got imm.U32
		}{
			{FormatI, EncodeI(DecodeI(word))},
			{FormatS, EncodeS(DecodeS(word))},
			{FormatB, EncodeB(DecodeB(word))},
			{FormatU, EncodeU(DecodeU(word))},
			{FormatJ, EncodeJ(DecodeJ(word))},
		}
		for _, tc := range cases {
			if want := inst & tc.f.FieldMask(); tc.got.Uint32() != want {
				t.Fatalf("%s round trip of %#08x: got %#08x, want %#08x", tc.f, inst, tc.got.Uint32(), want)
			}
		}
	}
}

func TestDecodeKnownInstructions(t *testing.T) {
	cases := []struct {
		name string
		f    Format
		inst uint32
		want int32
	}{
		{"addi x1, x0, -1", FormatI, 0xFFF00093, -1},
		{"addi x1, x0, 42", FormatI, 0x02A00093, 42},
		{"sw x2, 8(x1)", FormatS, 0x0020A423, 8},
		{"sw x2, -4(x1)", FormatS, 0xFE20AE23, -4},
		{"beq x0, x0, -8", FormatB, 0xFE000CE3, -8},
		{"beq x0, x0, 16", FormatB, 0x00000863, 16},
		{"lui x1, 0x12345", FormatU, 0x123450B7, 0x12345000},
		{"jal x0, 2048", FormatJ, 0x0010006F, 2048},
		{"jal x1, -4", FormatJ, 0xFFDFF0EF, -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Offset(tc.f, tc.inst)
			if err != nil {
				t.Fatalf("Offset: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Offset(%s, %#08x) = %d, want %d", tc.f, tc.inst, got, tc.want)
			}
		})
	}
}

func TestBranchOffsetsAreEven(t *testing.T) {
	for _, inst := range instructionSamples() {
		word := imm.New(inst)
		if DecodeB(word).Low1().Bool() || DecodeJ(word).Low1().Bool() {
			t.Fatalf("branch and jump offsets must have a zero low bit (inst %#08x)", inst)
		}
	}
}

func TestSignExtend(t *testing.T) {
	if got := SignExtend(imm.New(0xFFF).Low12()); got != -1 {
		t.Fatalf("SignExtend(0xfff as U12) = %d, want -1", got)
	}
	if got := SignExtend(imm.New(0x7FF).Low12()); got != 2047 {
		t.Fatalf("SignExtend(0x7ff as U12) = %d, want 2047", got)
	}
	if got := SignExtend(imm.New(0x80000000)); got != -1<<31 {
		t.Fatalf("SignExtend(0x80000000) = %d", got)
	}
	if got := SignExtend(imm.New(1).Low1()); got != -1 {
		t.Fatalf("SignExtend(1 as U1) = %d, want -1", got)
	}
}

func TestOffsetUnknownFormat(t *testing.T) {
	if _, err := Offset(Format(9), 0); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if Format(9).FieldMask() != 0 {
		t.Fatalf("expected empty field mask for unknown format")
	}
}
