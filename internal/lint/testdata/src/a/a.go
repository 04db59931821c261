package a

import "imm"

type field struct{ bits uint32 }

func (f field) Low4() field { return field{f.bits & 0xf} }

func sink(imm.U8) {}

func encode(raw uint32) imm.U12 {
	word := imm.New(raw)
	word.Low4()        // want `result of imm.U32.Low4 call is not used`
	imm.New(raw)       // want `result of imm.New call is not used`
	imm.Zero[imm.U4]() // want `result of imm.Zero call is not used`

	hi := word.High8()
	hi.Concat4(word.Low4()) // want `result of imm.U8.Concat4 call is not used`

	_ = word.Low8()
	sink(word.Low8())
	word.Low4().Uint32() // want `result of imm.U4.Uint32 call is not used`

	f := field{raw}
	f.Low4()

	return hi.Concat4(word.Low4())
}
