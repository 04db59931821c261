package imm

type U4 struct{ raw uint32 }

type U8 struct{ raw uint32 }

type U12 struct{ raw uint32 }

type U32 struct{ raw uint32 }

type Immediate interface {
	U4 | U8 | U12 | U32
	Uint32() uint32
}

func New(v uint32) U32 { return U32{v} }

func Zero[I Immediate]() I {
	var zero I
	return zero
}

func (v U4) Uint32() uint32  { return v.raw }
func (v U8) Uint32() uint32  { return v.raw }
func (v U12) Uint32() uint32 { return v.raw }
func (v U32) Uint32() uint32 { return v.raw }

func (v U32) Low4() U4  { return U4{v.raw & 0xf} }
func (v U32) Low8() U8  { return U8{v.raw & 0xff} }
func (v U32) High8() U8 { return U8{v.raw >> 24} }

func (v U8) Concat4(rhs U4) U12 { return U12{(v.raw<<4 + rhs.raw) & 0xfff} }
