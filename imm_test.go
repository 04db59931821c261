package imm

import (
	"testing"
	"unsafe"
)

func TestNibbleConcatScenario(t *testing.T) {
	a := New(0b1010).Low4()
	b := New(0b0011).Low4()

	word := a.Concat4(b)
	if word.Uint32() != 163 {
		t.Fatalf("expected concat to produce 163, got %d", word.Uint32())
	}
	if got := word.Low4(); got != b || got.Uint32() != 3 {
		t.Fatalf("expected low nibble 3, got %v", got)
	}
	if got := word.High4(); got != a || got.Uint32() != 10 {
		t.Fatalf("expected high nibble 10, got %v", got)
	}
}

func TestFullWidthSlices(t *testing.T) {
	full := New(0xFFFFFFFF)
	if got := full.Low8().Uint32(); got != 0xFF {
		t.Fatalf("Low8 of all ones = %#x, want 0xff", got)
	}
	if got := full.High8().Uint32(); got != 0xFF {
		t.Fatalf("High8 of all ones = %#x, want 0xff", got)
	}
	if got := New(0x12345678).High8().Uint32(); got != 0x12 {
		t.Fatalf("High8 = %#x, want 0x12", got)
	}
	if got := New(0x12345678).Low12().Uint32(); got != 0x678 {
		t.Fatalf("Low12 = %#x, want 0x678", got)
	}
}

func TestNewKeepsEveryBit(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF} {
		if got := New(v).Uint32(); got != v {
			t.Fatalf("New(%#x).Uint32() = %#x", v, got)
		}
	}
}

func TestZero(t *testing.T) {
	if Zero[U1]().Uint32() != 0 || Zero[U17]().Uint32() != 0 || Zero[U32]().Uint32() != 0 {
		t.Fatalf("expected zero immediates to hold 0")
	}
	if Zero[U9]() != (U9{}) {
		t.Fatalf("expected Zero to equal the zero value")
	}
	if Zero[U5]().Width() != 5 {
		t.Fatalf("expected Zero[U5] to report width 5")
	}
}

func TestZeroIsNeutralInConcat(t *testing.T) {
	b := New(0xAB).Low8()
	if got, want := Zero[U4]().Concat8(b), b.Extend12(); got != want {
		t.Fatalf("zero high half: got %v, want %v", got, want)
	}

	a := New(0x5).Low3()
	shifted := a.Concat5(Zero[U5]())
	if shifted.Uint32() != a.Uint32()<<5 {
		t.Fatalf("zero low half: got %#x, want %#x", shifted.Uint32(), a.Uint32()<<5)
	}
}

func TestExtendPreservesValue(t *testing.T) {
	v := New(0x3FF).Low10()
	if v.Extend11().Uint32() != 0x3FF || v.Extend32().Uint32() != 0x3FF {
		t.Fatalf("expected zero extension to keep 0x3ff")
	}
	if v.Extend16().Low10() != v {
		t.Fatalf("expected Low to undo Extend")
	}
}

func TestBoolMapping(t *testing.T) {
	if !Zero[U1]().EqualBool(false) || Zero[U1]().EqualBool(true) {
		t.Fatalf("expected zero U1 to equal false only")
	}
	if Zero[U1]().Bool() {
		t.Fatalf("expected zero U1 to read as false")
	}

	one := New(1).Low1()
	if !one.EqualBool(true) || one.EqualBool(false) {
		t.Fatalf("expected set U1 to equal true only")
	}
	if !one.Bool() {
		t.Fatalf("expected set U1 to read as true")
	}
	if New(0xFFFFFFFE).Low1().Bool() || !New(0xFFFFFFFE).High1().Bool() {
		t.Fatalf("expected Low1/High1 to pick the edge bits")
	}
}

func TestMalformedBoolMatchesNeither(t *testing.T) {
	// Not reachable through the exported API; pins down the documented answer.
	bad := U1{raw: 2}
	if bad.EqualBool(true) || bad.EqualBool(false) {
		t.Fatalf("expected malformed U1 to equal neither boolean")
	}
	if bad.Bool() {
		t.Fatalf("expected malformed U1 to read as false")
	}
}

func TestConcatMasksOutputWidth(t *testing.T) {
	// A malformed low operand corrupts the high field but never escapes the
	// output width.
	bad := U4{raw: 0x1F}
	got := New(0xF).Low4().Concat4(bad)
	if got.Uint32() != 0x0F {
		t.Fatalf("expected (0xf<<4 + 0x1f) & 0xff = 0x0f, got %#x", got.Uint32())
	}
	if got.Uint32() >= 1<<8 {
		t.Fatalf("concat escaped its width: %#x", got.Uint32())
	}
}

func TestHighMasksMalformedInput(t *testing.T) {
	bad := U8{raw: 0x1F0}
	if got := bad.High4().Uint32(); got != 0xF {
		t.Fatalf("expected High4 to mask to 4 bits, got %#x", got)
	}
}

func TestEqual(t *testing.T) {
	a := New(7).Low3()
	b := New(7).Low5()
	if !Equal(a, b) {
		t.Fatalf("expected equal raw values across widths")
	}
	if Equal(a, New(8).Low5()) {
		t.Fatalf("expected different raw values to differ")
	}
	if !a.Equal(7) || a.Equal(8) {
		t.Fatalf("expected Equal against plain integers to compare raw values")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{New(0xDEADBEEF).String(), "u32(0xdeadbeef)"},
		{New(163).Low8().String(), "u8(0xa3)"},
		{Zero[U1]().String(), "u1(0x0)"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("String() = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestRepresentationIsOneWord(t *testing.T) {
	if unsafe.Sizeof(U1{}) != 4 || unsafe.Sizeof(U13{}) != 4 || unsafe.Sizeof(U32{}) != 4 {
		t.Fatalf("expected immediates to occupy exactly one uint32")
	}
}
