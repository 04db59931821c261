package imm

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"imm/internal/captable"
)

var immTypes = []reflect.Type{
	nil,
	reflect.TypeFor[U1](), reflect.TypeFor[U2](), reflect.TypeFor[U3](), reflect.TypeFor[U4](),
	reflect.TypeFor[U5](), reflect.TypeFor[U6](), reflect.TypeFor[U7](), reflect.TypeFor[U8](),
	reflect.TypeFor[U9](), reflect.TypeFor[U10](), reflect.TypeFor[U11](), reflect.TypeFor[U12](),
	reflect.TypeFor[U13](), reflect.TypeFor[U14](), reflect.TypeFor[U15](), reflect.TypeFor[U16](),
	reflect.TypeFor[U17](), reflect.TypeFor[U18](), reflect.TypeFor[U19](), reflect.TypeFor[U20](),
	reflect.TypeFor[U21](), reflect.TypeFor[U22](), reflect.TypeFor[U23](), reflect.TypeFor[U24](),
	reflect.TypeFor[U25](), reflect.TypeFor[U26](), reflect.TypeFor[U27](), reflect.TypeFor[U28](),
	reflect.TypeFor[U29](), reflect.TypeFor[U30](), reflect.TypeFor[U31](), reflect.TypeFor[U32](),
}

var transitionPrefixes = []string{"Low", "High", "Extend", "Concat"}

func isTransition(name string) bool {
	for _, p := range transitionPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// TestMethodSetsMatchTable checks that every legal transition is a method and
// that no method outside the table exists.
func TestMethodSetsMatchTable(t *testing.T) {
	for w := 1; w <= captable.MaxWidth; w++ {
		typ := immTypes[w]
		if typ.Name() != captable.TypeName(w) {
			t.Fatalf("immTypes[%d] is %s", w, typ.Name())
		}

		want := make(map[string]captable.Transition)
		for _, tr := range captable.For(w) {
			want[tr.Method()] = tr
		}

		seen := 0
		for i := 0; i < typ.NumMethod(); i++ {
			m := typ.Method(i)
			if !isTransition(m.Name) {
				continue
			}
			tr, ok := want[m.Name]
			if !ok {
				t.Fatalf("%s.%s is not in the capability table", typ.Name(), m.Name)
			}
			seen++
			checkSignature(t, typ, m, tr)
		}
		if seen != len(want) {
			t.Fatalf("%s has %d transition methods, table lists %d", typ.Name(), seen, len(want))
		}
	}
}

func checkSignature(t *testing.T, typ reflect.Type, m reflect.Method, tr captable.Transition) {
	t.Helper()
	ft := m.Type // receiver is the first input
	if ft.NumOut() != 1 || ft.Out(0) != immTypes[tr.To] {
		t.Fatalf("%s.%s returns %v, want %s", typ.Name(), m.Name, ft, captable.TypeName(tr.To))
	}
	switch tr.Kind {
	case captable.Concat:
		if ft.NumIn() != 2 || ft.In(1) != immTypes[tr.Operand] {
			t.Fatalf("%s.%s takes %v, want a %s operand", typ.Name(), m.Name, ft, captable.TypeName(tr.Operand))
		}
	default:
		if ft.NumIn() != 1 {
			t.Fatalf("%s.%s takes arguments: %v", typ.Name(), m.Name, ft)
		}
	}
}

// immOf builds an immediate of the given width from raw through the public
// downcast path.
func immOf(t *testing.T, width int, raw uint32) reflect.Value {
	t.Helper()
	full := reflect.ValueOf(New(raw))
	if width == captable.MaxWidth {
		return full
	}
	return full.MethodByName(captable.Transition{Kind: captable.Low, From: captable.MaxWidth, To: width}.Method()).Call(nil)[0]
}

func rawOf(v reflect.Value) uint32 {
	return v.Interface().(interface{ Uint32() uint32 }).Uint32()
}

func samples(rng *rand.Rand, width int) []uint32 {
	mask := captable.Mask(width)
	out := []uint32{0, 1 & mask, mask, mask >> 1}
	for i := 0; i < 4; i++ {
		out = append(out, rng.Uint32()&mask)
	}
	return out
}

// TestEveryTransitionSemantics runs every generated method against the
// masking rule it is supposed to implement.
func TestEveryTransitionSemantics(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, tr := range captable.All() {
		for _, a := range samples(rng, tr.From) {
			recv := immOf(t, tr.From, a)
			method := recv.MethodByName(tr.Method())
			if !method.IsValid() {
				t.Fatalf("missing method %s", tr)
			}

			var b uint32
			var args []reflect.Value
			if tr.Kind == captable.Concat {
				b = rng.Uint32() & captable.Mask(tr.Operand)
				args = []reflect.Value{immOf(t, tr.Operand, b)}
			}
			got := rawOf(method.Call(args)[0])

			var want uint32
			switch tr.Kind {
			case captable.Low:
				want = a & captable.Mask(tr.To)
			case captable.High:
				want = a >> (tr.From - tr.To)
			case captable.Extend:
				want = a
			case captable.Concat:
				want = a<<tr.Operand | b
			}
			if got != want {
				t.Fatalf("%s on a=%#x b=%#x: got %#x, want %#x", tr, a, b, got, want)
			}
			if got > captable.Mask(tr.To) {
				t.Fatalf("%s produced %#x outside %d bits", tr, got, tr.To)
			}
		}
	}
}

// TestConcatSplitRoundTrip checks that High and Low on a concatenation give
// back both halves for every width pair.
func TestConcatSplitRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for f := 1; f < captable.MaxWidth; f++ {
		for _, cat := range captable.Concats(f) {
			r := cat.Operand
			for _, a := range samples(rng, f) {
				b := rng.Uint32() & captable.Mask(r)
				joined := immOf(t, f, a).MethodByName(cat.Method()).Call([]reflect.Value{immOf(t, r, b)})[0]

				high := captable.Transition{Kind: captable.High, From: cat.To, To: f}
				low := captable.Transition{Kind: captable.Low, From: cat.To, To: r}
				if got := rawOf(joined.MethodByName(high.Method()).Call(nil)[0]); got != a {
					t.Fatalf("%s then %s: got %#x, want %#x", cat, high, got, a)
				}
				if got := rawOf(joined.MethodByName(low.Method()).Call(nil)[0]); got != b {
					t.Fatalf("%s then %s: got %#x, want %#x", cat, low, got, b)
				}
			}
		}
	}
}
