package captable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableCounts(t *testing.T) {
	counts := make(map[Kind]int)
	for _, tr := range All() {
		counts[tr.Kind]++
	}
	// C(32,2) width pairs for each downcast direction, the upcast inverses,
	// and the (F, R) pairs with F+R <= 32.
	want := map[Kind]int{Low: 496, High: 496, Extend: 496, Concat: 496}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("transition counts mismatch (-want +got):\n%s", diff)
	}
}

func TestTableMatchesLegalityRule(t *testing.T) {
	listed := make(map[Transition]bool)
	for _, tr := range All() {
		if !tr.Legal() {
			t.Fatalf("table lists illegal transition %s", tr)
		}
		if listed[tr] {
			t.Fatalf("transition %s listed twice", tr)
		}
		listed[tr] = true
	}

	// Every legal transition over a slightly wider domain is listed.
	for _, kind := range Kinds {
		for from := 0; from <= MaxWidth+1; from++ {
			for to := 0; to <= MaxWidth+1; to++ {
				operand := 0
				if kind == Concat {
					operand = to - from
				}
				tr := Transition{Kind: kind, From: from, Operand: operand, To: to}
				if tr.Legal() != listed[tr] {
					t.Fatalf("%v from=%d to=%d: legal=%v listed=%v", kind, from, to, tr.Legal(), listed[tr])
				}
			}
		}
	}
}

func TestLegalEdges(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		from    int
		operand int
		to      int
		want    bool
	}{
		{"low to one bit", Low, 2, 0, 1, true},
		{"low same width", Low, 8, 0, 8, false},
		{"high from full", High, 32, 0, 31, true},
		{"high to zero", High, 8, 0, 0, false},
		{"extend to full", Extend, 1, 0, 32, true},
		{"extend narrower", Extend, 8, 0, 4, false},
		{"extend past max", Extend, 8, 0, 33, false},
		{"concat to full", Concat, 31, 1, 32, true},
		{"concat overflow", Concat, 31, 2, 33, false},
		{"concat wrong sum", Concat, 4, 4, 9, false},
		{"concat empty operand", Concat, 4, 0, 4, false},
		{"low with operand", Low, 8, 1, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Legal(tc.kind, tc.from, tc.operand, tc.to); got != tc.want {
				t.Fatalf("Legal(%v, %d, %d, %d) = %v, want %v", tc.kind, tc.from, tc.operand, tc.to, got, tc.want)
			}
		})
	}
}

func TestUpcastIsInverseOfDowncast(t *testing.T) {
	for _, from := range Widths() {
		for _, up := range Upcasts(from) {
			if !Legal(Low, up.To, 0, up.From) || !Legal(High, up.To, 0, up.From) {
				t.Fatalf("%s has no inverse downcast", up)
			}
		}
	}
}

func TestForFullWidth(t *testing.T) {
	got := For(MaxWidth)
	if len(got) != 62 {
		t.Fatalf("expected 62 transitions on %s, got %d", TypeName(MaxWidth), len(got))
	}
	for _, tr := range got {
		if tr.Kind == Extend || tr.Kind == Concat {
			t.Fatalf("full width cannot widen, got %s", tr)
		}
	}
	if For(0) != nil || For(MaxWidth+1) != nil {
		t.Fatalf("expected no transitions for unsupported widths")
	}
}

func TestMask(t *testing.T) {
	cases := map[int]uint32{
		1:  0x1,
		4:  0xf,
		12: 0xfff,
		31: 0x7fffffff,
		32: 0xffffffff,
	}
	for width, want := range cases {
		if got := Mask(width); got != want {
			t.Fatalf("Mask(%d) = %#x, want %#x", width, got, want)
		}
	}
}

func TestTransitionString(t *testing.T) {
	got := []string{
		Transition{Kind: Low, From: 8, To: 4}.String(),
		Transition{Kind: High, From: 8, To: 4}.String(),
		Transition{Kind: Extend, From: 4, To: 8}.String(),
		Transition{Kind: Concat, From: 4, Operand: 4, To: 8}.String(),
	}
	want := []string{
		"U8.Low4 -> U4",
		"U8.High4 -> U4",
		"U4.Extend8 -> U8",
		"U4.Concat4(U4) -> U8",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v", k, got)
		}
	}
	if _, err := ParseKind("sign"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
