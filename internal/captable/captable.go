// Package captable describes which width transitions the immediate types may
// perform. The generator and the tests both read it, so the set of methods on
// imm.U1..imm.U32 is exactly the set of legal transitions listed here.
package captable

import "fmt"

// MaxWidth is the widest supported immediate.
const MaxWidth = 32

// Kind enumerates the transformation families.
type Kind int

const (
	Low Kind = iota
	High
	Extend
	Concat
)

// Kinds lists every Kind in table order.
var Kinds = []Kind{Low, High, Extend, Concat}

func (k Kind) String() string {
	switch k {
	case Low:
		return "low"
	case High:
		return "high"
	case Extend:
		return "extend"
	case Concat:
		return "concat"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transition kind %q", s)
}

// Transition is one entry of the table. Operand is the right-hand width of a
// concatenation and zero for every other kind.
type Transition struct {
	Kind    Kind
	From    int
	Operand int
	To      int
}

// Method returns the name of the method implementing t on the source type.
func (t Transition) Method() string {
	switch t.Kind {
	case Low:
		return fmt.Sprintf("Low%d", t.To)
	case High:
		return fmt.Sprintf("High%d", t.To)
	case Extend:
		return fmt.Sprintf("Extend%d", t.To)
	case Concat:
		return fmt.Sprintf("Concat%d", t.Operand)
	}
	return ""
}

// Legal reports whether t belongs to the table.
func (t Transition) Legal() bool {
	return Legal(t.Kind, t.From, t.Operand, t.To)
}

func (t Transition) String() string {
	if t.Kind == Concat {
		return fmt.Sprintf("%s.%s(%s) -> %s", TypeName(t.From), t.Method(), TypeName(t.Operand), TypeName(t.To))
	}
	return fmt.Sprintf("%s.%s -> %s", TypeName(t.From), t.Method(), TypeName(t.To))
}

// ValidWidth reports whether w is a supported immediate width.
func ValidWidth(w int) bool {
	return w >= 1 && w <= MaxWidth
}

// Legal is the capability rule. Downcasts need a strictly narrower target,
// upcasts are legal exactly where the reverse downcast is, and concatenation
// must produce the summed width without exceeding MaxWidth.
func Legal(kind Kind, from, operand, to int) bool {
	if !ValidWidth(from) || !ValidWidth(to) {
		return false
	}
	switch kind {
	case Low, High:
		return operand == 0 && to < from
	case Extend:
		return operand == 0 && Legal(Low, to, 0, from)
	case Concat:
		return ValidWidth(operand) && from+operand == to
	}
	return false
}

// Widths returns 1..MaxWidth.
func Widths() []int {
	out := make([]int, 0, MaxWidth)
	for w := 1; w <= MaxWidth; w++ {
		out = append(out, w)
	}
	return out
}

// Downcasts returns the Low and High transitions available on width from,
// ordered by target width.
func Downcasts(from int) []Transition {
	var out []Transition
	for to := 1; to < from; to++ {
		out = append(out, Transition{Kind: Low, From: from, To: to})
	}
	for to := 1; to < from; to++ {
		out = append(out, Transition{Kind: High, From: from, To: to})
	}
	return out
}

// Upcasts returns the Extend transitions available on width from.
func Upcasts(from int) []Transition {
	var out []Transition
	for to := from + 1; to <= MaxWidth; to++ {
		out = append(out, Transition{Kind: Extend, From: from, To: to})
	}
	return out
}

// Concats returns the Concat transitions available on width from.
func Concats(from int) []Transition {
	var out []Transition
	for r := 1; from+r <= MaxWidth; r++ {
		out = append(out, Transition{Kind: Concat, From: from, Operand: r, To: from + r})
	}
	return out
}

// For returns every transition available on width from, in generation order.
func For(from int) []Transition {
	if !ValidWidth(from) {
		return nil
	}
	out := Downcasts(from)
	out = append(out, Upcasts(from)...)
	return append(out, Concats(from)...)
}

// All returns the whole table ordered by source width.
func All() []Transition {
	var out []Transition
	for _, w := range Widths() {
		out = append(out, For(w)...)
	}
	return out
}

// Mask returns the value with the width lowest bits set.
func Mask(width int) uint32 {
	if width >= MaxWidth {
		return ^uint32(0)
	}
	return uint32(1)<<width - 1
}

// TypeName is the Go type name of the immediate with the given width.
func TypeName(width int) string {
	return fmt.Sprintf("U%d", width)
}
