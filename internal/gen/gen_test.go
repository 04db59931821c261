package gen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"imm/internal/captable"
)

func TestGeneratedFileIsCurrent(t *testing.T) {
	got, err := Source(Options{})
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	want, err := os.ReadFile(filepath.Join("..", "..", FileName))
	if err != nil {
		t.Fatalf("read %s: %v", FileName, err)
	}
	if bytes.Equal(want, got) {
		return
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("%s is stale; run go generate (-want +got):\n%s", FileName, diff)
	}
}

func TestSourceDeclaresEveryTransition(t *testing.T) {
	src, err := Source(Options{Package: "scratch"})
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, FileName, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if file.Name.Name != "scratch" {
		t.Fatalf("expected package scratch, got %s", file.Name.Name)
	}
	if !strings.HasPrefix(string(src), "// Code generated") {
		t.Fatalf("expected generated-code header")
	}

	methods := make(map[string]bool)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil {
			continue
		}
		recv := fn.Recv.List[0].Type.(*ast.Ident).Name
		methods[recv+"."+fn.Name.Name] = true
	}
	for _, tr := range captable.All() {
		key := captable.TypeName(tr.From) + "." + tr.Method()
		if !methods[key] {
			t.Fatalf("generated source lacks %s", key)
		}
	}
	// Four accessors per type plus the table.
	if want := 4*captable.MaxWidth + len(captable.All()); len(methods) != want {
		t.Fatalf("expected %d methods, got %d", want, len(methods))
	}
}

func TestMethodBodies(t *testing.T) {
	cases := []struct {
		tr   captable.Transition
		want string
	}{
		{captable.Transition{Kind: captable.Low, From: 8, To: 4}, "U4{v.raw & 0xf}"},
		{captable.Transition{Kind: captable.High, From: 8, To: 4}, "U4{(v.raw >> 4) & 0xf}"},
		{captable.Transition{Kind: captable.High, From: 32, To: 8}, "U8{v.raw >> 24}"},
		{captable.Transition{Kind: captable.Extend, From: 4, To: 8}, "U8{v.raw}"},
		{captable.Transition{Kind: captable.Concat, From: 4, Operand: 4, To: 8}, "U8{(v.raw<<4 + rhs.raw) & 0xff}"},
		{captable.Transition{Kind: captable.Concat, From: 20, Operand: 12, To: 32}, "U32{v.raw<<12 + rhs.raw}"},
	}
	for _, tc := range cases {
		if got := methodFor(tc.tr).Body; got != tc.want {
			t.Fatalf("%s: body %q, want %q", tc.tr, got, tc.want)
		}
	}
	if got := methodFor(captable.Transition{Kind: captable.Concat, From: 4, Operand: 4, To: 8}).Params; got != "rhs U4" {
		t.Fatalf("expected concat to take rhs U4, got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteFile(path, Options{}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "func (v U32) High8() U8 {") {
		t.Fatalf("expected U32.High8 in output")
	}
}
