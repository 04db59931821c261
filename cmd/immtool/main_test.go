package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
	})
	return &out, &errOut
}

func TestRunRequiresCommand(t *testing.T) {
	_, errOut := captureOutput(t)
	if err := run(nil); err == nil || err.Error() != "missing command" {
		t.Fatalf("expected missing command error, got %v", err)
	}
	if !strings.Contains(errOut.String(), "Commands:") {
		t.Fatalf("expected usage on stderr, got %q", errOut.String())
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	captureOutput(t)
	err := run([]string{"sim"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: sim") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestTableFiltersByKindAndWidth(t *testing.T) {
	out, _ := captureOutput(t)
	if err := run([]string{"table", "-kind", "concat", "-from", "30"}); err != nil {
		t.Fatalf("table failed: %v", err)
	}
	want := "U30.Concat1(U1) -> U31\nU30.Concat2(U2) -> U32\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("table output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableListsWholeTable(t *testing.T) {
	out, _ := captureOutput(t)
	if err := run([]string{"table"}); err != nil {
		t.Fatalf("table failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4*496 {
		t.Fatalf("expected %d transitions, got %d", 4*496, len(lines))
	}
	if lines[0] != "U1.Extend2 -> U2" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestTableRejectsBadFlags(t *testing.T) {
	captureOutput(t)
	if err := run([]string{"table", "-from", "33"}); err == nil {
		t.Fatalf("expected error for width 33")
	}
	if err := run([]string{"table", "-kind", "signed"}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestGenMatchesCommittedFile(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "imm_gen.go")
	if err := run([]string{"gen", "-o", path}); err != nil {
		t.Fatalf("gen failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	want, err := os.ReadFile(filepath.Join("..", "..", "imm_gen.go"))
	if err != nil {
		t.Fatalf("read committed file: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Fatalf("generated table differs from committed imm_gen.go; run go generate")
	}
}

func TestGenToStdout(t *testing.T) {
	out, _ := captureOutput(t)
	if err := run([]string{"gen", "-package", "isa"}); err != nil {
		t.Fatalf("gen failed: %v", err)
	}
	if !strings.Contains(out.String(), "\npackage isa\n") {
		t.Fatalf("expected package isa in output")
	}
}

func TestGenRejectsPositionalArgs(t *testing.T) {
	captureOutput(t)
	if err := run([]string{"gen", "extra"}); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

func TestLintReportsDiscardedResult(t *testing.T) {
	_, errOut := captureOutput(t)
	err := run([]string{"lint", "./testdata/discard"})
	if err == nil || !strings.Contains(err.Error(), "1 finding") {
		t.Fatalf("expected one finding, got %v\n%s", err, errOut.String())
	}
	if !strings.Contains(errOut.String(), "result of imm.U32.High8 call is not used (immresult)") {
		t.Fatalf("expected immresult diagnostic, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "main.go:11:") {
		t.Fatalf("expected diagnostic position, got %q", errOut.String())
	}
}

func TestLintJSONDiagnostics(t *testing.T) {
	_, errOut := captureOutput(t)
	if err := run([]string{"lint", "-diag-format", "json", "./testdata/discard"}); err == nil {
		t.Fatalf("expected lint failure")
	}
	if !strings.HasPrefix(errOut.String(), `{"severity":"error"`) {
		t.Fatalf("expected json diagnostics, got %q", errOut.String())
	}
}

func TestLintCleanPackage(t *testing.T) {
	_, errOut := captureOutput(t)
	if err := run([]string{"lint", "./testdata/clean"}); err != nil {
		t.Fatalf("expected clean lint, got %v\n%s", err, errOut.String())
	}
}

func TestLintRequiresPatterns(t *testing.T) {
	captureOutput(t)
	if err := run([]string{"lint"}); err == nil {
		t.Fatalf("expected error without packages")
	}
}
