package lint

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"imm/internal/diag"
	"imm/internal/frontend"
)

func TestCheckCleanPackage(t *testing.T) {
	var buf bytes.Buffer
	reporter := diag.NewReporter(&buf, "text")
	pkgs, _, err := frontend.LoadPackages(frontend.LoadConfig{
		Patterns: []string{"."},
		Dir:      filepath.Join("..", "rvimm"),
	}, reporter)
	if err != nil {
		t.Fatalf("load packages: %v\n%s", err, buf.String())
	}

	found, err := Check(pkgs, reporter, nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if found != 0 || reporter.HasErrors() {
		t.Fatalf("expected no findings, got %d:\n%s", found, buf.String())
	}
}

func TestCheckRequiresPackages(t *testing.T) {
	reporter := diag.NewReporter(&bytes.Buffer{}, "text")
	if _, err := Check(nil, reporter, nil); err == nil {
		t.Fatalf("expected error for empty package list")
	}
}

func TestAnalyzerDoc(t *testing.T) {
	if Analyzer.Name != "immresult" {
		t.Fatalf("unexpected analyzer name %q", Analyzer.Name)
	}
	if !strings.HasPrefix(Analyzer.Doc, "check for discarded results") {
		t.Fatalf("analyzer doc should start with its summary line")
	}
}
