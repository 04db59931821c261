package frontend

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"imm/internal/diag"
)

func TestBuildTagFlag(t *testing.T) {
	cases := []struct {
		tags []string
		want []string
	}{
		{nil, nil},
		{[]string{"", " "}, nil},
		{[]string{"riscv"}, []string{"-tags=riscv"}},
		{[]string{"a", " b ", ""}, []string{"-tags=a,b"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, buildTagFlag(tc.tags)); diff != "" {
			t.Fatalf("buildTagFlag(%q) mismatch (-want +got):\n%s", tc.tags, diff)
		}
	}
}

func TestLoadPackagesRequiresPatterns(t *testing.T) {
	reporter := diag.NewReporter(&bytes.Buffer{}, "text")
	if _, _, err := LoadPackages(LoadConfig{}, reporter); err == nil {
		t.Fatalf("expected error without patterns")
	}
}

func TestLoadPackagesCaptable(t *testing.T) {
	var buf bytes.Buffer
	reporter := diag.NewReporter(&buf, "text")
	pkgs, fset, err := LoadPackages(LoadConfig{
		Patterns: []string{"."},
		Dir:      filepath.Join("..", "captable"),
	}, reporter)
	if err != nil {
		t.Fatalf("load packages: %v\n%s", err, buf.String())
	}
	if fset == nil {
		t.Fatalf("expected a file set")
	}
	if len(pkgs) != 1 || pkgs[0].PkgPath != "imm/internal/captable" {
		t.Fatalf("expected imm/internal/captable, got %v", pkgs)
	}
	if pkgs[0].TypesInfo == nil || len(pkgs[0].Syntax) == 0 {
		t.Fatalf("expected syntax and type information")
	}
}
