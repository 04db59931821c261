package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProgramsMatchExpectedOutput(t *testing.T) {
	repoRoot := filepath.Clean(filepath.Join("..", ".."))
	testcases := []string{
		"comb_concat",
		"field_slices",
		"branch_offsets",
		"byte_pipeline",
	}
	for _, name := range testcases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cmd := exec.Command("go", "run", "./"+filepath.ToSlash(filepath.Join("tests", "e2e", name)))
			cmd.Dir = repoRoot
			cmd.Env = os.Environ()
			out, err := cmd.Output()
			if err != nil {
				t.Fatalf("go run %s failed: %v", name, err)
			}
			verifyGolden(t, name, string(out))
		})
	}
}

func verifyGolden(t *testing.T, name, actual string) {
	t.Helper()
	expected, err := os.ReadFile(filepath.Join(name, "expected.out"))
	if err != nil {
		t.Fatalf("read expected output for %s: %v", name, err)
	}
	if diff := cmp.Diff(string(expected), actual); diff != "" {
		t.Fatalf("output mismatch for %s (-want +got):\n%s", name, diff)
	}
}

// Transitions outside the capability table must be rejected by the compiler.
func TestIllegalTransitionsDoNotCompile(t *testing.T) {
	repoRoot := filepath.Clean(filepath.Join("..", ".."))
	testcases := []struct {
		name string
		want string
	}{
		{"illegal_downcast", "has no field or method Low8"},
		{"illegal_concat", "has no field or method Concat13"},
		{"operand_width", "cannot use"},
		{"mixed_widths", "cannot use"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pkg := "./" + filepath.ToSlash(filepath.Join("tests", "e2e", "testdata", tc.name))
			cmd := exec.Command("go", "build", "-o", os.DevNull, pkg)
			cmd.Dir = repoRoot
			cmd.Env = os.Environ()
			out, err := cmd.CombinedOutput()
			if err == nil {
				t.Fatalf("go build %s succeeded unexpectedly", tc.name)
			}
			if !strings.Contains(string(out), tc.want) {
				t.Fatalf("expected %q in compiler output, got:\n%s", tc.want, out)
			}
		})
	}
}
