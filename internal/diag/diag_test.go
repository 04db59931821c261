package diag

import (
	"bytes"
	"encoding/json"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReporterText(t *testing.T) {
	fset := token.NewFileSet()
	file := fset.AddFile("enc.go", -1, 100)
	file.SetLines([]int{0, 10, 20})

	var buf bytes.Buffer
	r := NewReporter(&buf, "text")
	r.SetFileSet(fset)
	r.Warning(file.Pos(12), "result discarded")
	r.Errorf("load failed: %s", "boom")

	want := "enc.go:2:3: warning: result discarded\nerror: load failed: boom\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text output mismatch (-want +got):\n%s", diff)
	}
	if !r.HasErrors() {
		t.Fatalf("expected HasErrors after Errorf")
	}
	if errs, warns := r.Counts(); errs != 1 || warns != 1 {
		t.Fatalf("expected 1 error and 1 warning, got %d and %d", errs, warns)
	}
}

func TestReporterJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, "json")
	r.Error(token.NoPos, "bad width")

	var got Diagnostic
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &got); err != nil {
		t.Fatalf("decode json diagnostic: %v", err)
	}
	want := Diagnostic{Severity: SeverityError, Message: "bad width"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json diagnostic mismatch (-want +got):\n%s", diff)
	}
}

func TestReporterWarningsOnly(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, "yaml")
	r.Warning(token.NoPos, "note")
	if r.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
}
