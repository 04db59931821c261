package lint

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestImmResult(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "a")
}
