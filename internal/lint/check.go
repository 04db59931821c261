package lint

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"imm/internal/diag"
)

// Analyzers is the set run by Check.
var Analyzers = []*analysis.Analyzer{Analyzer}

// Check runs Analyzers over pkgs, reports every finding as an error and
// returns how many there were. log may be nil.
func Check(pkgs []*packages.Package, reporter *diag.Reporter, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(pkgs) == 0 {
		return 0, fmt.Errorf("no packages to check")
	}

	graph, err := checker.Analyze(Analyzers, pkgs, &checker.Options{})
	if err != nil {
		return 0, fmt.Errorf("run analyzers: %w", err)
	}

	found := 0
	for _, act := range graph.Roots {
		if act.Err != nil {
			return found, fmt.Errorf("%s on %s: %w", act.Analyzer.Name, act.Package.PkgPath, act.Err)
		}
		log.Debug("analyzed package",
			zap.String("analyzer", act.Analyzer.Name),
			zap.String("package", act.Package.PkgPath),
			zap.Int("diagnostics", len(act.Diagnostics)),
		)
		for _, d := range act.Diagnostics {
			reporter.Error(d.Pos, fmt.Sprintf("%s (%s)", d.Message, act.Analyzer.Name))
			found++
		}
	}
	return found, nil
}
