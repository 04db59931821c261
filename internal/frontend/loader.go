package frontend

import (
	"fmt"
	"go/token"
	"os"
	"strings"

	gopackages "golang.org/x/tools/go/packages"

	"imm/internal/diag"
)

// BuildTagsEnv names the environment variable holding extra comma-separated
// build tags for LoadPackages.
const BuildTagsEnv = "IMMTOOL_BUILD_TAGS"

// LoadConfig configures which packages to load for analysis.
type LoadConfig struct {
	// Patterns are go/packages patterns such as "./...".
	Patterns  []string
	BuildTags []string
	// Dir is the working directory for the underlying go command.
	Dir   string
	Tests bool
}

// LoadMode is what the analysis checker needs: full syntax and type
// information for every package, dependencies included.
const LoadMode = gopackages.NeedName |
	gopackages.NeedFiles |
	gopackages.NeedCompiledGoFiles |
	gopackages.NeedImports |
	gopackages.NeedDeps |
	gopackages.NeedTypes |
	gopackages.NeedTypesSizes |
	gopackages.NeedSyntax |
	gopackages.NeedTypesInfo |
	gopackages.NeedModule

// LoadPackages loads the requested packages and reports any load errors.
func LoadPackages(cfg LoadConfig, reporter *diag.Reporter) ([]*gopackages.Package, *token.FileSet, error) {
	if len(cfg.Patterns) == 0 {
		return nil, nil, fmt.Errorf("no package patterns were provided")
	}

	fset := token.NewFileSet()
	tags := append([]string(nil), cfg.BuildTags...)
	if env := os.Getenv(BuildTagsEnv); env != "" {
		tags = append(tags, strings.Split(env, ",")...)
	}

	loadCfg := &gopackages.Config{
		Mode:       LoadMode,
		Fset:       fset,
		Dir:        cfg.Dir,
		Tests:      cfg.Tests,
		BuildFlags: buildTagFlag(tags),
	}

	pkgs, err := gopackages.Load(loadCfg, cfg.Patterns...)
	if err != nil {
		return nil, nil, err
	}

	reporter.SetFileSet(fset)

	var hadErrors bool
	gopackages.Visit(pkgs, nil, func(pkg *gopackages.Package) {
		for _, loadErr := range pkg.Errors {
			reporter.Errorf("%s: %s", loadErr.Pos, loadErr.Msg)
			hadErrors = true
		}
	})
	if hadErrors {
		return nil, nil, fmt.Errorf("package loading failed")
	}

	return pkgs, fset, nil
}

func buildTagFlag(tags []string) []string {
	var kept []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			kept = append(kept, tag)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return []string{"-tags=" + strings.Join(kept, ",")}
}
