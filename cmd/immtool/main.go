package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"imm/internal/captable"
	"imm/internal/diag"
	"imm/internal/frontend"
	"imm/internal/gen"
	"imm/internal/lint"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printGlobalUsage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "gen":
		return runGen(args[1:])
	case "table":
		return runTable(args[1:])
	case "lint":
		return runLint(args[1:])
	default:
		printGlobalUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printGlobalUsage() {
	fmt.Fprintf(stderr, "immtool maintains and checks width-tagged immediates\n\n")
	fmt.Fprintf(stderr, "Usage:\n")
	fmt.Fprintf(stderr, "  immtool <command> [options]\n\n")
	fmt.Fprintf(stderr, "Commands:\n")
	fmt.Fprintf(stderr, "  gen        Generate the immediate method table (imm_gen.go)\n")
	fmt.Fprintf(stderr, "  table      Print the legal width transitions\n")
	fmt.Fprintf(stderr, "  lint       Report discarded results of immediate operations\n")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func runGen(args []string) error {
	fs := flagSet("gen")
	output := fs.String("o", "", "output file path (stdout when omitted)")
	pkg := fs.String("package", "imm", "package clause of the generated file")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("gen takes no positional arguments")
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync()
	gen.SetLogger(log)

	if *output == "" || *output == "-" {
		return gen.Render(stdout, gen.Options{Package: *pkg})
	}
	return gen.WriteFile(*output, gen.Options{Package: *pkg})
}

func runTable(args []string) error {
	fs := flagSet("table")
	kindName := fs.String("kind", "", "only list transitions of this kind (low|high|extend|concat)")
	from := fs.Int("from", 0, "only list transitions from this width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var kind captable.Kind
	filterKind := *kindName != ""
	if filterKind {
		k, err := captable.ParseKind(*kindName)
		if err != nil {
			return err
		}
		kind = k
	}
	if *from != 0 && !captable.ValidWidth(*from) {
		return fmt.Errorf("width %d is outside 1..%d", *from, captable.MaxWidth)
	}

	transitions := captable.All()
	if *from != 0 {
		transitions = captable.For(*from)
	}
	for _, tr := range transitions {
		if filterKind && tr.Kind != kind {
			continue
		}
		fmt.Fprintln(stdout, tr)
	}
	return nil
}

func runLint(args []string) error {
	fs := flagSet("lint")
	diagFormat := fs.String("diag-format", "text", "diagnostic output format (text|json)")
	tags := fs.String("tags", "", "comma-separated build tags")
	tests := fs.Bool("test", false, "also check test files")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("lint requires at least one package pattern")
	}

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	reporter := diag.NewReporter(stderr, *diagFormat)
	cfg := frontend.LoadConfig{
		Patterns: fs.Args(),
		Tests:    *tests,
	}
	if *tags != "" {
		cfg.BuildTags = []string{*tags}
	}
	pkgs, _, err := frontend.LoadPackages(cfg, reporter)
	if err != nil {
		return err
	}
	log.Info("loaded packages", zap.Int("count", len(pkgs)))

	found, err := lint.Check(pkgs, reporter, log)
	if err != nil {
		return err
	}
	if found > 0 {
		return fmt.Errorf("lint reported %d finding(s)", found)
	}
	return nil
}
