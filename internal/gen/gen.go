// Package gen renders the method table of the imm package from the
// capability table.
package gen

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"imm/internal/captable"
)

//go:embed templates/imm.go.tmpl
var templates embed.FS

// FileName is the name of the generated file inside the imm package.
const FileName = "imm_gen.go"

// Options configures a render.
type Options struct {
	// Package is the package clause of the generated file. Defaults to "imm".
	Package string
}

type fileData struct {
	Package string
	Names   []string
	Types   []typeData
}

type typeData struct {
	Name    string
	Width   int
	Methods []methodData
}

type methodData struct {
	Doc    string
	Name   string
	Params string
	Result string
	Body   string
}

// Render writes the formatted generated source to w.
func Render(w io.Writer, opts Options) error {
	src, err := Source(opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the formatted generated source.
func Source(opts Options) ([]byte, error) {
	tmpl, err := template.New("imm.go.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templates, "templates/imm.go.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	data := buildData(opts)
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := imports.Process(FileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	Logger().Debug("rendered immediate table",
		zap.Int("types", len(data.Types)),
		zap.Int("transitions", len(captable.All())),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

// WriteFile renders the table into path. An empty path or "-" writes to
// stdout.
func WriteFile(path string, opts Options) error {
	if path == "" || path == "-" {
		return Render(os.Stdout, opts)
	}
	src, err := Source(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return err
	}
	Logger().Info("wrote immediate table", zap.String("path", path))
	return nil
}

func buildData(opts Options) fileData {
	pkg := opts.Package
	if pkg == "" {
		pkg = "imm"
	}
	data := fileData{Package: pkg}
	for _, w := range captable.Widths() {
		name := captable.TypeName(w)
		data.Names = append(data.Names, name)
		td := typeData{Name: name, Width: w}
		for _, tr := range captable.For(w) {
			td.Methods = append(td.Methods, methodFor(tr))
		}
		data.Types = append(data.Types, td)
	}
	return data
}

func methodFor(tr captable.Transition) methodData {
	to := captable.TypeName(tr.To)
	m := methodData{Name: tr.Method(), Result: to}
	switch tr.Kind {
	case captable.Low:
		m.Doc = fmt.Sprintf("%s returns the %d least significant bits of v.", m.Name, tr.To)
		m.Body = fmt.Sprintf("%s{v.raw & %#x}", to, captable.Mask(tr.To))
	case captable.High:
		m.Doc = fmt.Sprintf("%s returns the %d most significant bits of v.", m.Name, tr.To)
		shift := tr.From - tr.To
		if tr.From == captable.MaxWidth {
			m.Body = fmt.Sprintf("%s{v.raw >> %d}", to, shift)
		} else {
			m.Body = fmt.Sprintf("%s{(v.raw >> %d) & %#x}", to, shift, captable.Mask(tr.To))
		}
	case captable.Extend:
		m.Doc = fmt.Sprintf("%s returns v zero-extended to %d bits.", m.Name, tr.To)
		m.Body = fmt.Sprintf("%s{v.raw}", to)
	case captable.Concat:
		m.Doc = fmt.Sprintf("%s returns v in the high %d bits and rhs in the low %d bits of a %s.",
			m.Name, tr.From, tr.Operand, to)
		m.Params = "rhs " + captable.TypeName(tr.Operand)
		if tr.To == captable.MaxWidth {
			m.Body = fmt.Sprintf("%s{v.raw<<%d + rhs.raw}", to, tr.Operand)
		} else {
			m.Body = fmt.Sprintf("%s{(v.raw<<%d + rhs.raw) & %#x}", to, tr.Operand, captable.Mask(tr.To))
		}
	}
	return m
}
