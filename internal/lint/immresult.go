// Package lint holds go/analysis checks for code using package imm.
package lint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ImmPath is the import path of the immediate package.
const ImmPath = "imm"

const doc = `check for discarded results of immediate operations

Every function and method of package imm is pure: Low, High, Extend and
Concat return a new immediate and leave the receiver untouched. A call used
as a statement therefore has no effect and usually means the caller expected
the receiver to be modified in place.`

// Analyzer reports calls into package imm whose result is discarded.
var Analyzer = &analysis.Analyzer{
	Name:     "immresult",
	Doc:      doc,
	URL:      "https://pkg.go.dev/imm/internal/lint",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.ExprStmt)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		stmt := n.(*ast.ExprStmt)
		call, ok := ast.Unparen(stmt.X).(*ast.CallExpr)
		if !ok {
			return
		}
		fn := calledFunc(pass.TypesInfo, call)
		if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != ImmPath {
			return
		}
		pass.Reportf(call.Lparen, "result of %s call is not used", qualifiedName(fn))
	})
	return nil, nil
}

// calledFunc resolves the static callee of call, including generic
// instantiations such as imm.Zero[imm.U4].
func calledFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	fun := ast.Unparen(call.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var id *ast.Ident
	switch f := fun.(type) {
	case *ast.Ident:
		id = f
	case *ast.SelectorExpr:
		id = f.Sel
	default:
		return nil
	}
	fn, _ := info.Uses[id].(*types.Func)
	return fn
}

func qualifiedName(fn *types.Func) string {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return fn.Pkg().Name() + "." + fn.Name()
	}
	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	if named, ok := recv.(*types.Named); ok {
		return fn.Pkg().Name() + "." + named.Obj().Name() + "." + fn.Name()
	}
	return fn.Pkg().Name() + "." + fn.Name()
}
