package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// OsExitAnalyzer запрещает прямой вызов os.Exit в main пакета main:
// выход должен проходить через возврат ошибки, чтобы сработали defer.
var OsExitAnalyzer = &analysis.Analyzer{
	Name: "osexitmain",
	Doc:  "reports direct os.Exit calls in the main function of package main",
	Run:  runOsExit,
}

func runOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				obj, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
				if ok && obj.Pkg() != nil && obj.Pkg().Path() == "os" && obj.Name() == "Exit" {
					pass.Reportf(call.Pos(), "direct os.Exit call in main function")
				}
				return true
			})
		}
	}
	return nil, nil
}
