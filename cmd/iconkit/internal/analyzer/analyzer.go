// Package analyzer finds icon names written as string literals in calls to
// the render package, so they can be checked against the catalog before the
// views ever run.
package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// renderPkgSuffix identifies the render package regardless of module path.
const renderPkgSuffix = "/internal/render"

// nameArg is the position of the icon name in each recognized call.
var nameArg = map[string]int{
	"IconNode": 1,
	"Icon":     1,
}

// Usage is one literal icon name found in source.
type Usage struct {
	Name string
	Func string
	Pos  token.Position
}

// ScanFile returns the icon usages in file. Files that don't import the
// render package yield nothing.
func ScanFile(fset *token.FileSet, file *ast.File) []Usage {
	local := renderImportName(file)
	if local == "" {
		return nil
	}

	var usages []Usage
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != local {
			return true
		}
		idx, ok := nameArg[sel.Sel.Name]
		if !ok || len(call.Args) <= idx {
			return true
		}
		lit, ok := call.Args[idx].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		name, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		usages = append(usages, Usage{
			Name: name,
			Func: sel.Sel.Name,
			Pos:  fset.Position(lit.Pos()),
		})
		return true
	})
	return usages
}

func renderImportName(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || !strings.HasSuffix(path, renderPkgSuffix) {
			continue
		}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				return ""
			}
			return imp.Name.Name
		}
		return path[strings.LastIndex(path, "/")+1:]
	}
	return ""
}

// Load scans every package under dir, test files included.
func Load(dir string) ([]Usage, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:   dir,
		Tests: true,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	seen := make(map[token.Position]bool)
	var usages []Usage
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			// Test variants repeat their package's files.
			for _, u := range ScanFile(pkg.Fset, file) {
				if seen[u.Pos] {
					continue
				}
				seen[u.Pos] = true
				usages = append(usages, u)
			}
		}
	}

	sort.Slice(usages, func(i, j int) bool {
		a, b := usages[i].Pos, usages[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return usages, nil
}

// Missing returns the usages whose names known rejects.
func Missing(usages []Usage, known func(name string) bool) []Usage {
	var missing []Usage
	for _, u := range usages {
		if !known(u.Name) {
			missing = append(missing, u)
		}
	}
	return missing
}
