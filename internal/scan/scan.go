// Package scan finds UUID literals in Go source and checks them with
// uuidlit.TryParse.
//
// A UUID literal is the first argument of a call to one of the configured
// functions, such as uuidlit.MustParse("..."). Arguments that are not string
// literals are skipped, unless the line carries a //uuidlit:literal comment,
// in which case they are reported as ErrNotStringLiteral.
package scan

import (
	"errors"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// ErrNotStringLiteral is reported for a marked call whose argument is not a string literal
var ErrNotStringLiteral = errors.New("expected string literal")

// Marker forces the argument of a call on the same line to be a string literal.
const Marker = "uuidlit:literal"

// Literal is the first argument of a checked call.
type Literal struct {
	Func  string         // callee as matched, "pkg.Func" or "Func"
	Pos   token.Position // start of the argument
	Raw   string         // argument source text, quotes included
	Value string         // unquoted value; empty when Err is set
	Err   error
}

// Literals returns the arguments of calls to funcs in file, in source order.
// src must be the source file was parsed from.
func Literals(fset *token.FileSet, file *ast.File, src []byte, funcs []string) []Literal {
	want := make(map[string]bool, len(funcs))
	for _, f := range funcs {
		want[f] = true
	}
	marked := markedLines(fset, file)

	var out []Literal
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		name := calleeName(call.Fun)
		if !want[name] {
			return true
		}

		arg := call.Args[0]
		pos := fset.Position(arg.Pos())
		end := fset.Position(arg.End())
		l := Literal{Func: name, Pos: pos}
		if pos.Offset >= 0 && end.Offset <= len(src) {
			l.Raw = string(src[pos.Offset:end.Offset])
		}

		lit, ok := arg.(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			if marked[pos.Line] {
				l.Err = ErrNotStringLiteral
				out = append(out, l)
			}
			return true
		}

		value, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}
		l.Raw = lit.Value
		l.Value = value
		out = append(out, l)
		return true
	})
	return out
}

// calleeName returns "pkg.Func" for selector calls and "Func" for plain
// identifiers; anything else yields "".
func calleeName(fun ast.Expr) string {
	switch fn := fun.(type) {
	case *ast.Ident:
		return fn.Name
	case *ast.SelectorExpr:
		if x, ok := fn.X.(*ast.Ident); ok {
			return x.Name + "." + fn.Sel.Name
		}
	}
	return ""
}

func markedLines(fset *token.FileSet, file *ast.File) map[int]bool {
	lines := make(map[int]bool)
	for _, group := range file.Comments {
		for _, c := range group.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			if text == Marker {
				lines[fset.Position(c.Slash).Line] = true
			}
		}
	}
	return lines
}
