/*
   Copyright 2025 The Fu Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fu

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// unknownFile is reported when the runtime cannot resolve a caller.
const unknownFile = "unknown"

// Location identifies the source position where an Error was constructed.
//
// File is trimmed to its last directory and base name ("pkg/file.go"),
// Line and Column are 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// Here returns the location of its caller.
func Here() Location { return capture(1) }

// Caller returns the location skip frames above the code calling it.
// Caller(0) is equivalent to Here. Helpers built on top of this package
// pass skip=1 so the reported location is their own caller's.
func Caller(skip int) Location { return capture(skip + 1) }

// IsZero reports whether l was never captured.
func (l Location) IsZero() bool { return l == Location{} }

// String renders l as "file:[line:column]".
func (l Location) String() string {
	return fmt.Sprintf("%s:[%d:%d]", l.File, l.Line, l.Column)
}

// capture resolves the frame skip levels above the function calling capture.
// The frame just below it names the function that was called there, which
// pins the column to that call.
func capture(skip int) Location {
	var pcs [8]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	callee, more := frames.Next()
	if !more {
		return Location{File: unknownFile, Line: 1, Column: 1}
	}
	site, _ := frames.Next()
	if site.File == "" {
		return Location{File: unknownFile, Line: 1, Column: 1}
	}
	return Location{
		File:   trimPath(site.File, site.Line),
		Line:   site.Line,
		Column: columns.resolve(site.File, site.Line, funcName(callee.Function)),
	}
}

func trimPath(file string, line int) string {
	p := zapcore.EntryCaller{Defined: true, File: file, Line: line}.TrimmedPath()
	// TrimmedPath appends ":line".
	if i := strings.LastIndexByte(p, ':'); i > 0 {
		p = p[:i]
	}
	return p
}

// funcName reduces "example.com/pkg.Type[...].Method" to "Method".
func funcName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

// call is a call expression found in a source file.
type call struct {
	name   string
	column int
}

// sourceIndex holds what column resolution needs from one source file.
type sourceIndex struct {
	indent []int          // column of the first non-blank character, per line
	calls  map[int][]call // calls by line, outermost first
}

// columnCache maps a source file to its index. Files that cannot be read map
// to nil and every lookup on them falls back to column 1.
type columnCache struct {
	files sync.Map // string -> *sourceIndex
}

var columns columnCache

// resolve returns the column of the call to callee on line, or the first
// non-blank column of the line when no such call is found.
func (c *columnCache) resolve(file string, line int, callee string) int {
	v, ok := c.files.Load(file)
	if !ok {
		v, _ = c.files.LoadOrStore(file, indexSource(file))
	}
	idx := v.(*sourceIndex)
	if idx == nil || line < 1 || line > len(idx.indent) {
		return 1
	}
	for _, cl := range idx.calls[line] {
		if cl.name == callee {
			return cl.column
		}
	}
	return idx.indent[line-1]
}

func indexSource(file string) *sourceIndex {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	idx := &sourceIndex{calls: map[int][]call{}}
	for _, text := range bytes.Split(src, []byte("\n")) {
		col := len(text) - len(bytes.TrimLeft(text, " \t\r")) + 1
		if col > len(text) {
			col = 1
		}
		idx.indent = append(idx.indent, col)
	}

	// A file with syntax errors still yields a partial tree.
	fset := token.NewFileSet()
	f, _ := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if f == nil {
		return idx
	}
	ast.Inspect(f, func(n ast.Node) bool {
		ce, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		name, at := calleeIdent(ce.Fun)
		if name == "" {
			return true
		}
		cl := call{name: name, column: fset.Position(ce.Pos()).Column}
		nameLine, parenLine := fset.Position(at).Line, fset.Position(ce.Lparen).Line
		idx.calls[nameLine] = append(idx.calls[nameLine], cl)
		if parenLine != nameLine {
			idx.calls[parenLine] = append(idx.calls[parenLine], cl)
		}
		return true
	})
	return idx
}

// calleeIdent returns the name a call expression invokes and where it sits.
func calleeIdent(fun ast.Expr) (string, token.Pos) {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name, f.Pos()
	case *ast.SelectorExpr:
		return f.Sel.Name, f.Sel.Pos()
	case *ast.IndexExpr:
		return calleeIdent(f.X)
	case *ast.IndexListExpr:
		return calleeIdent(f.X)
	case *ast.ParenExpr:
		return calleeIdent(f.X)
	}
	return "", token.NoPos
}
