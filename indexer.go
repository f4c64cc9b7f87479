// Copyright (c) 2022 Stephan Lukits. All rights reserved.
//  Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// indexer provides the declarationIndexer-type whose only task it is to
// index the test methods of a group by their appearance in the source.

package tdd

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

var indexer = declarationIndexer{}

// declarationIndexer provides *indexOf(file, group)* which parses the
// source file a group was registered from together with the other go
// files of its directory and maps the group's method declarations to
// their order of appearance.  The reflection package only knows
// methods in lexicographical order, i.e. without this index tests
// couldn't be run in declaration order.  Parsed files are kept to avoid
// parsing a directory again for each group registered in it.  NOTE
// registration happens during package initialization which is single
// threaded, hence no locking.
type declarationIndexer struct {
	//            file   group  method index
	indices map[string]map[string]map[string]int
	parsed  map[string]*ast.File
}

// indexOf returns the declaration indices of given group's methods
// declared in given registration file or its sibling files.  The
// registration file's declarations come first followed by the sibling
// files' declarations in lexicographical order of the file names.  An
// empty map is returned if the sources are not available.
func (i *declarationIndexer) indexOf(file, group string) map[string]int {
	if file == "" {
		return map[string]int{}
	}
	if i.indices == nil {
		i.indices = map[string]map[string]map[string]int{}
		i.parsed = map[string]*ast.File{}
	}
	if _, ok := i.indices[file]; !ok {
		i.indices[file] = map[string]map[string]int{}
	}
	if idx, ok := i.indices[file][group]; ok {
		return idx
	}
	idx := map[string]int{}
	for _, f := range i.sourcesOf(file) {
		i._ParseMethods(f, group, idx)
	}
	i.indices[file][group] = idx
	return idx
}

// sourcesOf returns the parsed registration file followed by its
// parsed sibling go files.  Files which can't be parsed are ignored.
func (i *declarationIndexer) sourcesOf(file string) []*ast.File {
	names := []string{file}
	entries, err := os.ReadDir(filepath.Dir(file))
	if err == nil {
		siblings := []string{}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
				continue
			}
			sibling := filepath.Join(filepath.Dir(file), e.Name())
			if sibling == file {
				continue
			}
			siblings = append(siblings, sibling)
		}
		slices.Sort(siblings)
		names = append(names, siblings...)
	}
	ff := []*ast.File{}
	for _, name := range names {
		if f := i._Parse(name); f != nil {
			ff = append(ff, f)
		}
	}
	return ff
}

func (i *declarationIndexer) _Parse(name string) *ast.File {
	if f, ok := i.parsed[name]; ok {
		return f
	}
	f, err := parser.ParseFile(token.NewFileSet(), name, nil,
		parser.SkipObjectResolution)
	if err != nil {
		f = nil
	}
	i.parsed[name] = f
	return f
}

// _IsIdent helps investigating if a function's receiver field type
// refers to the indexed group by returning given field-type's
// identifier-name if their is any.
func (i *declarationIndexer) _IsIdent(fldType ast.Expr) (string, bool) {
	if ident, ok := fldType.(*ast.Ident); ok {
		return ident.Name, true
	}

	starExpr, ok := fldType.(*ast.StarExpr)
	if !ok {
		return "", false
	}
	ident, ok := starExpr.X.(*ast.Ident)
	if !ok {
		return "", false
	}

	return ident.Name, true
}

// _IsGroupMethod returns the method's name and true in case given
// function declaration is an exported one-argument method of given
// group which is not special; zero-string and false otherwise.
func (i *declarationIndexer) _IsGroupMethod(
	fd *ast.FuncDecl, group string,
) (string, bool) {

	if fd.Recv == nil || !fd.Name.IsExported() {
		return "", false
	}
	if isSpecial(fd.Name.Name) || len(fd.Type.Params.List) != 1 {
		return "", false
	}
	for _, field := range fd.Recv.List {
		name, ok := i._IsIdent(field.Type)
		if !ok || name != group {
			continue
		}
		return fd.Name.Name, true
	}
	return "", false
}

func (i *declarationIndexer) _ParseMethods(
	f *ast.File, group string, idx map[string]int,
) {
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name, ok := i._IsGroupMethod(fd, group)
		if !ok {
			continue
		}
		if _, ok := idx[name]; ok {
			continue
		}
		idx[name] = len(idx)
	}
}

func isSpecial(name string) bool {
	return slices.Contains(strings.Fields(special), name)
}
