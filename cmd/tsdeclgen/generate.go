package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"github.com/bjaus/tsdecl"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax

func loadPackage(pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: loadMode}, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", pattern)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("package %q has errors", pkgs[0].PkgPath)
	}
	return pkgs[0], nil
}

// generate maps the exported surface of pkg to a declaration tree wrapped in
// a "declare module" block named moduleName.
func generate(pkg *packages.Package, moduleName string) *tsdecl.ModuleDeclaration {
	var children []tsdecl.Node
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv != nil || !d.Name.IsExported() {
					continue
				}
				if n := funcDecl(pkg, d); n != nil {
					children = append(children, n)
				}
			case *ast.GenDecl:
				switch d.Tok {
				case token.TYPE:
					for _, spec := range d.Specs {
						ts, ok := spec.(*ast.TypeSpec)
						if !ok {
							continue
						}
						if n := typeDecl(pkg, d, ts); n != nil {
							children = append(children, n)
						}
					}
				case token.CONST, token.VAR:
					// An all-unexported group collapses to an absent
					// statement and the module drops it.
					children = append(children, valueDecl(pkg, d))
				}
			}
		}
	}
	return tsdecl.NewModuleDeclaration("'"+moduleName+"'", children...)
}

func funcDecl(pkg *packages.Package, d *ast.FuncDecl) tsdecl.Node {
	obj, ok := pkg.TypesInfo.Defs[d.Name].(*types.Func)
	if !ok {
		return nil
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return nil
	}
	fn := tsdecl.NewFunction(d.Name.Name, paramsOf(sig), resultOf(sig))
	exp := tsdecl.NewExportDeclaration(fn)
	return tsdecl.AttachComments(exp, docComments{d.Doc})
}

func typeDecl(pkg *packages.Package, d *ast.GenDecl, spec *ast.TypeSpec) tsdecl.Node {
	if !spec.Name.IsExported() {
		return nil
	}
	obj, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var bases []string
	var members []tsdecl.Node
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		if f.Embedded() {
			bases = append(bases, tsType(f.Type()))
			continue
		}
		name, optional := fieldName(f, st.Tag(i))
		if name == "-" {
			continue
		}
		members = append(members, tsdecl.NewInterfaceProperty(name, tsType(f.Type()), false, optional))
	}
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}
		msig, ok := m.Type().(*types.Signature)
		if !ok {
			continue
		}
		members = append(members, tsdecl.NewInterfaceMethod(m.Name(), paramsOf(msig), resultOf(msig), false, false))
	}

	doc := spec.Doc
	if doc == nil {
		doc = d.Doc
	}
	iface := tsdecl.NewInterface(spec.Name.Name, bases, members...)
	return tsdecl.AttachComments(iface, docComments{doc})
}

func valueDecl(pkg *packages.Package, d *ast.GenDecl) tsdecl.Node {
	kind := "var"
	if d.Tok == token.CONST {
		kind = "const"
	}
	var decls []*tsdecl.VariableDeclarator
	for _, spec := range d.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		for _, name := range vs.Names {
			if !name.IsExported() {
				continue
			}
			obj := pkg.TypesInfo.Defs[name]
			if obj == nil {
				continue
			}
			decls = append(decls, tsdecl.NewVariableDeclarator(name.Name, tsType(obj.Type())))
		}
	}
	exp := tsdecl.NewExportDeclaration(tsdecl.NewVariableDeclaration(kind, decls...))
	return tsdecl.AttachComments(exp, docComments{d.Doc})
}

func paramsOf(sig *types.Signature) []*tsdecl.Param {
	tuple := sig.Params()
	params := make([]*tsdecl.Param, 0, tuple.Len())
	for i := 0; i < tuple.Len(); i++ {
		v := tuple.At(i)
		name := v.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}
		if sig.Variadic() && i == tuple.Len()-1 {
			if s, ok := v.Type().(*types.Slice); ok {
				params = append(params, tsdecl.NewParam(name, tsType(s.Elem())+"[]").AsRest())
				continue
			}
		}
		params = append(params, tsdecl.NewParam(name, tsType(v.Type())))
	}
	return params
}

func resultOf(sig *types.Signature) string {
	res := sig.Results()
	switch res.Len() {
	case 0:
		return "void"
	case 1:
		return tsType(res.At(0).Type())
	}
	parts := make([]string, res.Len())
	for i := range parts {
		parts[i] = tsType(res.At(i).Type())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// tsType maps a Go type to TypeScript type text, best effort. Anything
// without a natural TypeScript shape falls back to any.
func tsType(t types.Type) string {
	switch t := t.(type) {
	case *types.Alias:
		return tsType(types.Unalias(t))
	case *types.Basic:
		info := t.Info()
		switch {
		case info&types.IsBoolean != 0:
			return "boolean"
		case info&types.IsNumeric != 0:
			return "number"
		case info&types.IsString != 0:
			return "string"
		}
		return "any"
	case *types.Slice:
		if e, ok := t.Elem().(*types.Basic); ok && e.Kind() == types.Byte {
			return "string"
		}
		return tsType(t.Elem()) + "[]"
	case *types.Array:
		return tsType(t.Elem()) + "[]"
	case *types.Pointer:
		return tsType(t.Elem()) + " | null"
	case *types.Map:
		return "Record<" + tsType(t.Key()) + ", " + tsType(t.Elem()) + ">"
	case *types.Named:
		if t.Obj().Name() == "error" && t.Obj().Pkg() == nil {
			return "Error"
		}
		return t.Obj().Name()
	case *types.Interface:
		return "any"
	}
	return "any"
}

// fieldName resolves the declaration name of a struct field from its json
// tag, falling back to the Go field name. The second result reports whether
// the field is optional (json omitempty). A json "-" name means "skip".
func fieldName(f *types.Var, tag string) (name string, optional bool) {
	name = f.Name()
	jt, ok := reflect.StructTag(tag).Lookup("json")
	if !ok {
		return name, false
	}
	parts := strings.Split(jt, ",")
	optional = slices.Contains(parts[1:], "omitempty")
	if parts[0] != "" {
		name = parts[0]
	}
	return name, optional
}

// docComments adapts a Go doc comment group to the [tsdecl.Commenter]
// collaborator, one line comment per doc line.
type docComments struct {
	group *ast.CommentGroup
}

func (d docComments) Comments() []tsdecl.Comment {
	if d.group == nil {
		return nil
	}
	text := strings.TrimRight(d.group.Text(), "\n")
	if text == "" {
		return nil
	}
	var out []tsdecl.Comment
	for _, line := range strings.Split(text, "\n") {
		out = append(out, tsdecl.Comment{Kind: tsdecl.LineComment, Text: line})
	}
	return out
}
