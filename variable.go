package tsdecl

import "strings"

// VariableDeclaration declares one or more variables under a single keyword
// (const, let, var).
type VariableDeclaration struct {
	BaseNode `yaml:",inline"`

	Kind        string                `yaml:"kind"`
	Declarators []*VariableDeclarator `yaml:"declarators"`
}

// NewVariableDeclaration returns a variable declaration of the given kind.
// A declaration whose declarators all render to nothing is an absent
// statement: it renders to the empty string and containers drop it.
func NewVariableDeclaration(kind string, declarators ...*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Kind: kind, Declarators: declarators}
}

func (v *VariableDeclaration) body(ctx Context) string {
	decls := make([]string, 0, len(v.Declarators))
	for _, d := range v.Declarators {
		if s := Render(d, ctx.inline()); s != "" {
			decls = append(decls, s)
		}
	}
	if len(decls) == 0 {
		return ""
	}
	for i := 1; i < len(decls); i++ {
		decls[i] = ctx.ContinuationIndentUnit + decls[i]
	}
	return v.Kind + " " + strings.Join(decls, ",\n")
}

// VariableDeclarator is a single name-and-type pair inside a variable
// declaration.
type VariableDeclarator struct {
	BaseNode `yaml:",inline"`

	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// NewVariableDeclarator returns a declarator rendering "name: type".
func NewVariableDeclarator(name, typ string) *VariableDeclarator {
	return &VariableDeclarator{Name: name, Type: typ}
}

func (d *VariableDeclarator) body(Context) string {
	if d.Name == "" {
		return ""
	}
	return d.Name + ": " + d.Type
}
