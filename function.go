package tsdecl

import "strings"

// methodSignature renders "name(params): returnType", the rule shared by
// functions, interface methods, class methods, and constructors. Parameters
// render inline at depth zero; the return-type suffix is omitted when empty.
func methodSignature(ctx Context, name string, params []*Param, returnType string) string {
	ps := make([]string, 0, len(params))
	for _, p := range params {
		ps = append(ps, Render(p, ctx.inline()))
	}
	sig := name + "(" + strings.Join(ps, ", ") + ")"
	if returnType != "" {
		sig += ": " + returnType
	}
	return sig
}

// Function is an ambient function declaration.
type Function struct {
	BaseNode `yaml:",inline"`

	Name   string   `yaml:"name"`
	Params []*Param `yaml:"params,omitempty"`
	Type   string   `yaml:"type,omitempty"`
}

// NewFunction returns a function declaration. typ is the return type text;
// empty means no return-type annotation.
func NewFunction(name string, params []*Param, typ string) *Function {
	return &Function{Name: name, Params: params, Type: typ}
}

func (f *Function) body(ctx Context) string {
	return "function " + methodSignature(ctx, f.Name, f.Params, f.Type)
}
