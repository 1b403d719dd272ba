package tsdecl

// ModuleDeclaration is an ambient module wrapping a list of declarations.
type ModuleDeclaration struct {
	BaseNode `yaml:",inline"`

	Name     string `yaml:"name"`
	Children []Node `yaml:"children,omitempty"`
}

// NewModuleDeclaration returns a "declare module" block. Children render one
// per line, one indent level deeper; absent statements are dropped.
func NewModuleDeclaration(name string, children ...Node) *ModuleDeclaration {
	return &ModuleDeclaration{Name: name, Children: children}
}

func (m *ModuleDeclaration) body(ctx Context) string {
	return renderBlock("declare module "+m.Name, renderEach(m.Children, ctx.nested()))
}
