package tsdecl

// Class is an ambient class declaration. It terminates with a brace and
// declares the no-trailing-semicolon capability consulted by
// [NewExportDeclaration].
type Class struct {
	BaseNode `yaml:",inline"`

	Name      string `yaml:"name"`
	SuperName string `yaml:"extends,omitempty"`
	Members   []Node `yaml:"members,omitempty"`
}

// NewClass returns a class declaration. superName may be empty for no
// extends clause; members render one per line, one indent level deeper.
func NewClass(name, superName string, members ...Node) *Class {
	return &Class{Name: name, SuperName: superName, Members: members}
}

func (c *Class) body(ctx Context) string {
	header := "class " + c.Name
	if c.SuperName != "" {
		header += " extends " + c.SuperName
	}
	return renderBlock(header, renderEach(c.Members, ctx.nested()))
}

func (c *Class) braceTerminated() {}

// ClassMethod is a method signature inside a class.
type ClassMethod struct {
	BaseNode `yaml:",inline"`

	Name   string   `yaml:"name"`
	Params []*Param `yaml:"params,omitempty"`
	Type   string   `yaml:"type,omitempty"`
	Static bool     `yaml:"static,omitempty"`
}

// NewClassMethod returns a class method signature.
func NewClassMethod(name string, params []*Param, typ string, static bool) *ClassMethod {
	return &ClassMethod{Name: name, Params: params, Type: typ, Static: static}
}

// NewClassConstructor returns a constructor signature: a [ClassMethod] with
// the fixed name "constructor", no return type, never static.
func NewClassConstructor(params ...*Param) *ClassMethod {
	return &ClassMethod{Name: "constructor", Params: params}
}

func (m *ClassMethod) body(ctx Context) string {
	sig := methodSignature(ctx, m.Name, m.Params, m.Type)
	if m.Static {
		sig = "static " + sig
	}
	return sig + ";"
}

// ClassProperty is a property signature inside a class.
type ClassProperty struct {
	BaseNode `yaml:",inline"`

	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Static bool   `yaml:"static,omitempty"`
}

// NewClassProperty returns a class property signature.
func NewClassProperty(name, typ string, static bool) *ClassProperty {
	return &ClassProperty{Name: name, Type: typ, Static: static}
}

func (p *ClassProperty) body(Context) string {
	out := p.Name + ": " + p.Type + ";"
	if p.Static {
		out = "static " + out
	}
	return out
}
