package tsdecl

import "strings"

// Interface is an exported interface declaration.
type Interface struct {
	BaseNode `yaml:",inline"`

	Name           string   `yaml:"name"`
	BaseInterfaces []string `yaml:"extends,omitempty"`
	Members        []Node   `yaml:"members,omitempty"`
}

// NewInterface returns an interface declaration. baseInterfaces become the
// extends clause; members render one per line, one indent level deeper.
func NewInterface(name string, baseInterfaces []string, members ...Node) *Interface {
	return &Interface{Name: name, BaseInterfaces: baseInterfaces, Members: members}
}

func (i *Interface) body(ctx Context) string {
	header := "export interface " + i.Name
	if len(i.BaseInterfaces) > 0 {
		header += " extends " + strings.Join(i.BaseInterfaces, ", ")
	}
	return renderBlock(header, renderEach(i.Members, ctx.nested()))
}

// InterfaceMethod is a method signature inside an interface.
type InterfaceMethod struct {
	BaseNode `yaml:",inline"`

	Name     string   `yaml:"name"`
	Params   []*Param `yaml:"params,omitempty"`
	Type     string   `yaml:"type,omitempty"`
	Static   bool     `yaml:"static,omitempty"`
	Optional bool     `yaml:"optional,omitempty"`
}

// NewInterfaceMethod returns an interface method signature. An optional
// method gets a "?" after its name, a static one the "static " prefix.
func NewInterfaceMethod(name string, params []*Param, typ string, static, optional bool) *InterfaceMethod {
	return &InterfaceMethod{Name: name, Params: params, Type: typ, Static: static, Optional: optional}
}

func (m *InterfaceMethod) body(ctx Context) string {
	name := m.Name
	if m.Optional {
		name += "?"
	}
	sig := methodSignature(ctx, name, m.Params, m.Type)
	if m.Static {
		sig = "static " + sig
	}
	return sig + ";"
}

// InterfaceProperty is a property signature inside an interface.
type InterfaceProperty struct {
	BaseNode `yaml:",inline"`

	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Static   bool   `yaml:"static,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// NewInterfaceProperty returns an interface property signature.
func NewInterfaceProperty(name, typ string, static, optional bool) *InterfaceProperty {
	return &InterfaceProperty{Name: name, Type: typ, Static: static, Optional: optional}
}

func (p *InterfaceProperty) body(Context) string {
	name := p.Name
	if p.Optional {
		name += "?"
	}
	out := name + ": " + p.Type + ";"
	if p.Static {
		out = "static " + out
	}
	return out
}

// InterfaceIndexer is an index signature inside an interface.
type InterfaceIndexer struct {
	BaseNode `yaml:",inline"`

	KeyName    string `yaml:"keyName"`
	KeyType    string `yaml:"keyType"`
	ReturnType string `yaml:"returnType"`
}

// NewInterfaceIndexer returns "[keyName: keyType]: returnType;".
func NewInterfaceIndexer(keyName, keyType, returnType string) *InterfaceIndexer {
	return &InterfaceIndexer{KeyName: keyName, KeyType: keyType, ReturnType: returnType}
}

func (i *InterfaceIndexer) body(Context) string {
	return "[" + i.KeyName + ": " + i.KeyType + "]: " + i.ReturnType + ";"
}
