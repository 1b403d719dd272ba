package tsdecl

// Param is a function, method, or constructor parameter.
type Param struct {
	BaseNode `yaml:",inline"`

	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Rest bool   `yaml:"rest,omitempty"`
}

// NewParam returns a parameter named name with the given type text.
func NewParam(name, typ string) *Param {
	return &Param{Name: name, Type: typ}
}

// AsRest returns a rest variant of p. It never mutates p: if p is already a
// rest parameter it is returned as-is, otherwise a copy with Rest set is
// returned. Idempotent.
func (p *Param) AsRest() *Param {
	if p.Rest {
		return p
	}
	rest := *p
	rest.Rest = true
	return &rest
}

func (p *Param) body(Context) string {
	if p.Rest {
		return "..." + p.Name + ": " + p.Type
	}
	return p.Name + ": " + p.Type
}

func (p *Param) commentFree() {}
