package tsdecl

import "strings"

// ExportAllFrom re-exports everything from another module.
type ExportAllFrom struct {
	BaseNode `yaml:",inline"`

	Source string `yaml:"source"`
}

// NewExportAllFrom returns "export * from '<source>';".
func NewExportAllFrom(source string) *ExportAllFrom {
	return &ExportAllFrom{Source: source}
}

func (e *ExportAllFrom) body(Context) string {
	return "export * from '" + e.Source + "';"
}

// braceTerminated is implemented by declarations that end in a brace and take
// no trailing semicolon when exported. Only [Class].
type braceTerminated interface {
	braceTerminated()
}

// ExportDeclaration wraps a declaration with the "export " prefix.
type ExportDeclaration struct {
	BaseNode `yaml:",inline"`

	Decl Node `yaml:"decl"`
}

// NewExportDeclaration returns an exported declaration. A trailing semicolon
// is appended unless the wrapped declaration terminates itself with a brace.
// If the wrapped declaration is absent, the export is absent too.
func NewExportDeclaration(decl Node) *ExportDeclaration {
	return &ExportDeclaration{Decl: decl}
}

func (e *ExportDeclaration) body(ctx Context) string {
	decl := Render(e.Decl, ctx.inline())
	if decl == "" {
		return ""
	}
	if _, ok := e.Decl.(braceTerminated); ok {
		return "export " + decl
	}
	return "export " + decl + ";"
}

// ExportSpecifier names one export inside an export list, optionally aliased.
type ExportSpecifier struct {
	BaseNode `yaml:",inline"`

	Exported string `yaml:"exported"`
	Local    string `yaml:"local,omitempty"`
}

// NewExportSpecifier returns a specifier. local may be empty or equal to
// exported, in which case no alias is rendered.
func NewExportSpecifier(exported, local string) *ExportSpecifier {
	return &ExportSpecifier{Exported: exported, Local: local}
}

func (s *ExportSpecifier) body(Context) string {
	if s.Local == "" || s.Local == s.Exported {
		return s.Exported
	}
	return s.Exported + " as " + s.Local
}

// Export is an export list, optionally re-exported from a source module.
type Export struct {
	BaseNode `yaml:",inline"`

	Specifiers []*ExportSpecifier `yaml:"specifiers"`
	Source     string             `yaml:"source,omitempty"`
}

// NewExport returns an export list. source may be empty for a plain export.
func NewExport(specifiers []*ExportSpecifier, source string) *Export {
	return &Export{Specifiers: specifiers, Source: source}
}

func (e *Export) body(ctx Context) string {
	specs := make([]string, 0, len(e.Specifiers))
	for _, s := range e.Specifiers {
		if out := Render(s, ctx.nested()); out != "" {
			specs = append(specs, out)
		}
	}
	var block string
	if len(specs) == 0 {
		block = "export {\n}"
	} else {
		block = "export {\n" + strings.Join(specs, ",\n") + "\n}"
	}
	if e.Source != "" {
		return block + " from '" + e.Source + "';"
	}
	return block + ";"
}
