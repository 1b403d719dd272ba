// Package tsdecl builds and renders ambient type-declaration source text.
//
// Callers assemble a tree of typed nodes — modules, exports, interfaces,
// classes, functions, variables, parameters — with the New* constructors and
// render it to indented, syntactically correct declaration text. The package
// is for code generators that emit type-only declaration files and do not
// want to hand-format strings. It parses nothing and validates nothing: the
// tree is taken as constructed.
//
// # Building trees
//
// One constructor per node variant; containers take their children as
// trailing arguments:
//
//	m := tsdecl.NewModuleDeclaration("'api'",
//		tsdecl.NewExportDeclaration(tsdecl.NewFunction("get", []*tsdecl.Param{
//			tsdecl.NewParam("url", "string"),
//		}, "Response")),
//		tsdecl.NewInterface("Response", nil,
//			tsdecl.NewInterfaceProperty("status", "number", false, false),
//		),
//	)
//
// Trees are built bottom-up and are immutable once constructed; the one
// post-construction step is [AttachComments], which copies leading comments
// from an original-source node implementing [Commenter].
//
// # Rendering
//
// [Render] walks the tree with an immutable [Context] and returns a string;
// [RenderDefault] uses [DefaultContext] with functional options applied:
//
//	text := tsdecl.RenderDefault(m, tsdecl.WithIndentUnit("\t"))
//
// Each nesting level indents by one indent unit. Rendering a subtree at depth
// d is identical to rendering it at depth zero and prefixing every line with
// the indent unit repeated d times. Rendering is pure: the same tree and
// context always produce the same text, and concurrent renders need no
// coordination.
//
// [Write] and [Marshal] are io.Writer-oriented entry points over [Render];
// [Dump] writes the tree itself as YAML for debugging.
//
// # Comments
//
// Line comments render as "// text", block comments as "/*text*/"; records of
// any other kind are silently dropped. A non-empty comment block occupies its
// own lines above the declaration. Comments can be suppressed for a whole
// render pass with [WithSuppressComments]. Parameters never render comments:
// their output is embedded inside a signature line.
//
// # Absent statements
//
// A variable declaration whose declarators all render to nothing renders to
// the empty string, and every container drops such children. This lets
// generators emit declarations unconditionally and have empty ones vanish.
//
// # Errors
//
// Rendering has no failure path. The single fault is [ErrNotImplemented],
// raised as a panic when the abstract base body is invoked directly — a
// construction bug in the calling generator, never a data problem.
package tsdecl
