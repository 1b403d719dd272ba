package tsdecl

// Context is the immutable environment threaded through rendering. It carries
// the indentation depth, the indent unit, the continuation indent used for
// multi-declarator variable declarations, and the comment-suppression flag.
//
// Context is a value type; every transform returns a copy. A zero Context is
// valid but renders without indentation units — use [DefaultContext] or
// [RenderDefault] for the standard two-space configuration.
type Context struct {
	// Depth is the current nesting depth. Each line of a node's output is
	// prefixed with IndentUnit repeated Depth times.
	Depth int

	// IndentUnit is the string repeated per depth level.
	IndentUnit string

	// ContinuationIndentUnit prefixes the second and later declarators of a
	// multi-declarator variable declaration.
	ContinuationIndentUnit string

	// SuppressComments disables comment rendering for the whole render pass.
	SuppressComments bool
}

// DefaultIndent is the indent unit used by [DefaultContext].
const DefaultIndent = "  "

// DefaultContext returns the standard rendering context: depth zero,
// two-space indent and continuation indent, comments enabled.
func DefaultContext() Context {
	return Context{
		IndentUnit:             DefaultIndent,
		ContinuationIndentUnit: DefaultIndent,
	}
}

// Deeper returns a copy of the context with the depth incremented by one.
// All configuration fields carry over unchanged.
func (c Context) Deeper() Context {
	c.Depth++
	return c
}

// inline returns the context children render with when their output is
// embedded inside one of the container's own lines (parameters, declarators,
// an exported declaration). Depth zero: the enclosing render pass indents the
// finished line.
func (c Context) inline() Context {
	c.Depth = 0
	return c
}

// nested returns the context block children render with. Depth restarts at
// one rather than continuing from the container's absolute depth: the
// container's own render pass prefixes every line it emits, so carrying the
// absolute depth down would indent child lines twice.
func (c Context) nested() Context {
	return c.inline().Deeper()
}

// Option overrides a single field of the default context in [RenderDefault].
type Option func(*Context)

// WithDepth sets the starting depth.
func WithDepth(depth int) Option {
	return func(c *Context) { c.Depth = depth }
}

// WithIndentUnit sets the per-level indent string.
func WithIndentUnit(unit string) Option {
	return func(c *Context) { c.IndentUnit = unit }
}

// WithContinuationIndentUnit sets the continuation indent for
// multi-declarator variable declarations.
func WithContinuationIndentUnit(unit string) Option {
	return func(c *Context) { c.ContinuationIndentUnit = unit }
}

// WithSuppressComments disables comment rendering.
func WithSuppressComments(suppress bool) Option {
	return func(c *Context) { c.SuppressComments = suppress }
}
