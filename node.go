package tsdecl

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// ErrNotImplemented is the panic value raised when the abstract base body is
// invoked directly. Every catalogue variant overrides the body hook; hitting
// this indicates a construction bug in the calling generator, not bad data.
var ErrNotImplemented = errors.New("tsdecl: node body not implemented")

// Node is one element of a declaration tree. The catalogue is closed: all
// implementations live in this package and are built through the New*
// constructors. A node never indents its own first line; it only indents
// lines belonging to its children when it recurses into them.
type Node interface {
	// Base exposes the shared node state (attached comments).
	Base() *BaseNode

	// body renders the type-specific declaration text, without comments and
	// without outer indentation. An empty result means "no statement".
	body(ctx Context) string
}

// BaseNode is the shared state embedded in every catalogue variant.
type BaseNode struct {
	Comments []Comment `yaml:"comments,omitempty"`
}

// Base returns the node's shared state.
func (b *BaseNode) Base() *BaseNode { return b }

func (b *BaseNode) body(Context) string { panic(ErrNotImplemented) }

// AttachComments copies the ordered comment records exposed by src onto n and
// returns n. src is typically a node of the original-source AST; if it does
// not implement [Commenter], or exposes no records, n ends up with no
// comments. Attaching again overwrites the previous records. Intended as a
// one-time step between construction and the first render.
func AttachComments[N Node](n N, src any) N {
	c, ok := src.(Commenter)
	if !ok {
		n.Base().Comments = nil
		return n
	}
	records := c.Comments()
	if len(records) == 0 {
		n.Base().Comments = nil
		return n
	}
	n.Base().Comments = append([]Comment(nil), records...)
	return n
}

// Render renders n under ctx: the comment block followed by the node body,
// with every output line prefixed by the indenter for ctx. Rendering is pure
// and repeatable; an absent statement (see [NewVariableDeclaration]) renders
// to the empty string.
func Render(n Node, ctx Context) string {
	body := n.body(ctx)
	if body == "" {
		return ""
	}
	return indentLines(commentBlock(n, ctx)+body, ctx)
}

// RenderDefault renders n under [DefaultContext] with opts applied.
func RenderDefault(n Node, opts ...Option) string {
	ctx := DefaultContext()
	for _, opt := range opts {
		opt(&ctx)
	}
	return Render(n, ctx)
}

// Write renders each node under ctx and writes every non-absent render to w,
// terminated by a newline.
func Write(w io.Writer, ctx Context, nodes ...Node) error {
	for _, n := range nodes {
		out := Render(n, ctx)
		if out == "" {
			continue
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders each node under ctx and returns the bytes.
func Marshal(ctx Context, nodes ...Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ctx, nodes...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderEach renders each child under ctx and drops absent statements.
func renderEach(children []Node, ctx Context) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		if s := Render(c, ctx); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// renderBlock wraps rendered children in braces after header. An empty child
// list collapses to a bare brace pair with no blank line.
func renderBlock(header string, children []string) string {
	if len(children) == 0 {
		return header + " {\n}"
	}
	return header + " {\n" + strings.Join(children, "\n") + "\n}"
}
