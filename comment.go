package tsdecl

import "strings"

// CommentKind discriminates comment records. Kinds other than [LineComment]
// and [BlockComment] are valid input but render to nothing.
type CommentKind string

const (
	LineComment  CommentKind = "Line"
	BlockComment CommentKind = "Block"
)

// Comment is one leading comment carried forward from the original source.
type Comment struct {
	Kind CommentKind `yaml:"kind"`
	Text string      `yaml:"text"`
}

// Commenter is the optional interface a source node implements to expose its
// leading comments to [AttachComments]. Absence means "no comments".
type Commenter interface {
	Comments() []Comment
}

// commentFree is implemented by variants whose comments are never rendered,
// even when attached. Only parameters: their output is embedded inside a
// signature line, where a comment block has no place.
type commentFree interface {
	commentFree()
}

// commentBlock renders n's attached comments, one line per surviving record,
// wrapped in a leading and trailing newline so the block occupies its own
// lines above the body. Unrecognized kinds are dropped; if nothing survives
// the result is empty.
func commentBlock(n Node, ctx Context) string {
	if ctx.SuppressComments {
		return ""
	}
	if _, ok := n.(commentFree); ok {
		return ""
	}
	var lines []string
	for _, c := range n.Base().Comments {
		switch c.Kind {
		case LineComment:
			lines = append(lines, "// "+c.Text)
		case BlockComment:
			lines = append(lines, "/*"+c.Text+"*/")
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}
