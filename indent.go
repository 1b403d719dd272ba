package tsdecl

import "strings"

// indenter returns the line-prefixing transform for ctx: identity at depth
// zero, otherwise the indent unit repeated depth times.
func indenter(ctx Context) func(string) string {
	if ctx.Depth == 0 {
		return func(line string) string { return line }
	}
	prefix := strings.Repeat(ctx.IndentUnit, ctx.Depth)
	return func(line string) string { return prefix + line }
}

// indentLines applies the indenter for ctx to every line of s.
func indentLines(s string, ctx Context) string {
	if ctx.Depth == 0 {
		return s
	}
	pre := indenter(ctx)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pre(line)
	}
	return strings.Join(lines, "\n")
}
