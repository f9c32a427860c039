// Package formatter renders Clausewitz syntax trees back into canonical
// script text.
//
// Output discipline: one tab per nesting level, comments as "# text" lines
// placed symmetrically to how the parser attached them, and list-like scopes
// rendered either inline (space-separated tokens) or one token per line when
// the scope is marked indented. Serializing a parsed tree and reparsing the
// result yields an equal tree; serializing twice yields identical text. The
// exception is a comment whose text contains = or # directly before a bare
// token: on reparse the parser treats that token as a binding or comment
// neighbour and drops it.
package formatter

import (
	"io"
	"runtime"
	"strings"

	"github.com/robinvdvleuten/clausewitz/ast"
)

// Formatter renders scopes with a configurable line ending.
type Formatter struct {
	// LineEnding terminates every emitted line. Defaults to the platform
	// convention: \r\n on windows, \n elsewhere.
	LineEnding string
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithLineEnding overrides the platform line ending. Useful for
// deterministic output in tests and pipes.
func WithLineEnding(ending string) Option {
	return func(f *Formatter) {
		f.LineEnding = ending
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		LineEnding: platformLineEnding(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func platformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Serialize renders a scope to a string. A level-0 scope is rendered as a
// whole file (preamble comments, members, trailing comments); a nested scope
// is rendered as a braced block at its own indentation.
func (f *Formatter) Serialize(scope *ast.Scope) string {
	var buf strings.Builder
	buf.Grow(f.estimate(scope))

	if scope.Level == 0 {
		f.writeFile(scope, &buf)
	} else {
		f.writeScope(scope, strings.Repeat("\t", scope.Level-1), &buf)
	}

	return buf.String()
}

// Write renders a file tree to a sink.
func (f *Formatter) Write(file *ast.FileScope, w io.Writer) error {
	_, err := io.WriteString(w, f.Serialize(&file.Scope))
	return err
}

// writeFile renders a root scope: preamble comments separated from the body
// by a blank line, the members, then the file's end comments each preceded
// by a line break.
func (f *Formatter) writeFile(s *ast.Scope, buf *strings.Builder) {
	if len(s.Comments) > 0 {
		for _, c := range s.Comments {
			buf.WriteString("# ")
			buf.WriteString(c)
			buf.WriteString(f.LineEnding)
		}
		buf.WriteString(f.LineEnding)
	}

	f.writeMembers(s, buf)

	for _, c := range s.EndComments {
		buf.WriteString(f.LineEnding)
		buf.WriteString("# ")
		buf.WriteString(c)
	}
}

// writeMembers renders the members of a scope, each line prefixed with one
// tab per nesting level.
func (f *Formatter) writeMembers(s *ast.Scope, buf *strings.Builder) {
	tabs := strings.Repeat("\t", s.Level)

	for i, m := range s.Members {
		switch c := m.(type) {
		case *ast.Binding:
			f.writeComments(c.Comments, tabs, buf)
			buf.WriteString(tabs)
			buf.WriteString(c.Name)
			buf.WriteString(" = ")
			buf.WriteString(c.Value)
			buf.WriteString(f.LineEnding)

		case *ast.Scope:
			f.writeComments(c.Comments, tabs, buf)
			f.writeScope(c, tabs, buf)

		case *ast.Token:
			f.writeToken(s, i, c, tabs, buf)
		}
	}
}

// writeScope renders a nested scope block at the given indentation. Leading
// comments are the caller's responsibility; they sit at the parent level.
func (f *Formatter) writeScope(c *ast.Scope, tabs string, buf *strings.Builder) {
	buf.WriteString(tabs)
	if !c.Anonymous() {
		buf.WriteString(c.Name)
		buf.WriteString(" = ")
	}
	buf.WriteString("{")

	// A scope with only end comments still needs the expanded layout; a
	// collapsed {} would drop them.
	if len(c.Members) == 0 && len(c.EndComments) == 0 {
		buf.WriteString("}")
		buf.WriteString(f.LineEnding)
		return
	}

	buf.WriteString(f.LineEnding)
	f.writeMembers(c, buf)

	inner := tabs + "\t"
	for _, ec := range c.EndComments {
		buf.WriteString(inner)
		buf.WriteString("# ")
		buf.WriteString(ec)
		buf.WriteString(f.LineEnding)
	}

	buf.WriteString(tabs)
	buf.WriteString("}")
	buf.WriteString(f.LineEnding)
}

// writeToken renders a bare token. In an indented scope every token gets its
// own line. Otherwise tokens flow inline, space-separated, with a line break
// forced around any token that neighbours a non-token member or a commented
// token.
func (f *Formatter) writeToken(s *ast.Scope, i int, c *ast.Token, tabs string, buf *strings.Builder) {
	if s.Indented {
		f.writeComments(c.Comments, tabs, buf)
		buf.WriteString(tabs)
		buf.WriteString(c.Value)
		buf.WriteString(f.LineEnding)
		return
	}

	f.writeComments(c.Comments, tabs, buf)

	startsLine := i == 0 || len(c.Comments) > 0
	if !startsLine {
		if _, ok := s.Members[i-1].(*ast.Token); !ok {
			startsLine = true
		}
	}

	if startsLine {
		buf.WriteString(tabs)
	} else {
		buf.WriteString(" ")
	}
	buf.WriteString(c.Value)

	endsLine := i == len(s.Members)-1
	if !endsLine {
		next, ok := s.Members[i+1].(*ast.Token)
		endsLine = !ok || len(next.Comments) > 0
	}
	if endsLine {
		buf.WriteString(f.LineEnding)
	}
}

// writeComments renders leading comment lines at the given indentation.
func (f *Formatter) writeComments(comments []string, tabs string, buf *strings.Builder) {
	for _, c := range comments {
		buf.WriteString(tabs)
		buf.WriteString("# ")
		buf.WriteString(c)
		buf.WriteString(f.LineEnding)
	}
}

// estimate guesses the output size to seed the builder.
func (f *Formatter) estimate(s *ast.Scope) int {
	size := 64
	for _, m := range s.Members {
		switch c := m.(type) {
		case *ast.Binding:
			size += len(c.Name) + len(c.Value) + 8
		case *ast.Token:
			size += len(c.Value) + 4
		case *ast.Scope:
			size += f.estimate(c) + len(c.Name) + 16
		}
	}
	return size
}
