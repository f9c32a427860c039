// Package parser turns Clausewitz script text into an ast tree and reports
// structural failures as SyntaxError values.
//
// Parsing is a two-stage, purely synchronous computation: the lexer flattens
// the input into a lexeme sequence, then a small LL pass walks that sequence
// left to right with a window of two lexemes behind and one ahead, maintaining a
// current-scope cursor and a pending-comment queue. Lexemes are discarded
// once the tree is built.
package parser

import (
	"context"
	"strings"

	"github.com/robinvdvleuten/clausewitz/ast"
	"github.com/robinvdvleuten/clausewitz/telemetry"
)

// Parser builds a file tree from a lexeme sequence. The scope cursor is an
// explicit stack with the file root at the bottom; constructs carry no
// parent pointers.
type Parser struct {
	lexemes []Lexeme
	address string

	root    *ast.FileScope
	stack   []*ast.Scope
	pending []pendingComment
}

// pendingComment is a full-line comment waiting to be associated with the
// next construct created in the current scope.
type pendingComment struct {
	text string
	line int
}

// ParseFile parses a source buffer into a file tree. The address is recorded
// on the tree and on any SyntaxError.
func ParseFile(ctx context.Context, source []byte, address string) (*ast.FileScope, error) {
	timer := telemetry.FromContext(ctx).Start("parse " + address)
	defer timer.End()

	scan := timer.Child("scan")
	lexemes, err := NewLexer(source, address).ScanAll()
	scan.End()
	if err != nil {
		return nil, err
	}

	build := timer.Child("build")
	defer build.End()

	p := &Parser{
		lexemes: lexemes,
		address: address,
	}
	return p.parse()
}

// ParseString parses a source string into a file tree.
func ParseString(ctx context.Context, source, address string) (*ast.FileScope, error) {
	return ParseFile(ctx, []byte(source), address)
}

// at returns the lexeme at index i, or a zero lexeme when out of range.
// The zero lexeme has empty text, so neighbour checks against it fail
// naturally.
func (p *Parser) at(i int) Lexeme {
	if i < 0 || i >= len(p.lexemes) {
		return Lexeme{}
	}
	return p.lexemes[i]
}

// current returns the scope under construction.
func (p *Parser) current() *ast.Scope {
	return p.stack[len(p.stack)-1]
}

// parse runs the dispatch loop over the lexeme sequence.
//
// At each index the parser inspects the current lexeme and its immediate
// neighbours. The window reaches two lexemes behind and one ahead: the
// open-brace rule needs prev-prev to recover the name in `name = {`, and the
// binding rule needs next to recover the value.
func (p *Parser) parse() (*ast.FileScope, error) {
	p.root = ast.NewFileScope(p.address)
	p.stack = []*ast.Scope{&p.root.Scope}

	for i := 0; i < len(p.lexemes); i++ {
		cur := p.lexemes[i]
		prev := p.at(i - 1)
		prevprev := p.at(i - 2)
		next := p.at(i + 1)

		switch {
		case cur.Text == "{" && prev.Text != "#":
			if err := p.openScope(prevprev, prev); err != nil {
				return nil, err
			}

		case cur.Text == "}" && prev.Text != "#":
			if err := p.closeScope(cur); err != nil {
				return nil, err
			}

		case cur.Text == "=" && prev.Text != "#":
			if err := p.binding(prev, cur, next); err != nil {
				return nil, err
			}

		case cur.Text == "#" && prev.Text != "#":
			p.comment(prev, next)

		default:
			if err := p.bareToken(prev, cur, next); err != nil {
				return nil, err
			}
		}
	}

	if len(p.stack) > 1 {
		return nil, &SyntaxError{
			Kind: MissingClosingBrace,
			File: p.address,
			Line: p.lastLine(),
		}
	}

	// Whatever is still queued at end of input belongs to the file itself.
	p.flushEnd(&p.root.Scope)

	return p.root, nil
}

// openScope handles a { lexeme: create a named or anonymous child and make
// it the scope under construction.
func (p *Parser) openScope(name, binder Lexeme) error {
	parent := p.current()

	var child *ast.Scope
	if binder.Text == "=" {
		if !ast.IsValidValue(name.Text) {
			token, line := name.Text, name.Line
			if token == "" {
				token, line = binder.Text, binder.Line
			}
			return &SyntaxError{
				Kind:  InvalidNameAtScopeBinding,
				File:  p.address,
				Line:  line,
				Token: token,
			}
		}
		child = parent.AddScope(name.Text)
	} else {
		child = parent.AddAnonymousScope()
	}

	p.stack = append(p.stack, child)
	p.flushLeading(parent, child)

	return nil
}

// closeScope handles a } lexeme: queued comments become end comments of the
// scope being closed, a requested sort runs, and construction ascends.
func (p *Parser) closeScope(cur Lexeme) error {
	p.flushEnd(p.current())

	if len(p.stack) == 1 {
		return &SyntaxError{
			Kind:  UnmatchedClosingBrace,
			File:  p.address,
			Line:  cur.Line,
			Token: cur.Text,
		}
	}

	closed := p.current()
	p.stack = p.stack[:len(p.stack)-1]

	if closed.Sorted {
		ast.SortMembers(closed)
	}

	return nil
}

// binding handles an = lexeme. When the value is an opening brace the brace
// rule consumes the whole construct, so nothing happens here.
func (p *Parser) binding(name, cur, value Lexeme) error {
	if value.Text == "{" {
		return nil
	}

	if !ast.IsValidValue(name.Text) {
		token := name.Text
		if token == "" {
			token = cur.Text
		}
		return &SyntaxError{
			Kind:  InvalidNameAtBinding,
			File:  p.address,
			Line:  cur.Line,
			Token: token,
		}
	}

	if !ast.IsValidValue(value.Text) {
		token := value.Text
		if token == "" {
			token = cur.Text
		}
		return &SyntaxError{
			Kind:  InvalidValueAtBinding,
			File:  p.address,
			Line:  cur.Line,
			Token: token,
		}
	}

	b := p.current().AddBinding(name.Text, value.Text)
	p.flushLeading(p.current(), b)

	return nil
}

// comment handles a # lexeme; the lexeme after it is the body, possibly
// empty. A comment on the same line as the preceding lexeme attaches
// immediately: to the just-opened scope when it follows {, otherwise to the
// last member of the current scope. A comment on a line of its own is
// queued until the next construct is created.
func (p *Parser) comment(prev, body Lexeme) {
	text := strings.TrimSpace(body.Text)

	attached := prev.Text != "" && body.Line == prev.Line
	if !attached {
		p.pending = append(p.pending, pendingComment{text: text, line: body.Line})
		return
	}

	if prev.Text == "{" {
		// The brace rule already descended, so the current scope is the one
		// this comment heads.
		p.current().AddComments(text)
		return
	}

	members := p.current().Members
	if len(members) == 0 {
		p.current().AddComments(text)
		return
	}
	members[len(members)-1].AddComments(text)
}

// bareToken handles any other lexeme. It is consumed elsewhere when a
// neighbour makes it part of a binding (either side of an =) or when it is a
// comment body (right after a #). String lexemes are opaque: an = or # inside
// quotes consumes nothing.
func (p *Parser) bareToken(prev, cur, next Lexeme) error {
	if containsSpecial(prev, '=') || containsSpecial(next, '=') || containsSpecial(prev, '#') {
		return nil
	}

	if !ast.IsValidValue(cur.Text) {
		return &SyntaxError{
			Kind:  UnexpectedToken,
			File:  p.address,
			Line:  cur.Line,
			Token: cur.Text,
		}
	}

	t := p.current().AddToken(cur.Text)
	p.flushLeading(p.current(), t)

	return nil
}

// containsSpecial reports whether a neighbouring lexeme carries a special
// character, ignoring quoted lexemes entirely.
func containsSpecial(l Lexeme, ch byte) bool {
	if l.Quoted() {
		return false
	}
	return strings.IndexByte(l.Text, ch) >= 0
}

// flushLeading moves the queued comments onto a freshly created construct as
// leading comments.
//
// One refinement applies at the top of a file: when the construct is the
// first member of the root, the queue is split so that a comment block
// separated from the construct by a line gap stays with the file itself (the
// preamble) while the block adjacent to the construct travels with it. The
// split point is found by walking the queue backwards while line numbers
// remain consecutive.
func (p *Parser) flushLeading(parent *ast.Scope, c ast.Commented) {
	if len(p.pending) == 0 {
		return
	}

	rootScope := &p.root.Scope
	if parent == rootScope && len(rootScope.Members) == 1 {
		split := len(p.pending) - 1
		for split > 0 && p.pending[split].line == p.pending[split-1].line+1 {
			split--
		}

		for _, pc := range p.pending[:split] {
			rootScope.AddComments(pc.text)
		}
		for _, pc := range p.pending[split:] {
			c.AddComments(pc.text)
		}
		p.pending = p.pending[:0]
		return
	}

	for _, pc := range p.pending {
		c.AddComments(pc.text)
	}
	p.pending = p.pending[:0]
}

// flushEnd moves the queued comments onto a scope as end comments.
func (p *Parser) flushEnd(s *ast.Scope) {
	for _, pc := range p.pending {
		s.AddEndComments(pc.text)
	}
	p.pending = p.pending[:0]
}

// lastLine returns the line of the final lexeme, for end-of-input errors.
func (p *Parser) lastLine() int {
	if len(p.lexemes) == 0 {
		return 1
	}
	return p.lexemes[len(p.lexemes)-1].Line
}
