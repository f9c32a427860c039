// Package ast declares the types used to represent syntax trees for
// Clausewitz script files.
//
// A Clausewitz file is a tree of scopes containing bindings (name = value),
// bare tokens (positional values in list-like scopes), nested scopes, and
// comments attached to the constructs they annotate. The tree can be created
// by parsing a file using the parser package, or constructed programmatically
// for generating script output.
package ast

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Construct is the interface implemented by every node that can appear as a
// member of a scope: *Scope, *Binding, and *Token.
type Construct interface {
	Commented

	construct()
}

// Commented is the interface for constructs that carry leading comments.
type Commented interface {
	AddComments(...string)
}

// Scope is a container of ordered members delimited by braces. A scope with
// an empty Name is anonymous. Member order is semantically significant and
// is preserved by both the parser and the serializer.
type Scope struct {
	Name    string
	Members []Construct

	// Comments are the scope's leading comments: full-line comments preceding
	// it and comments attached on its opening or closing brace line (on a file
	// scope, the file preamble). EndComments are the comments sitting before
	// the closing brace, owned by the scope itself.
	Comments    []string
	EndComments []string

	// Indented renders bare tokens one per line instead of space-separated.
	// Sorted requests a stable member sort at scope close. Both are
	// serialization hints; the parser never sets them.
	Indented bool
	Sorted   bool

	// Level is the nesting depth. A file scope is level 0, its children are
	// level 1, and so on.
	Level int
}

func (s *Scope) construct() {}

// AddComments appends leading comments to the scope.
func (s *Scope) AddComments(texts ...string) {
	s.Comments = append(s.Comments, texts...)
}

// AddEndComments appends comments owned by the closing brace of the scope.
func (s *Scope) AddEndComments(texts ...string) {
	s.EndComments = append(s.EndComments, texts...)
}

// Anonymous reports whether the scope has no name.
func (s *Scope) Anonymous() bool {
	return s.Name == ""
}

// ListLike reports whether every member of the scope is a bare token.
// An empty scope is not list-like.
func (s *Scope) ListLike() bool {
	if len(s.Members) == 0 {
		return false
	}
	for _, m := range s.Members {
		if _, ok := m.(*Token); !ok {
			return false
		}
	}
	return true
}

// FileScope is the root of a parsed file. Its Address is the file path as
// reported in errors, normally relative to the working directory.
type FileScope struct {
	Scope

	Address string
}

// Binding is a name = value pair inside a scope. Name and Value hold the raw
// lexemes from the source; quoted strings retain their surrounding quotes.
type Binding struct {
	Name     string
	Value    string
	Comments []string
}

func (b *Binding) construct() {}

// AddComments appends leading comments to the binding.
func (b *Binding) AddComments(texts ...string) {
	b.Comments = append(b.Comments, texts...)
}

// Token is a bare positional value inside a list-like scope.
type Token struct {
	Value    string
	Comments []string
}

func (t *Token) construct() {}

// AddComments appends leading comments to the token.
func (t *Token) AddComments(texts ...string) {
	t.Comments = append(t.Comments, texts...)
}

// SortMembers stably sorts the members of a scope: bindings and named scopes
// by name, bare tokens by value. Anonymous scopes sort after everything else
// and keep their insertion order among themselves.
func SortMembers(s *Scope) {
	slices.SortStableFunc(s.Members, compareConstructs)
}

// compareConstructs orders two scope members for SortMembers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func compareConstructs(a, b Construct) int {
	aKey, aAnon := sortKey(a)
	bKey, bAnon := sortKey(b)

	if aAnon != bAnon {
		if aAnon {
			return 1
		}
		return -1
	}

	return strings.Compare(aKey, bKey)
}

// sortKey returns the sort key for a member and whether it is an anonymous
// scope (which always sorts last).
func sortKey(c Construct) (key string, anonymous bool) {
	switch m := c.(type) {
	case *Binding:
		return m.Name, false
	case *Scope:
		if m.Anonymous() {
			return "", true
		}
		return m.Name, false
	case *Token:
		return m.Value, false
	default:
		return "", true
	}
}
