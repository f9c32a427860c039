// Package ast provides constructor functions for programmatically building
// Clausewitz syntax trees. These builders make it easy to generate script
// files from code, such as exporters or migration tools.
//
// The builders maintain the level invariant (a child scope is always one
// level deeper than its parent) and use functional options for serialization
// hints, following Go idioms for configurable constructors.
package ast

// ScopeOption is a functional option for configuring a new scope.
type ScopeOption func(*Scope)

// WithIndented marks the scope so bare tokens render one per line.
func WithIndented() ScopeOption {
	return func(s *Scope) {
		s.Indented = true
	}
}

// WithSorted sets the Sorted hint. The parser stably sorts such a scope's
// members when it closes it; the formatter does not sort and renders members
// in their stored order.
func WithSorted() ScopeOption {
	return func(s *Scope) {
		s.Sorted = true
	}
}

// WithComments sets leading comments on the scope.
func WithComments(texts ...string) ScopeOption {
	return func(s *Scope) {
		s.Comments = append(s.Comments, texts...)
	}
}

// WithEndComments sets comments owned by the closing brace of the scope.
func WithEndComments(texts ...string) ScopeOption {
	return func(s *Scope) {
		s.EndComments = append(s.EndComments, texts...)
	}
}

// NewFileScope creates an empty root scope for the given file address.
//
// Example:
//
//	file := ast.NewFileScope("common/traits.txt")
//	general := file.AddScope("martial_tradition")
//	general.AddBinding("martial", "2")
func NewFileScope(address string) *FileScope {
	return &FileScope{
		Address: address,
	}
}

// AddScope creates a named child scope, appends it to the members, and
// returns it. No validation is performed on the name; the parser enforces
// value validity only on parsed input.
func (s *Scope) AddScope(name string, opts ...ScopeOption) *Scope {
	child := &Scope{
		Name:  name,
		Level: s.Level + 1,
	}

	for _, opt := range opts {
		opt(child)
	}

	s.Members = append(s.Members, child)
	return child
}

// AddAnonymousScope creates an unnamed child scope, appends it to the
// members, and returns it.
func (s *Scope) AddAnonymousScope(opts ...ScopeOption) *Scope {
	child := &Scope{
		Level: s.Level + 1,
	}

	for _, opt := range opts {
		opt(child)
	}

	s.Members = append(s.Members, child)
	return child
}

// AddBinding appends a name = value pair to the scope and returns it.
// Name and value are stored as raw lexemes; wrap string values in quotes
// yourself when quoting is wanted.
func (s *Scope) AddBinding(name, value string) *Binding {
	b := &Binding{
		Name:  name,
		Value: value,
	}

	s.Members = append(s.Members, b)
	return b
}

// AddToken appends a bare positional value to the scope and returns it.
func (s *Scope) AddToken(value string) *Token {
	t := &Token{
		Value: value,
	}

	s.Members = append(s.Members, t)
	return t
}
