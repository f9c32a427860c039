package parser

import "fmt"

// ErrorKind identifies the failure class of a SyntaxError.
type ErrorKind uint8

const (
	// UnterminatedString means the lexer reached end of input inside "...".
	UnterminatedString ErrorKind = iota

	// InvalidNameAtScopeBinding means name = { ... } where name is not a
	// valid value.
	InvalidNameAtScopeBinding

	// InvalidNameAtBinding means name = value where name is invalid.
	InvalidNameAtBinding

	// InvalidValueAtBinding means name = value where value is invalid.
	InvalidValueAtBinding

	// UnmatchedClosingBrace means } was seen with the current scope already
	// at the file root.
	UnmatchedClosingBrace

	// MissingClosingBrace means end of input was reached with unclosed
	// scopes.
	MissingClosingBrace

	// UnexpectedToken means a bare lexeme that is neither a valid value nor
	// part of a binding or comment.
	UnexpectedToken
)

var errorKindMessages = map[ErrorKind]string{
	UnterminatedString:        "unterminated string",
	InvalidNameAtScopeBinding: "invalid name at scope binding",
	InvalidNameAtBinding:      "invalid name at binding",
	InvalidValueAtBinding:     "invalid value at binding",
	UnmatchedClosingBrace:     "unmatched closing brace",
	MissingClosingBrace:       "missing closing brace",
	UnexpectedToken:           "unexpected token",
}

func (k ErrorKind) String() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return "unknown error"
}

// SyntaxError describes a failure while lexing or parsing a file. A single
// error aborts the parse of its file; no partial tree is returned. The
// parser does not resynchronise.
type SyntaxError struct {
	Kind  ErrorKind
	File  string
	Line  int // 1-indexed line of the offending lexeme
	Token string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Kind)
}

// Detail renders the full diagnostic block for user-facing reporting.
func (e *SyntaxError) Detail() string {
	return fmt.Sprintf("Token: '%s'\nLine: %d\nFile: %s", e.Token, e.Line, e.File)
}
