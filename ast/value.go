package ast

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel is the reserved value certain game data files use to denote
// "no value". It is accepted by IsValidValue even though it contains neither
// digits nor identifier characters.
const Sentinel = "---"

// IsValidValue reports whether a lexeme is legal as a binding name, binding
// value, or bare token. A lexeme is valid if it contains any decimal digit,
// equals the --- sentinel, is a quoted string, or consists entirely of
// identifier characters, dots, colons, or double quotes.
//
// The digit disjunct is deliberately permissive: a lexeme like "abc1!" passes
// because it contains a digit. Game data in the wild relies on this. Quoted
// lexemes are valid as a whole because the lexer has already grouped them;
// their contents are opaque.
func IsValidValue(lexeme string) bool {
	if lexeme == Sentinel {
		return true
	}
	if len(lexeme) == 0 {
		return false
	}
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return true
	}

	identOnly := true
	for i := 0; i < len(lexeme); i++ {
		ch := lexeme[i]
		if ch >= '0' && ch <= '9' {
			return true
		}
		if !isIdentChar(ch) {
			identOnly = false
		}
	}

	return identOnly
}

// isIdentChar reports whether ch is in the identifier class [A-Za-z0-9_.:"].
// Quotes are included so that string lexemes, which retain their surrounding
// quotes, pass the predicate as a whole.
func isIdentChar(ch byte) bool {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '_' || ch == '.' || ch == ':' || ch == '"':
		return true
	default:
		return false
	}
}

// Unquote strips the surrounding double quotes from a string lexeme.
// Lexemes that are not quoted are returned unchanged. No escape decoding is
// performed; the tree stores lexemes verbatim.
func Unquote(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

// decimalValue parses a raw lexeme as an exact decimal number.
func decimalValue(lexeme string) (decimal.Decimal, error) {
	return decimal.NewFromString(Unquote(lexeme))
}

// boolValue interprets the yes/no convention used throughout game data.
func boolValue(lexeme string) (value, ok bool) {
	switch strings.ToLower(Unquote(lexeme)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

// Decimal parses the binding value as an exact decimal number. Values stay
// raw strings in the tree; decoding happens on demand.
func (b *Binding) Decimal() (decimal.Decimal, error) {
	return decimalValue(b.Value)
}

// Int parses the binding value as an integer.
func (b *Binding) Int() (int64, error) {
	return strconv.ParseInt(Unquote(b.Value), 10, 64)
}

// Bool interprets the binding value as a yes/no flag. The second result is
// false when the value is neither.
func (b *Binding) Bool() (value, ok bool) {
	return boolValue(b.Value)
}

// Unquote returns the binding value without surrounding quotes.
func (b *Binding) Unquote() string {
	return Unquote(b.Value)
}

// Decimal parses the token value as an exact decimal number.
func (t *Token) Decimal() (decimal.Decimal, error) {
	return decimalValue(t.Value)
}

// Unquote returns the token value without surrounding quotes.
func (t *Token) Unquote() string {
	return Unquote(t.Value)
}
