package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/clausewitz/parser"
)

func TestRenderSyntaxErrorWithSource(t *testing.T) {
	source := []byte("a = 1\n= 5\nb = 2\n")
	err := &parser.SyntaxError{
		Kind:  parser.InvalidNameAtBinding,
		File:  "test.txt",
		Line:  2,
		Token: "=",
	}

	out := NewErrorRenderer(source).Render(err)

	assert.Contains(t, out, "test.txt:2: invalid name at binding")
	assert.Contains(t, out, "Token: '='")
	assert.Contains(t, out, "Line: 2")
	assert.Contains(t, out, "File: test.txt")
	assert.Contains(t, out, "= 5")
	assert.Contains(t, out, "^")
}

func TestRenderSyntaxErrorWithoutSource(t *testing.T) {
	err := &parser.SyntaxError{
		Kind:  parser.MissingClosingBrace,
		File:  "test.txt",
		Line:  3,
		Token: "",
	}

	out := NewErrorRenderer(nil).Render(err)

	assert.Contains(t, out, "missing closing brace")
	assert.Contains(t, out, "Line: 3")
	assert.False(t, strings.Contains(out, "^"))
}

func TestRenderPlainError(t *testing.T) {
	out := NewErrorRenderer(nil).Render(errors.New("boom"))

	assert.Equal(t, "boom", out)
}

func TestRenderAll(t *testing.T) {
	errs := []error{
		&parser.SyntaxError{Kind: parser.UnterminatedString, File: "a.txt", Line: 1},
		&parser.SyntaxError{Kind: parser.UnmatchedClosingBrace, File: "b.txt", Line: 2, Token: "}"},
	}

	out := NewErrorRenderer(nil).RenderAll(errs)

	assert.Contains(t, out, "a.txt:1: unterminated string")
	assert.Contains(t, out, "b.txt:2: unmatched closing brace")
	assert.Contains(t, out, "\n\n")
}

func TestRenderAllEmpty(t *testing.T) {
	assert.Equal(t, "", NewErrorRenderer(nil).RenderAll(nil))
}

func TestCaretColumn(t *testing.T) {
	assert.Equal(t, 2, caretColumn("a !bad c", "!bad"))
	assert.Equal(t, -1, caretColumn("a b c", "missing"))
	assert.Equal(t, -1, caretColumn("a b c", ""))
}
