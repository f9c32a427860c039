package formatter

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/clausewitz/ast"
)

func TestFormatFilePreamble(t *testing.T) {
	out := format(t, "# copyright 2024\n# author: x\n\n# describes foo\nfoo = 1\n")

	assert.Equal(t, "# copyright 2024\n# author: x\n\n# describes foo\nfoo = 1\n", out)
}

func TestFormatLeadingComments(t *testing.T) {
	out := format(t, "x = 1\n# about y\ny = 2\n")

	assert.Equal(t, "x = 1\n# about y\ny = 2\n", out)
}

func TestFormatScopeHeaderComment(t *testing.T) {
	// An attached header comment serializes as a leading line.
	out := format(t, "outer = { # header\n\tx = 1\n}\n")

	assert.Equal(t, "# header\nouter = {\n\tx = 1\n}\n", out)
}

func TestFormatEndComments(t *testing.T) {
	out := format(t, "s = {\n\tx = 1\n\t# trailing\n}\n")

	assert.Equal(t, "s = {\n\tx = 1\n\t# trailing\n}\n", out)
}

func TestFormatEndCommentsKeepScopeExpanded(t *testing.T) {
	out := format(t, "s = {\n\t# kept\n}\n")

	assert.Equal(t, "s = {\n\t# kept\n}\n", out)
}

func TestFormatFileEndComments(t *testing.T) {
	out := format(t, "x = 1\n# tail\n")

	assert.Equal(t, "x = 1\n\n# tail", out)
}

func TestFormatCommentedTokenBreaksInlineFlow(t *testing.T) {
	out := format(t, "list = {\n\ta b # note\n\tc\n}\n")

	assert.Equal(t, "list = {\n\ta\n\t# note\n\tb c\n}\n", out)
}

func TestFormatBlankComment(t *testing.T) {
	out := format(t, "#\nx = 1\n")

	assert.Equal(t, "# \nx = 1\n", out)
}

func TestFormatBuiltTreeWithComments(t *testing.T) {
	file := ast.NewFileScope("generated.txt")
	file.AddComments("generated file, do not edit")

	s := file.AddScope("s", ast.WithEndComments("checked manually"))
	b := s.AddBinding("x", "1")
	b.AddComments("the only binding")

	out := New(WithLineEnding("\n")).Serialize(&file.Scope)
	assert.Equal(t, "# generated file, do not edit\n\ns = {\n\t# the only binding\n\tx = 1\n\t# checked manually\n}\n", out)
}
