package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/clausewitz/ast"
	"github.com/robinvdvleuten/clausewitz/loader"
	"github.com/robinvdvleuten/clausewitz/parser"
)

func TestSummarize(t *testing.T) {
	file, err := parser.ParseString(context.Background(), "a = 1\nb = {\n\tc = 2\n}\n", "events.txt")
	assert.NoError(t, err)

	result := &loader.Result{
		Files: []*ast.FileScope{file},
		Errors: []error{
			&parser.SyntaxError{Kind: parser.UnterminatedString, File: "broken.txt", Line: 4},
		},
	}

	rows := summarize(result)
	assert.Equal(t, 2, len(rows))

	assert.Equal(t, "events.txt", rows[0].address)
	assert.True(t, rows[0].ok)
	assert.Equal(t, "3 constructs", rows[0].detail)

	assert.Equal(t, "broken.txt", rows[1].address)
	assert.False(t, rows[1].ok)
	assert.Contains(t, rows[1].detail, "unterminated string")
	assert.Contains(t, rows[1].detail, "line 4")
}

func TestPrintSummaryAlignsAddresses(t *testing.T) {
	short, err := parser.ParseString(context.Background(), "a = 1\n", "a.txt")
	assert.NoError(t, err)
	long, err := parser.ParseString(context.Background(), "b = 2\n", "events/very_long_name.txt")
	assert.NoError(t, err)

	var buf strings.Builder
	printSummary(&buf, &loader.Result{Files: []*ast.FileScope{short, long}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines))

	// Both detail columns start at the same offset.
	assert.Equal(t,
		strings.Index(lines[0], "1 constructs"),
		strings.Index(lines[1], "1 constructs"))
}

func TestSpaces(t *testing.T) {
	assert.Equal(t, "", spaces(0))
	assert.Equal(t, "", spaces(-1))
	assert.Equal(t, "   ", spaces(3))
}
