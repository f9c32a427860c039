package parser

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/clausewitz/formatter"
)

// roundTripSources are realistic inputs exercised by the round-trip laws.
var roundTripSources = map[string]string{
	"bindings": "a = 1\nb = hello\nc = \"quoted value\"\n",
	"nested": `country_event = {
	id = 1001
	title = "EVTNAME1001"
	desc = "EVTDESC1001"
	trigger = {
		tag = ENG
		exists = yes
	}
	option = {
		name = "EVTOPTA1001"
		prestige = -0.05
	}
}
`,
	"lists":     "colors = { 10 20 30 }\nslots = { --- infantry cavalry --- }\n",
	"anonymous": "positions = {\n\t{ 1.0 2.0 }\n\t{ 3.0 4.0 }\n}\n",
	"comments": `# module header
# second line

# about the first entry
first = {	# inline header
	value = 1 # attached
	# stacked one
	# stacked two
	other = 2
	# at the end
}
# trailing note
`,
	"empty-scopes": "a = {}\nb = {\n\t# kept\n}\n",
	"preamble":     "# copyright 2024\n# author: x\n\n# describes foo\nfoo = 1\n",
}

// Round-trip, tree-stable: parsing the serialized form of a tree yields an
// equal tree.
func TestRoundTripTreeStable(t *testing.T) {
	for name, source := range roundTripSources {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f := formatter.New(formatter.WithLineEnding("\n"))

			tree, err := ParseString(ctx, source, "test.txt")
			assert.NoError(t, err, "parse error")

			reparsed, err := ParseString(ctx, f.Serialize(&tree.Scope), "test.txt")
			assert.NoError(t, err, "reparse error")

			assert.Equal(t, tree, reparsed)
		})
	}
}

// Idempotent normalization: one serialize-parse cycle reaches the fixed
// point; a second cycle changes nothing.
func TestRoundTripIdempotent(t *testing.T) {
	for name, source := range roundTripSources {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f := formatter.New(formatter.WithLineEnding("\n"))

			tree, err := ParseString(ctx, source, "test.txt")
			assert.NoError(t, err)
			once := f.Serialize(&tree.Scope)

			tree2, err := ParseString(ctx, once, "test.txt")
			assert.NoError(t, err)
			twice := f.Serialize(&tree2.Scope)

			assert.Equal(t, once, twice)
		})
	}
}

func TestRoundTripCRLF(t *testing.T) {
	ctx := context.Background()
	f := formatter.New(formatter.WithLineEnding("\r\n"))

	tree, err := ParseString(ctx, "s = {\r\n\tx = 1\r\n\t# trailing\r\n}\r\n", "test.txt")
	assert.NoError(t, err)

	out := f.Serialize(&tree.Scope)
	assert.Equal(t, "s = {\r\n\tx = 1\r\n\t# trailing\r\n}\r\n", out)

	reparsed, err := ParseString(ctx, out, "test.txt")
	assert.NoError(t, err)
	assert.Equal(t, tree, reparsed)
}
