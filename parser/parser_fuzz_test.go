package parser

import (
	"context"
	"testing"

	"github.com/robinvdvleuten/clausewitz/formatter"
)

// FuzzParseFile checks that arbitrary input either parses or fails with a
// SyntaxError, and that whatever parses serializes into something that
// parses again.
func FuzzParseFile(f *testing.F) {
	f.Add("a = 1\nb = hello\n")
	f.Add("outer = { # header\n\tx = 1\n}\n")
	f.Add("# copyright\n# author\n\n# about\nfoo = 1\n")
	f.Add("list = { a b c }\n")
	f.Add("pairs = {\n\t{ 1 2 }\n\t{ 3 4 }\n}\n")
	f.Add("s = {\n\tx = 1\n\t# trailing\n}\n")
	f.Add("= 5")
	f.Add("}")
	f.Add("a = {")

	f.Fuzz(func(t *testing.T, source string) {
		ctx := context.Background()

		tree, err := ParseString(ctx, source, "fuzz.txt")
		if err != nil {
			if _, ok := err.(*SyntaxError); !ok {
				t.Fatalf("parser returned %T, want *SyntaxError", err)
			}
			return
		}

		out := formatter.New(formatter.WithLineEnding("\n")).Serialize(&tree.Scope)
		if _, err := ParseString(ctx, out, "fuzz.txt"); err != nil {
			t.Fatalf("serialized form failed to reparse: %v\noutput:\n%s", err, out)
		}
	})
}
