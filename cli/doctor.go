package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/clausewitz/loader"
	"github.com/robinvdvleuten/clausewitz/parser"
)

// DoctorCmd provides doctor utilities for debugging script files.
type DoctorCmd struct {
	Lex  LexCmd  `cmd:"" help:"Show the lexeme stream scanned from a script file."`
	Dump DumpCmd `cmd:"" help:"Dump the parsed tree of a script file."`
}

// LexCmd shows the lexeme stream scanned from a script file.
type LexCmd struct {
	File FileOrStdin `help:"Script input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	content, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	lexemes, err := parser.NewLexer(content, cmd.File.Filename).ScanAll()
	if err != nil {
		renderer := NewErrorRenderer(content)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	for _, lexeme := range lexemes {
		kind := "word"
		switch {
		case lexeme.Special():
			kind = "special"
		case lexeme.Quoted():
			kind = "string"
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%-8s %4d  %q\n", kind, lexeme.Line, lexeme.Text)
	}

	return nil
}

// DumpCmd dumps the parsed tree of a script file.
type DumpCmd struct {
	File FileOrStdin `help:"Script input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the dump command.
func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	ldr := loader.New()
	file, err := cmd.File.LoadTree(context.Background(), ldr)
	if err != nil {
		source, _ := cmd.File.GetSourceContent()
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout).Println(file)

	return nil
}
