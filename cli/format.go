package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/clausewitz/formatter"
	"github.com/robinvdvleuten/clausewitz/loader"
	"github.com/robinvdvleuten/clausewitz/telemetry"
)

type FormatCmd struct {
	File  FileOrStdin `help:"Script input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Write bool        `help:"Rewrite the file in place instead of printing to stdout." short:"w"`
	Force bool        `help:"Skip the confirmation prompt when rewriting." short:"f"`
	Unix  bool        `help:"Force \\n line endings regardless of platform."`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	ldr := loader.New()
	file, err := cmd.File.LoadTree(runCtx, ldr)
	if err != nil {
		source, _ := cmd.File.GetSourceContent()
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	var opts []formatter.Option
	if cmd.Unix {
		opts = append(opts, formatter.WithLineEnding("\n"))
	}
	f := formatter.New(opts...)

	if !cmd.Write {
		return f.Write(file, ctx.Stdout)
	}

	if cmd.File.Filename == "<stdin>" {
		return fmt.Errorf("cannot rewrite stdin in place")
	}

	if !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("Rewrite %q in canonical form?", cmd.File.Filename))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "Left %s untouched", pathStyle.Render(cmd.File.Filename))
			return nil
		}
	}

	if err := os.WriteFile(cmd.File.Filename, []byte(f.Serialize(&file.Scope)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File.Filename, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Rewrote %s", pathStyle.Render(cmd.File.Filename)))
	return nil
}
