package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/clausewitz/ast"
	"github.com/robinvdvleuten/clausewitz/loader"
	"github.com/robinvdvleuten/clausewitz/parser"
	"github.com/robinvdvleuten/clausewitz/telemetry"
)

type CheckCmd struct {
	Path string `help:"Script file or directory to check." arg:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	info, err := os.Stat(cmd.Path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return cmd.checkDir(runCtx, ctx)
	}
	return cmd.checkFile(runCtx, ctx)
}

func (cmd *CheckCmd) checkFile(runCtx context.Context, ctx *kong.Context) error {
	ldr := loader.New()

	file, err := ldr.Load(runCtx, cmd.Path)
	if err != nil {
		source, _ := os.ReadFile(cmd.Path)
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "check failed")
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s parsed (%d constructs)",
		pathStyle.Render(file.Address), countConstructs(&file.Scope)))
	return nil
}

func (cmd *CheckCmd) checkDir(runCtx context.Context, ctx *kong.Context) error {
	ldr := loader.New()

	result, err := ldr.LoadDir(runCtx, cmd.Path)
	if err != nil {
		return err
	}

	printSummary(ctx.Stdout, result)

	if len(result.Errors) > 0 {
		renderer := NewErrorRenderer(nil)
		_, _ = fmt.Fprintln(ctx.Stderr)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.RenderAll(result.Errors))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d file(s) failed to parse", len(result.Errors)))
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d file(s) parsed", len(result.Files)))
	return nil
}

// summaryRow is one line of the per-file report.
type summaryRow struct {
	address string
	ok      bool
	detail  string
}

// printSummary prints a per-file table with the address column padded to the
// widest entry. Widths are measured with runewidth so non-ASCII paths line
// up.
func printSummary(w io.Writer, result *loader.Result) {
	rows := summarize(result)

	maxWidth := 0
	for _, row := range rows {
		if width := runewidth.StringWidth(row.address); width > maxWidth {
			maxWidth = width
		}
	}

	for _, row := range rows {
		padded := row.address + spaces(maxWidth-runewidth.StringWidth(row.address))
		if row.ok {
			_, _ = fmt.Fprintf(w, "%s %s  %s\n",
				successStyle.Render(successSymbol), pathStyle.Render(padded), row.detail)
		} else {
			_, _ = fmt.Fprintf(w, "%s %s  %s\n",
				errorStyle.Render(errorSymbol), pathStyle.Render(padded), errorStyle.Render(row.detail))
		}
	}
}

// summarize flattens a load result into report rows, parsed files first.
func summarize(result *loader.Result) []summaryRow {
	rows := make([]summaryRow, 0, len(result.Files)+len(result.Errors))

	for _, file := range result.Files {
		rows = append(rows, summaryRow{
			address: file.Address,
			ok:      true,
			detail:  fmt.Sprintf("%d constructs", countConstructs(&file.Scope)),
		})
	}

	for _, err := range result.Errors {
		row := summaryRow{detail: err.Error()}
		if e, ok := err.(*parser.SyntaxError); ok {
			row.address = e.File
			row.detail = fmt.Sprintf("%s (line %d)", e.Kind, e.Line)
		}
		rows = append(rows, row)
	}

	return rows
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// countConstructs walks a tree and counts every construct in it.
func countConstructs(s *ast.Scope) int {
	count := 0
	for _, m := range s.Members {
		count++
		if child, ok := m.(*ast.Scope); ok {
			count += countConstructs(child)
		}
	}
	return count
}
