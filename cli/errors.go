package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/clausewitz/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context. Syntax errors get
// the token/line/file detail block and, when source is available, the
// offending lines with a caret under the token.
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(*parser.SyntaxError); ok {
		return r.renderSyntaxError(e)
	}

	return err.Error()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.Render(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

func (r *ErrorRenderer) renderSyntaxError(e *parser.SyntaxError) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(e.Error()))
	buf.WriteString("\n")
	buf.WriteString(errContextStyle.Render(e.Detail()))

	if r.source == nil {
		return buf.String()
	}

	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := e.Line - 3
	endLine := e.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		line := strings.TrimRight(sourceLines[i], "\r")
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(line))
		buf.WriteByte('\n')

		if i == e.Line-1 {
			if col := caretColumn(line, e.Token); col >= 0 {
				buf.WriteString("   ")
				for j := 0; j < col; j++ {
					buf.WriteByte(' ')
				}
				buf.WriteString(errCaretStyle.Render("^"))
				buf.WriteByte('\n')
			}
		}
	}

	return buf.String()
}

// caretColumn locates the offending token in its source line. Syntax errors
// carry a line but no column, so the first occurrence has to do.
func caretColumn(line, token string) int {
	if token == "" {
		return -1
	}
	return strings.Index(line, token)
}
