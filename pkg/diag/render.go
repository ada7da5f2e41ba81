package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// lineCol converts a byte offset into 1-based line and column numbers
// against src, for human-facing rendering only - every other part of this
// module operates on raw byte Spans.
func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1

	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1

			continue
		}

		col++
	}

	return line, col
}

// sourceLine returns the full line of src containing offset, without its
// trailing newline.
func sourceLine(src string, offset int) string {
	if offset > len(src) {
		offset = len(src)
	}

	start := strings.LastIndexByte(src[:offset], '\n') + 1

	end := strings.IndexByte(src[offset:], '\n')
	if end == -1 {
		return src[start:]
	}

	return src[start : offset+end]
}

// Render writes a human-readable rendering of d against the named file's
// source text to w: an "error: short description" header; for every
// annotation, a "--> fileName:line:col" location line, the quoted source
// line and a caret underline followed by the annotation's text; and the
// help note, if any.
//
// Color is applied via fatih/color when w is a terminal (detected with
// mattn/go-isatty) unless forceNoColor is set, so interactive output gets
// color and captured output stays plain.
func Render(w io.Writer, fileName, src string, d *Diagnostic, forceNoColor bool) {
	useColor := !forceNoColor && isWriterTerminal(w)

	fmt.Fprintf(w, "%s: %s\n", colorize(useColor, "error", color.FgRed, color.Bold), d.ShortDescription)

	for _, ann := range d.Annotations {
		line, col := lineCol(src, ann.Span.Start)

		fmt.Fprintf(w, "  --> %s:%d:%d\n", fileName, line, col)

		text := sourceLine(src, ann.Span.Start)
		fmt.Fprintf(w, "   | %s\n", text)

		caretCol := col - 1
		width := ann.Span.End - ann.Span.Start
		if width < 1 {
			width = 1
		}

		underline := strings.Repeat(" ", caretCol) + strings.Repeat("^", width)

		underlineColor := color.FgYellow
		if ann.Kind == Primary {
			underlineColor = color.FgRed
		}

		marker := colorize(useColor, underline, underlineColor, color.Bold)

		fmt.Fprintf(w, "   | %s %s\n", marker, ann.Text)
	}

	if d.Help != "" {
		fmt.Fprintf(w, "   = %s: %s\n", colorize(useColor, "help", color.FgCyan, color.Bold), d.Help)
	}
}

// colorize renders text with attrs applied iff enabled, without relying on
// fatih/color's global NoColor state so concurrent renders to different
// writers (one a terminal, one not) never race on each other's color
// setting.
func colorize(enabled bool, text string, attrs ...color.Attribute) string {
	if !enabled {
		return text
	}

	c := color.New(attrs...)
	c.EnableColor()

	return c.Sprint(text)
}

func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
