package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"labelgen/internal/diagnostic"
)

// printer writes diagnostics and diffs, colored when enabled.
type printer struct {
	w io.Writer

	pos, err, warn, code, add, del, hunk func(format string, a ...any) string
}

func newPrinter(w io.Writer, colored bool) *printer {
	paint := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintfFunc()
	}

	return &printer{
		w:    w,
		pos:  paint(color.Bold),
		err:  paint(color.FgRed, color.Bold),
		warn: paint(color.FgYellow, color.Bold),
		code: paint(color.FgCyan),
		add:  paint(color.FgGreen),
		del:  paint(color.FgRed),
		hunk: paint(color.FgMagenta),
	}
}

// useColor decides whether w gets colored output: -no-color and -color win,
// otherwise color is used on terminals only.
func useColor(cfg *Config, w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Diagnostic prints d as `file:line:col: severity: [code] message`.
func (p *printer) Diagnostic(d diagnostic.Diagnostic) {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(p.pos("%s: ", d.Pos))
	}

	switch d.Severity {
	case diagnostic.DiagnosticError:
		sb.WriteString(p.err("error: "))
	case diagnostic.DiagnosticWarning:
		sb.WriteString(p.warn("warning: "))
	default:
		sb.WriteString("info: ")
	}

	if d.Code != "" {
		sb.WriteString(p.code("[%s] ", d.Code))
	}

	sb.WriteString(d.Message)

	fmt.Fprintln(p.w, sb.String())
}

// Diagnostics prints every diagnostic, errors first.
func (p *printer) Diagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		p.Diagnostic(d)
	}
}

// Error prints an error that is not tied to a directive.
func (p *printer) Error(err error) {
	var diags diagnostic.Diagnostics

	diags.AddError("", err)
	p.Diagnostics(diags)
}

// Diff prints a line diff made by gen.LineDiff.
func (p *printer) Diff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(p.w, p.pos("%s", line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(p.w, p.hunk("%s", line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(p.w, p.add("%s", line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(p.w, p.del("%s", line))
		default:
			fmt.Fprint(p.w, line)
		}
	}
}
