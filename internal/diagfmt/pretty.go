package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diag"
	"lexiscope/internal/observ"
	"lexiscope/internal/source"
	"lexiscope/internal/stats"
)

// palette держит цвета одного вызова Pretty; глобальный color.NoColor не трогаем.
type palette struct {
	sev   map[diag.Severity]*color.Color
	path  *color.Color
	code  *color.Color
	caret *color.Color
	help  *color.Color
	dim   *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevSuggestion: mk(color.FgGreen),
			diag.SevInfo:       mk(color.FgCyan),
			diag.SevWarning:    mk(color.FgYellow, color.Bold),
			diag.SevError:      mk(color.FgRed, color.Bold),
			diag.SevFatal:      mk(color.FgMagenta, color.Bold),
		},
		path:  mk(color.Bold),
		code:  mk(color.FgHiBlack),
		caret: mk(color.FgRed, color.Bold),
		help:  mk(color.FgCyan),
		dim:   mk(color.Faint),
	}
}

// Pretty форматирует результаты в человекочитаемый вид.
// Для каждой диагностики:
// <path>:<line>:<col>: <sev> <CODE>: <message>
// затем строка исходника с ^ под колонкой и help: с подсказкой.
func Pretty(w io.Writer, entries []Entry, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for i := range entries {
		e := &entries[i]
		path := formatPath(e.Path, opts.PathMode, opts.BaseDir)
		diags, hidden := limit(e.Diags(), opts.Max)
		for j := range diags {
			if err := prettyDiagnostic(w, pal, path, e.File, &diags[j], opts.ShowSource); err != nil {
				return err
			}
		}
		if hidden > 0 {
			if _, err := fmt.Fprintf(w, "%s: ... and %d more\n", path, hidden); err != nil {
				return err
			}
		}
		if e.Result == nil {
			continue
		}
		if opts.ShowPhases {
			if err := prettyPhases(w, pal, e.Result); err != nil {
				return err
			}
		}
		if opts.ShowStats {
			if err := FormatStatsPretty(w, e.Result.Statistics); err != nil {
				return err
			}
		}
		if opts.ShowTimings {
			if _, err := io.WriteString(w, e.Result.Timings.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func prettyDiagnostic(w io.Writer, pal palette, path string, file *source.File, d *diag.Diagnostic, showSource bool) error {
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.sev[diag.SevError]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", path, d.Line, d.Column),
		sev.Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)
	if showSource && file != nil {
		if line, ok := sourceLine(file, d.Line); ok {
			gutter := fmt.Sprintf("%4d | ", d.Line)
			sb.WriteString(pal.dim.Sprint(gutter))
			sb.WriteString(line)
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", len(gutter)-2))
			sb.WriteString(pal.dim.Sprint("| "))
			sb.WriteString(caretPad(line, d.Column))
			sb.WriteString(pal.caret.Sprint("^"))
			sb.WriteByte('\n')
		}
	}
	if d.HasSuggestion() {
		fmt.Fprintf(&sb, "  %s %s\n", pal.help.Sprint("help:"), d.Suggestion)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func sourceLine(file *source.File, line int) (string, bool) {
	text, ok := file.Line(line)
	return strings.TrimSuffix(text, "\r"), ok
}

// caretPad строит отступ до колонки col (в юнитах). Табы сохраняются,
// широкие символы дают два пробела.
func caretPad(line string, col int) string {
	var sb strings.Builder
	unit := 1
	for _, r := range line {
		if unit >= col {
			break
		}
		switch {
		case r == '\t':
			sb.WriteByte('\t')
		default:
			sb.WriteString(strings.Repeat(" ", max(runewidth.RuneWidth(r), 1)))
		}
		unit++
	}
	return sb.String()
}

func prettyPhases(w io.Writer, pal palette, res *analysis.Result) error {
	var sb strings.Builder
	sb.WriteString("phases:\n")
	for i := range res.Phases {
		p := &res.Phases[i]
		fmt.Fprintf(&sb, "  %-11s %-10s %3d diagnostics %8.2f ms",
			p.Phase, p.Status, len(p.Diagnostics), observ.DurationToMillis(p.Duration))
		if p.Summary != "" {
			sb.WriteString(pal.dim.Sprint("  // " + p.Summary))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatStatsPretty prints the statistics block.
func FormatStatsPretty(w io.Writer, st stats.Statistics) error {
	c := st.Characters
	t := st.Tokens
	var sb strings.Builder
	sb.WriteString("statistics:\n")
	fmt.Fprintf(&sb, "  characters: %d total, %d valid, %d invalid\n", c.Total, c.Valid, c.Invalid)
	fmt.Fprintf(&sb, "    letters %d, digits %d, accented %d, operators %d, punctuation %d\n",
		c.Letters, c.Digits, c.Accented, c.Operators, c.Punctuation)
	fmt.Fprintf(&sb, "    symbols %d, whitespace %d, control %d, other %d\n",
		c.Symbols, c.Whitespace, c.Control, c.Other)
	fmt.Fprintf(&sb, "  tokens: %d total, %d valid, %d invalid, %d lines\n", t.Total, t.Valid, t.Invalid, t.Lines)
	fmt.Fprintf(&sb, "    keywords %d, identifiers %d, numbers %d, strings %d\n",
		t.Keywords, t.Identifiers, t.Numbers, t.Strings)
	fmt.Fprintf(&sb, "    operators %d, punctuation %d, symbols %d\n", t.Operators, t.Punctuation, t.Symbols)
	_, err := io.WriteString(w, sb.String())
	return err
}
