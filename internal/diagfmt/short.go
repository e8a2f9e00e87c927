package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"lexiscope/internal/diag"
)

// FormatShort renders one line per diagnostic, in emission order:
//
//	ERROR SIN001 path:line:col message
//
// The result is stable and suits golden files. Empty when there is nothing.
func FormatShort(entries []Entry, mode PathMode, baseDir string) string {
	var b strings.Builder
	for i := range entries {
		e := &entries[i]
		path := formatPath(e.Path, mode, baseDir)
		for _, d := range e.Diags() {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			writeShort(&b, path, &d)
		}
	}
	return b.String()
}

// Short writes FormatShort output followed by a newline.
func Short(w io.Writer, entries []Entry, opts PrettyOpts) error {
	var b strings.Builder
	for i := range entries {
		e := &entries[i]
		path := formatPath(e.Path, opts.PathMode, opts.BaseDir)
		diags, hidden := limit(e.Diags(), opts.Max)
		for j := range diags {
			writeShort(&b, path, &diags[j])
			b.WriteByte('\n')
		}
		if hidden > 0 {
			fmt.Fprintf(&b, "%s: ... and %d more\n", path, hidden)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeShort(b *strings.Builder, path string, d *diag.Diagnostic) {
	fmt.Fprintf(b, "%s %s %s:%d:%d %s",
		strings.ToUpper(d.Severity.String()), d.Code.ID(), path, d.Line, d.Column, d.Message)
}
