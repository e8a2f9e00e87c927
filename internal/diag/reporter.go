package diag

// Reporter receives finished diagnostics from a pass. *Bag is the usual
// implementation; Discard drops everything.
type Reporter interface {
	Report(d Diagnostic)
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard is a Reporter that keeps nothing.
var Discard Reporter = discard{}

// Report adds d, silently dropping it once the limit is reached.
func (b *Bag) Report(d Diagnostic) {
	b.Add(d)
}

// Draft is a diagnostic being assembled; Send hands it to the reporter.
//
//	diag.Error(r, diag.SynUnmatchedBrace, line, col, msg).Hint("insert '{'").Send()
type Draft struct {
	to   Reporter
	d    Diagnostic
	sent bool
}

func draft(r Reporter, sev Severity, code Code, line, col int, msg string) *Draft {
	return &Draft{to: r, d: Diagnostic{Severity: sev, Code: code, Line: line, Column: col, Message: msg}}
}

func Error(r Reporter, code Code, line, col int, msg string) *Draft {
	return draft(r, SevError, code, line, col, msg)
}

func Warning(r Reporter, code Code, line, col int, msg string) *Draft {
	return draft(r, SevWarning, code, line, col, msg)
}

// Suggest drafts a SevSuggestion diagnostic.
func Suggest(r Reporter, code Code, line, col int, msg string) *Draft {
	return draft(r, SevSuggestion, code, line, col, msg)
}

// Hint sets the remediation text shown after the message.
func (d *Draft) Hint(text string) *Draft {
	d.d.Suggestion = text
	return d
}

// Send reports the draft; later calls do nothing.
func (d *Draft) Send() {
	if d.sent || d.to == nil {
		return
	}
	d.sent = true
	d.to.Report(d.d)
}
