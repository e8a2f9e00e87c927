package phase

import (
	"fmt"

	"lexiscope/internal/diag"
)

func checkLexical(in *Input, _ Options, r diag.Reporter) string {
	for i := range in.Characters {
		ch := &in.Characters[i]
		if ch.Valid {
			continue
		}
		diag.Error(r, diag.LexInvalidChar, ch.Line, ch.Column,
			fmt.Sprintf("invalid character %s at position %d: %s", ch.Unicode, ch.Position, ch.Description)).
			Hint("remove the character or re-save the file as UTF-8").
			Send()
	}
	return fmt.Sprintf("%d characters scanned, %d tokens found", len(in.Characters), len(in.Tokens))
}
