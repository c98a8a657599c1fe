package suppressionscan

import (
	"strings"

	"github.com/AntonioJCosta/ignorestat/internal/core/domain/frequency"
	"github.com/AntonioJCosta/ignorestat/internal/core/domain/suppression"
)

/*
Process applies the grammar to one line and records every suppressed code it
carries in table.

A bare marker increments the sentinel empty key. A code list is split on
commas, each piece is trimmed and empty pieces are dropped; duplicates on the
same line count separately. Lines without a marker leave table untouched.
*/
func Process(line string, grammar suppression.Grammar, table frequency.Table) {
	codes, hasCodes, matched := grammar.Capture(line)
	if !matched {
		return
	}
	if !hasCodes {
		table.Add("")
		return
	}
	for part := range strings.SplitSeq(codes, ",") {
		code := strings.TrimSpace(part)
		if code != "" {
			table.Add(code)
		}
	}
}
