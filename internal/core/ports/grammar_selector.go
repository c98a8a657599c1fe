package ports

import "github.com/AntonioJCosta/ignorestat/internal/core/domain/suppression"

/*
GrammarSelector defines the contract for mapping a linter identifier to its
suppression-comment grammar. This is a driven port with no side effects.
*/
type GrammarSelector interface {
	// Select returns the grammar for a case-insensitive linter identifier,
	// or a *suppression.UnsupportedLinterError.
	Select(linter string) (suppression.Grammar, error)

	// Supported lists every grammar the selector knows about.
	Supported() []suppression.Grammar
}
