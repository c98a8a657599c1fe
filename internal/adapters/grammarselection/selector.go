package grammarselection

import (
	"github.com/AntonioJCosta/ignorestat/internal/core/domain/suppression"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// BuiltinSelector selects grammars from the fixed set of supported linters.
type BuiltinSelector struct{}

// NewBuiltinSelector creates a new BuiltinSelector.
func NewBuiltinSelector() ports.GrammarSelector {
	return &BuiltinSelector{}
}

// Select maps a case-insensitive linter identifier to its grammar.
func (s *BuiltinSelector) Select(linter string) (suppression.Grammar, error) {
	l, err := suppression.ParseLinter(linter)
	if err != nil {
		return suppression.Grammar{}, err
	}
	return suppression.GrammarFor(l)
}

// Supported returns the grammar of every supported linter in declaration order.
func (s *BuiltinSelector) Supported() []suppression.Grammar {
	supported := make([]suppression.Grammar, 0, len(suppression.Linters))
	for _, l := range suppression.Linters {
		g, err := suppression.GrammarFor(l)
		if err != nil {
			continue
		}
		supported = append(supported, g)
	}
	return supported
}
