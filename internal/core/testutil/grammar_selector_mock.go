package testutil

import (
	"github.com/AntonioJCosta/ignorestat/internal/core/domain/suppression"
	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// MockGrammarSelector is a mock implementation of ports.GrammarSelector.
type MockGrammarSelector struct {
	SelectFunc    func(linter string) (suppression.Grammar, error)
	SupportedFunc func() []suppression.Grammar
	// SelectCalls keeps track of the identifiers passed to Select.
	SelectCalls []string
}

// Select calls SelectFunc if set, otherwise falls back to the real mypy grammar.
func (m *MockGrammarSelector) Select(linter string) (suppression.Grammar, error) {
	m.SelectCalls = append(m.SelectCalls, linter)
	if m.SelectFunc != nil {
		return m.SelectFunc(linter)
	}
	return suppression.GrammarFor(suppression.Mypy)
}

func (m *MockGrammarSelector) Supported() []suppression.Grammar {
	if m.SupportedFunc != nil {
		return m.SupportedFunc()
	}
	return nil
}

var _ ports.GrammarSelector = (*MockGrammarSelector)(nil)
