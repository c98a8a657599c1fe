package testutil

import (
	"iter"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// MockFileEnumerator is a mock implementation of ports.FileEnumerator.
// When EnumerateFunc is nil it yields Paths in order, then Err if set.
type MockFileEnumerator struct {
	EnumerateFunc func(root string) iter.Seq2[string, error]
	Paths         []string
	Err           error
}

func (m *MockFileEnumerator) Enumerate(root string) iter.Seq2[string, error] {
	if m.EnumerateFunc != nil {
		return m.EnumerateFunc(root)
	}
	return func(yield func(string, error) bool) {
		for _, p := range m.Paths {
			if !yield(p, nil) {
				return
			}
		}
		if m.Err != nil {
			yield("", m.Err)
		}
	}
}

var _ ports.FileEnumerator = (*MockFileEnumerator)(nil)
