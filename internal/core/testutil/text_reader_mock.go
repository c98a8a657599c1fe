package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// MockTextReader is a mock implementation of ports.TextReader.
// When ReadTextFunc is nil it serves Files, failing on unknown paths.
type MockTextReader struct {
	ReadTextFunc func(path string) (string, error)
	Files        map[string]string
	// ReadCalls keeps track of the paths that were read.
	ReadCalls []string
}

func (m *MockTextReader) ReadText(path string) (string, error) {
	m.ReadCalls = append(m.ReadCalls, path)
	if m.ReadTextFunc != nil {
		return m.ReadTextFunc(path)
	}
	content, ok := m.Files[path]
	if !ok {
		return "", fmt.Errorf("MockTextReader: no content for %s", path)
	}
	return content, nil
}

var _ ports.TextReader = (*MockTextReader)(nil)
