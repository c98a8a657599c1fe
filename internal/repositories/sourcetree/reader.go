package sourcetree

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// ErrInvalidEncoding is returned for files whose content is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")

// Reader reads source files as UTF-8 text.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() ports.TextReader {
	return &Reader{}
}

// ReadText implements the ports.TextReader interface.
func (r *Reader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
