package ports

// TextReader returns the full text content of a file.
type TextReader interface {
	ReadText(path string) (string, error)
}
