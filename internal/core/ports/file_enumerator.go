package ports

import "iter"

// FileEnumerator produces the file paths under a root directory.
// The sequence is lazy and finite; re-invoking Enumerate restarts it.
type FileEnumerator interface {
	Enumerate(root string) iter.Seq2[string, error]
}
