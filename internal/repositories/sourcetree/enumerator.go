/*
Package sourcetree provides access to the source files of a project on the
local file system.
*/
package sourcetree

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/bmatcuk/doublestar/v4"
)

// errStopWalk ends a walk early when the consumer stops iterating.
var errStopWalk = errors.New("walk stopped by consumer")

/*
Enumerator lists the files under a root directory with filepath.WalkDir.
Exclude patterns are doublestar globs: a pattern without a slash is matched
against every path component name, one with a slash against the path
relative to the root. Excluded directories are not descended into.
*/
type Enumerator struct {
	exclude []string
}

// NewEnumerator creates a new Enumerator, rejecting malformed exclude patterns.
func NewEnumerator(exclude []string) (ports.FileEnumerator, error) {
	patterns := make([]string, 0, len(exclude))
	for _, p := range exclude {
		p = normalizePattern(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
		patterns = append(patterns, p)
	}
	return &Enumerator{exclude: patterns}, nil
}

// Enumerate implements the ports.FileEnumerator interface.
// Regular files, and symlinks resolving to regular files, are yielded in lexical order.
// A root that is itself a symlink is followed; yielded paths stay under root as given.
// A traversal failure is yielded once as an error and ends the sequence.
func (e *Enumerator) Enumerate(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkRoot, err := filepath.EvalSymlinks(root)
		if err != nil {
			yield("", err)
			return
		}

		err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if path != walkRoot && e.isExcluded(walkRoot, path, d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isRegularFile(path, d) {
				return nil
			}
			if !yield(underRoot(root, walkRoot, path), nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", err)
		}
	}
}
