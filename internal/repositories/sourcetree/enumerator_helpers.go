package sourcetree

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// normalizePattern trims a user-supplied exclude pattern and drops a leading "./" and trailing "/".
func normalizePattern(pattern string) string {
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	pattern = strings.TrimPrefix(pattern, "./")
	return strings.TrimSuffix(pattern, "/")
}

// isExcluded reports whether path (below root) matches one of the exclude patterns.
func (e *Enumerator) isExcluded(root, path, name string) bool {
	if len(e.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range e.exclude {
		target := name
		if strings.Contains(pattern, "/") {
			target = rel
		}
		if matched, _ := doublestar.Match(pattern, target); matched {
			return true
		}
	}
	return false
}

// underRoot maps a path found below the resolved walkRoot back below root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

// isRegularFile reports whether the entry is a regular file, following symlinks.
// Broken symlinks are not files.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
