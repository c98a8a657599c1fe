package suppressionscan

import (
	"iter"
	"path/filepath"
	"strings"
)

// normalizeExtensions trims the requested extensions and makes sure each has a leading dot.
// An empty request falls back to DefaultExtension.
func normalizeExtensions(requested []string) map[string]bool {
	extensions := make(map[string]bool, len(requested))
	for _, ext := range requested {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[ext] = true
	}
	if len(extensions) == 0 {
		extensions[DefaultExtension] = true
	}
	return extensions
}

// hasSourceExtension reports whether path ends in one of the wanted extensions.
// The comparison is case-sensitive.
func hasSourceExtension(path string, extensions map[string]bool) bool {
	ext := filepath.Ext(path)
	return ext != "" && extensions[ext]
}

// splitLines yields the lines of content without their "\n" or "\r\n" terminators.
func splitLines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.SplitSeq(content, "\n") {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}
