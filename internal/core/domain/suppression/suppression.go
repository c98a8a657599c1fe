/*
Package suppression defines the core domain entities for linter-suppression
comments: the closed set of supported linters and the grammar used to
recognize each linter's suppression comment.
*/
package suppression

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsupportedLinter is the sentinel wrapped by UnsupportedLinterError.
var ErrUnsupportedLinter = errors.New("unsupported linter")

// UnsupportedLinterError is returned when a linter identifier is not one of the recognized set.
type UnsupportedLinterError struct {
	Linter string
}

func (e *UnsupportedLinterError) Error() string {
	return fmt.Sprintf("Unsupported linter: %s", e.Linter)
}

func (e *UnsupportedLinterError) Unwrap() error {
	return ErrUnsupportedLinter
}

// Linter identifies one of the supported linters.
type Linter int

const (
	Mypy Linter = iota
	Flake8
	Ruff
	Pyright
)

// Linters lists every supported linter in declaration order.
var Linters = []Linter{Mypy, Flake8, Ruff, Pyright}

// codesGroup is the name of the capture group holding the suppressed-code list.
const codesGroup = "ignore"

func (l Linter) String() string {
	switch l {
	case Mypy:
		return "mypy"
	case Flake8:
		return "flake8"
	case Ruff:
		return "ruff"
	case Pyright:
		return "pyright"
	}
	return fmt.Sprintf("Linter(%d)", int(l))
}

// pattern returns the suppression-comment pattern of the linter.
// Each pattern has exactly one optional named group holding the code list.
// A bare marker must end on a word boundary, so "# type: ignored" is not a marker.
func (l Linter) pattern() string {
	switch l {
	case Mypy:
		return `#\s*type:\s*ignore(?:\[(?P<ignore>[^\]]*)\]|\b)`
	case Flake8, Ruff:
		return `#\s*noqa(?::\s*(?P<ignore>.*)|\b)`
	case Pyright:
		return `#\s*pyright:\s*ignore(?:\[(?P<ignore>[^\]]*)\]|\b)`
	}
	return ""
}

// ParseLinter maps a case-insensitive identifier to a Linter.
func ParseLinter(name string) (Linter, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, l := range Linters {
		if l.String() == normalized {
			return l, nil
		}
	}
	return 0, &UnsupportedLinterError{Linter: name}
}

/*
Grammar is the immutable pattern used to recognize a linter's suppression
comment. It is built once per run and is safe to share.
*/
type Grammar struct {
	Linter  Linter
	pattern *regexp.Regexp
	group   int
}

var grammars = compileGrammars()

func compileGrammars() map[Linter]Grammar {
	compiled := make(map[Linter]Grammar, len(Linters))
	for _, l := range Linters {
		re := regexp.MustCompile(l.pattern())
		compiled[l] = Grammar{Linter: l, pattern: re, group: re.SubexpIndex(codesGroup)}
	}
	return compiled
}

// GrammarFor returns the grammar of a supported linter.
func GrammarFor(l Linter) (Grammar, error) {
	g, ok := grammars[l]
	if !ok {
		return Grammar{}, &UnsupportedLinterError{Linter: l.String()}
	}
	return g, nil
}

// Pattern returns the source text of the grammar's regular expression.
func (g Grammar) Pattern() string {
	if g.pattern == nil {
		return ""
	}
	return g.pattern.String()
}

/*
Capture applies the grammar to a single line. Only the first match is considered.
matched reports whether the line carries a suppression comment at all.
hasCodes reports whether the code-list group took part in the match; it can be
true with an empty codes string (e.g. "# noqa:").
*/
func (g Grammar) Capture(line string) (codes string, hasCodes bool, matched bool) {
	if g.pattern == nil {
		return "", false, false
	}
	loc := g.pattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", false, false
	}
	start, end := loc[2*g.group], loc[2*g.group+1]
	if start < 0 {
		return "", false, true
	}
	return line[start:end], true, true
}
