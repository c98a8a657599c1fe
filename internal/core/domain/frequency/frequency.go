/*
Package frequency defines the frequency table of suppressed codes and the
report built from it.
*/
package frequency

import "sort"

// EmptyCodeLabel is how the sentinel "no explicit code" key is shown to users.
const EmptyCodeLabel = "<empty>"

/*
Table maps a suppressed code to the number of times it was seen.
The empty string is the sentinel key for suppressions without an explicit code.
*/
type Table map[string]int

// NewTable creates an empty table.
func NewTable() Table {
	return make(Table)
}

// Add increments the count of code by one.
func (t Table) Add(code string) {
	t[code]++
}

// Total returns the sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Entries returns the table as a slice sorted ascending by code.
// The sentinel key sorts first.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for code, count := range t {
		entries = append(entries, Entry{Code: code, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// Entry is a single code and its count.
type Entry struct {
	Code  string
	Count int
}

// Label returns the code for display, with the sentinel rendered as EmptyCodeLabel.
func (e Entry) Label() string {
	if e.Code == "" {
		return EmptyCodeLabel
	}
	return e.Code
}

// SkippedFile records a file that could not be read when skipping was allowed.
type SkippedFile struct {
	Path string
	Err  error
}

/*
Report is the final result of a scan. Linter holds the identifier exactly as
it was requested. Entries are sorted ascending by code.
*/
type Report struct {
	Linter       string
	Entries      []Entry
	FilesScanned int
	Skipped      []SkippedFile
}

// Unique returns the number of distinct codes found.
func (r Report) Unique() int {
	return len(r.Entries)
}

// Total returns the sum of all counts in the report.
func (r Report) Total() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Count
	}
	return total
}
