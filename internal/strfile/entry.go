package strfile

import (
	"fmt"
	"regexp"
	"strings"
)

// unescapedQuote finds a double quote not already preceded by a backslash.
// A quote at index zero has no preceding rune and is left untouched.
var unescapedQuote = regexp.MustCompile(`([^\\])"`)

// Entry is one translatable unit: the comments preceding it, its lookup
// key and its value. Entries are not modified after construction.
type Entry struct {
	Comments []string
	Key      string
	Value    string
}

// NewEntry constructs an entry from a parsed record or a harvested pair.
func NewEntry(comments []string, key, value string) *Entry {
	return &Entry{Comments: comments, Key: key, Value: value}
}

// EscapeKey inserts a backslash before every double quote in the key that
// is not already escaped.
func EscapeKey(key string) string {
	return unescapedQuote.ReplaceAllString(key, `$1\"`)
}

// Render produces the canonical textual form of the entry: one block
// comment line per comment, then the quoted key/value assignment. The key
// is escaped; the value is written as-is.
func (e *Entry) Render() string {
	var b strings.Builder
	for _, c := range e.Comments {
		fmt.Fprintf(&b, "/* %s */\n", c)
	}
	fmt.Fprintf(&b, "\"%s\" = \"%s\";\n", EscapeKey(e.Key), e.Value)
	return b.String()
}
