package strfile

import "regexp"

// DefaultMarker is the identifier scanned for in source files.
const DefaultMarker = "JTL"

// markerArgs matches the two-argument tail of a marker call. Each argument
// accepts single or double quotes independently; captures are raw text with
// no escape processing.
const markerArgs = `\(['"](.+?)['"],\s*['"](.+?)['"]\)`

// recordPattern matches one localization entry: zero or more section
// headers each followed by a blank line, one or more stacked block
// comments, then `"key" = "value";` and a newline. An entry missing its
// terminating semicolon does not match at all.
var recordPattern = regexp.MustCompile(`(?s)((?:/\*\*\* *[^\n]*? *\*\*\*/\n\n)*)(/\* *[^;]* *\*/\n)"(.*?)" *= *"(.*?)";\s*\n`)

// commentPattern extracts each individual comment span from a record's raw
// comment block. Dot does not match newline here so stacked single-line
// comments split into separate strings.
var commentPattern = regexp.MustCompile(`/\* (.*?) \*/`)

// MarkerPattern builds the pattern matching name('KEY', 'COMMENT') tokens
// in arbitrary source text.
func MarkerPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(name) + markerArgs)
}
