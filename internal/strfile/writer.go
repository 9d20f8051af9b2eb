package strfile

import (
	"fmt"
	"sort"
)

// pair is one harvested key/comment waiting to be written.
type pair struct {
	key     string
	comment string
}

// sortedPairs orders a key-to-comment mapping ascending by comment text.
// Ties on comment break by key so output is deterministic.
func sortedPairs(keyToComment map[string]string) []pair {
	pairs := make([]pair, 0, len(keyToComment))
	for k, c := range keyToComment {
		pairs = append(pairs, pair{key: k, comment: c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].comment != pairs[j].comment {
			return pairs[i].comment < pairs[j].comment
		}
		return pairs[i].key < pairs[j].key
	})
	return pairs
}

// writeEntry renders one harvested pair. The escaped key stands on both
// sides of the assignment: a freshly generated entry uses its key as a
// placeholder value until translated, while the comment carries the
// human-facing text.
func writeEntry(w *Writer, key, comment string) error {
	escaped := EscapeKey(key)
	return w.WriteString(fmt.Sprintf("/* %s */\n\"%s\" = \"%s\";\n", comment, escaped, escaped))
}

// AppendSection appends every pair in keyToComment to the strings file at
// path, under a `/*** sectionName ***/` header.
func AppendSection(path string, keyToComment map[string]string, sectionName string) error {
	w, err := Append(path)
	if err != nil {
		return err
	}

	if err := w.WriteString(fmt.Sprintf("/*** %s ***/\n", sectionName)); err != nil {
		w.Close()
		return err
	}
	for _, p := range sortedPairs(keyToComment) {
		if err := w.WriteString("\n"); err != nil {
			w.Close()
			return err
		}
		if err := writeEntry(w, p.key, p.comment); err != nil {
			w.Close()
			return err
		}
	}

	return w.Close()
}

// WriteNew writes every pair in keyToComment to a new strings file at
// path, replacing any existing content. No section header is written.
func WriteNew(path string, keyToComment map[string]string) error {
	w, err := Create(path)
	if err != nil {
		return err
	}

	for _, p := range sortedPairs(keyToComment) {
		if err := writeEntry(w, p.key, p.comment); err != nil {
			w.Close()
			return err
		}
		if err := w.WriteString("\n"); err != nil {
			w.Close()
			return err
		}
	}

	return w.Close()
}

// WriteEntries writes rendered entries to a new strings file at path, one
// blank line between entries.
func WriteEntries(path string, entries []*Entry) error {
	w, err := Create(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := w.WriteString(e.Render() + "\n"); err != nil {
			w.Close()
			return err
		}
	}

	return w.Close()
}
