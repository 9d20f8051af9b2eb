package strfile

// Record is the transient result of one grammar match. It is consumed
// immediately to build an Entry or a raw key/comment pair.
type Record struct {
	// Header is the raw section-header block preceding the entry, empty
	// when the entry follows another entry directly.
	Header   string
	Comments []string
	Key      string
	Value    string
}

// Parse applies the record grammar to the full text of a strings file and
// returns all records in source order. Empty input yields no records; text
// the grammar cannot match is skipped silently, so a syntactically broken
// file simply produces fewer records than visually present.
func Parse(text string) []Record {
	matches := recordPattern.FindAllStringSubmatch(text, -1)
	records := make([]Record, 0, len(matches))
	for _, m := range matches {
		var comments []string
		for _, c := range commentPattern.FindAllStringSubmatch(m[2], -1) {
			comments = append(comments, c[1])
		}
		records = append(records, Record{
			Header:   m[1],
			Comments: comments,
			Key:      m[3],
			Value:    m[4],
		})
	}
	return records
}

// ParseFile decodes a UTF-16 strings file and parses its contents.
func ParseFile(path string) ([]Record, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}
