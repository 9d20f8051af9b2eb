package strfile

// BuildByKey maps each record's key to its entry. When the same key occurs
// more than once the later record wins, silently.
func BuildByKey(records []Record) map[string]*Entry {
	return build(records, func(e *Entry) string { return e.Key })
}

// BuildByValue maps each record's value to its entry, for reverse lookups
// such as finding an existing translation for new text. Later records win.
func BuildByValue(records []Record) map[string]*Entry {
	return build(records, func(e *Entry) string { return e.Value })
}

func build(records []Record, attr func(*Entry) string) map[string]*Entry {
	dict := make(map[string]*Entry, len(records))
	for _, r := range records {
		entry := NewEntry(r.Comments, r.Key, r.Value)
		dict[attr(entry)] = entry
	}
	return dict
}

// KeyDictFromFile parses a strings file and indexes its entries by key.
func KeyDictFromFile(path string) (map[string]*Entry, error) {
	records, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return BuildByKey(records), nil
}

// ValueDictFromFile parses a strings file and indexes its entries by value.
func ValueDictFromFile(path string) (map[string]*Entry, error) {
	records, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return BuildByValue(records), nil
}
