package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// FilterFunc decides whether a file, identified by its base name, should
// be handed to the extractor.
type FilterFunc func(fileName string) bool

// ExtractorFunc reads one file and merges any key/comment pairs it finds
// into acc. Implementations must not retain acc between calls.
type ExtractorFunc func(acc map[string]string, filePath string) error

// Outcome is the per-file result of a walk: the pairs the extractor
// contributed, or the error that made the file unusable. Exactly one of
// Pairs and Err is set, so callers can tell "no entries found" apart from
// "file unreadable".
type Outcome struct {
	Path  string
	Pairs map[string]string
	Err   error
}

// Outcomes walks root depth-first and runs fn on every regular file whose
// name passes filter, recording one outcome per visited file. A failure on
// a single file never aborts the walk; only a failure on root itself does.
func Outcomes(root string, fn ExtractorFunc, filter FilterFunc) ([]Outcome, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var outcomes []Outcome

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() || !filter(info.Name()) {
			return nil
		}

		delta := make(map[string]string)
		if err := fn(delta, path); err != nil {
			outcomes = append(outcomes, Outcome{Path: path, Err: err})
			return nil
		}
		outcomes = append(outcomes, Outcome{Path: path, Pairs: delta})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return outcomes, nil
}

// Extract walks root and folds every successful outcome into a single
// key-to-comment accumulator. Failed files are reported and skipped; when
// two files contribute the same key, the file visited later wins.
func Extract(root string, fn ExtractorFunc, filter FilterFunc) (map[string]string, error) {
	outcomes, err := Outcomes(root, fn, filter)
	if err != nil {
		return nil, err
	}

	acc := make(map[string]string)
	for _, o := range outcomes {
		if o.Err != nil {
			log.Error().Err(o.Err).Str("file", filepath.Base(o.Path)).Msg("Extraction failed")
			continue
		}
		for k, v := range o.Pairs {
			acc[k] = v
		}
	}
	return acc, nil
}

// ExtensionFilter builds a FilterFunc accepting files with one of the
// given extensions (".m", ".h", ...). Matching is case-insensitive.
func ExtensionFilter(exts []string) FilterFunc {
	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = true
	}
	return func(fileName string) bool {
		return allowed[strings.ToLower(filepath.Ext(fileName))]
	}
}
