package extract

import (
	"fmt"
	"os"

	"locharvest/internal/strfile"
)

// NewMarkerExtractor returns an ExtractorFunc that scans a file's raw text
// for name('KEY', 'COMMENT') declarations and records each pair found.
func NewMarkerExtractor(name string) ExtractorFunc {
	re := strfile.MarkerPattern(name)
	return func(acc map[string]string, filePath string) error {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read source file: %w", err)
		}
		for _, m := range re.FindAllSubmatch(data, -1) {
			acc[string(m[1])] = string(m[2])
		}
		return nil
	}
}

// MarkerPairs scans for the default JTL marker.
var MarkerPairs = NewMarkerExtractor(strfile.DefaultMarker)
