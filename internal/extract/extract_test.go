package extract_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locharvest/internal/extract"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractMarkerPairs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "label.text = JTL('GREETING', 'Hello text');\n")
	writeFile(t, dir, "b.m", "button.title = JTL('FAREWELL', \"Bye text\");\n")
	writeFile(t, dir, "c.txt", "JTL('IGNORED','x')\n")

	pairs, err := extract.Extract(dir, extract.MarkerPairs, extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"GREETING": "Hello text",
		"FAREWELL": "Bye text",
	}, pairs)
}

func TestExtractRecursesSubdirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "JTL('TOP', 'Top level')\n")
	writeFile(t, dir, filepath.Join("nested", "deep", "b.m"), "JTL('DEEP', 'Nested')\n")

	pairs, err := extract.Extract(dir, extract.MarkerPairs, extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TOP":  "Top level",
		"DEEP": "Nested",
	}, pairs)
}

func TestExtractLastWriteWinsAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "JTL('SHARED', 'From a')\n")
	writeFile(t, dir, "b.m", "JTL('SHARED', 'From b')\n")

	pairs, err := extract.Extract(dir, extract.MarkerPairs, extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	// filepath.Walk visits lexically, so b.m overwrites a.m.
	assert.Equal(t, map[string]string{"SHARED": "From b"}, pairs)
}

func TestExtractPartialFailureIsolation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "JTL('FIRST', 'From a')\n")
	writeFile(t, dir, "b.m", "JTL('BROKEN', 'Never seen')\n")
	writeFile(t, dir, "c.m", "JTL('LAST', 'From c')\n")

	failOn := func(acc map[string]string, path string) error {
		if filepath.Base(path) == "b.m" {
			acc["BROKEN"] = "partial"
			return errors.New("boom")
		}
		return extract.MarkerPairs(acc, path)
	}

	pairs, err := extract.Extract(dir, failOn, extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"FIRST": "From a",
		"LAST":  "From c",
	}, pairs)
}

func TestOutcomesPerFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "JTL('FIRST', 'From a')\n")
	writeFile(t, dir, "b.m", "whatever\n")
	writeFile(t, dir, "empty.m", "no markers here\n")

	failOn := func(acc map[string]string, path string) error {
		if filepath.Base(path) == "b.m" {
			return errors.New("boom")
		}
		return extract.MarkerPairs(acc, path)
	}

	outcomes, err := extract.Outcomes(dir, failOn, extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	byName := make(map[string]extract.Outcome, len(outcomes))
	for _, o := range outcomes {
		byName[filepath.Base(o.Path)] = o
	}

	require.NoError(t, byName["a.m"].Err)
	assert.Equal(t, map[string]string{"FIRST": "From a"}, byName["a.m"].Pairs)

	assert.Error(t, byName["b.m"].Err)
	assert.Nil(t, byName["b.m"].Pairs)

	// A readable file without markers is a success with zero pairs, not a
	// failure.
	require.NoError(t, byName["empty.m"].Err)
	assert.Empty(t, byName["empty.m"].Pairs)
}

func TestExtractMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := extract.Extract(filepath.Join(t.TempDir(), "absent"), extract.MarkerPairs, extract.ExtensionFilter([]string{".m"}))
	assert.Error(t, err)
}

func TestExtractRootNotDirectory(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "file.m", "JTL('K','c')\n")

	_, err := extract.Extract(path, extract.MarkerPairs, extract.ExtensionFilter([]string{".m"}))
	assert.Error(t, err)
}

func TestNewMarkerExtractorCustomName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.m", "TR('CUSTOM', 'Custom marker')\nJTL('DEFAULT', 'Default marker')\n")

	pairs, err := extract.Extract(dir, extract.NewMarkerExtractor("TR"), extract.ExtensionFilter([]string{".m"}))

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"CUSTOM": "Custom marker"}, pairs)
}

func TestExtensionFilterCaseInsensitive(t *testing.T) {
	t.Parallel()

	filter := extract.ExtensionFilter([]string{".m", ".h"})

	assert.True(t, filter("View.M"))
	assert.True(t, filter("header.h"))
	assert.False(t, filter("notes.txt"))
	assert.False(t, filter("noext"))
}
