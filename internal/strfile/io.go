package strfile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Strings files are UTF-16 on disk. Reads honor a byte order mark and fall
// back to little-endian without one; writes are little-endian with a BOM
// only at the start of an empty file, so appends never embed a second BOM.

// ReadFile decodes the UTF-16 strings file at path into a string.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open strings file: %w", err)
	}
	defer f.Close()

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf("decode strings file %s: %w", path, err)
	}
	return string(data), nil
}

// Writer encodes written text as UTF-16 on the way to a strings file.
type Writer struct {
	f  *os.File
	tw *transform.Writer
}

// Create opens the strings file at path for writing, truncating any
// existing content.
func Create(path string) (*Writer, error) {
	return newWriter(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY)
}

// Append opens the strings file at path for appending, creating it when
// missing.
func Append(path string) (*Writer, error) {
	return newWriter(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY)
}

func newWriter(path string, flags int) (*Writer, error) {
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("open strings file: %w", err)
	}

	bom := unicode.IgnoreBOM
	if info, err := f.Stat(); err == nil && info.Size() == 0 {
		bom = unicode.UseBOM
	}
	enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()

	return &Writer{f: f, tw: transform.NewWriter(f, enc)}, nil
}

// WriteString encodes and writes s.
func (w *Writer) WriteString(s string) error {
	if _, err := io.WriteString(w.tw, s); err != nil {
		return fmt.Errorf("write strings file %s: %w", w.f.Name(), err)
	}
	return nil
}

// Close flushes the encoder and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.tw.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("flush strings file %s: %w", w.f.Name(), err)
	}
	return w.f.Close()
}
