package yini

import (
	"fmt"
	"os"
)

// ParseFile reads and parses the YINI file at path. Failures to open
// or read the file surface as wrapped I/O errors, distinct from the
// [ParseError] a malformed document produces.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// WriteFile serializes the document and writes it to path, creating
// or truncating the file.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
