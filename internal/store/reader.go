package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// readLines returns the logical records of a data file, one per line.
// An absent or empty file yields no lines; blank lines are skipped.
func readLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	var lines []string
	for _, ln := range strings.Split(string(b), "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if ln == "" {
			continue
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

// splitLineByComma splits a record on commas. A double quote toggles a
// span inside which commas do not split; the quotes themselves and the
// interior commas are kept verbatim in the field value. The raw
// passthrough matches the historical file format and must not be replaced
// with standard CSV unescaping.
func splitLineByComma(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}
