package shell

import (
	"fmt"
	"strings"
)

func isDelim(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// Fields splits line on spaces, tabs and newlines. Lines with more than max
// tokens are rejected; max <= 0 means no limit.
func Fields(line string, max int) ([]string, error) {
	fields := strings.FieldsFunc(line, isDelim)
	if max > 0 && len(fields) > max {
		return nil, fmt.Errorf("%w: %d arguments, limit %d", ErrArgOverflow, len(fields), max)
	}
	return fields, nil
}

// splitCommand returns the first token of line and the raw text after the
// delimiter that ends it.
func splitCommand(line string) (name, rest string) {
	start := strings.IndexFunc(line, func(r rune) bool { return !isDelim(r) })
	if start < 0 {
		return "", ""
	}
	line = line[start:]
	end := strings.IndexFunc(line, isDelim)
	if end < 0 {
		return line, ""
	}
	return line[:end], line[end+1:]
}
