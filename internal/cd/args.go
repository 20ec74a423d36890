// Package cd resolves and applies targets of the cd builtin.
package cd

import (
	"errors"
	"strings"
)

var (
	ErrMalformed   = errors.New("malformed command")
	ErrTooManyArgs = errors.New("too many arguments to cd")
)

// ParseArgs validates the raw text following "cd" and returns the single
// target it names, or "" when no target was given.
//
// Only tabs and newlines separate fields here. A space separates arguments
// only while an even number of double quotes has been seen, so `"a b"` is one
// argument and `a b` is two.
func ParseArgs(rest string) (string, error) {
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '\t' || r == '\n'
	})
	switch {
	case len(fields) == 0:
		return "", nil
	case len(fields) > 1:
		return "", ErrTooManyArgs
	}

	target := fields[0]
	if target == "~" {
		return "", nil
	}

	quotes := 0
	for i := 0; i < len(target); i++ {
		switch target[i] {
		case '"':
			quotes++
		case ' ':
			if quotes%2 == 0 {
				return "", ErrTooManyArgs
			}
		}
	}
	if quotes%2 == 1 {
		return "", ErrMalformed
	}
	return target, nil
}
