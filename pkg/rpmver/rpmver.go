// Package rpmver answers ordering and operator queries over RPM version
// strings. Comparison follows rpm's own EVR algorithm (epoch, tilde and
// alphanumeric segment rules) rather than any generic semver scheme, so
// results match what the package tool itself would decide.
package rpmver

import (
	"errors"
	"fmt"
	"strings"

	rpm "github.com/knqyf263/go-rpm-version"
)

// ErrUndecidable is returned when a comparison cannot be made. Callers
// must treat this as "cannot decide", never as equality.
var ErrUndecidable = errors.New("version comparison undecidable")

// Compare orders two version strings: -1 when a < b, 0 when equal,
// 1 when a > b. Version strings may carry an epoch ("1:2.4-8") and a
// release ("2.4-8.el6").
func Compare(a, b string) (int, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0, fmt.Errorf("%w: empty version string", ErrUndecidable)
	}
	return rpm.NewVersion(a).Compare(rpm.NewVersion(b)), nil
}

// Satisfies evaluates `a <op> b` for the comparison operators
// ==, !=, <, <=, > and >=. A bare "=" is accepted as an alias for "==".
func Satisfies(a, op, b string) (bool, error) {
	cmp, err := Compare(a, b)
	if err != nil {
		return false, err
	}

	switch op {
	case "==", "=":
		return cmp == 0, nil
	case "!=":
		return cmp != 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("invalid comparison operator %q", op)
	}
}
