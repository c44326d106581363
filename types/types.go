// Package types provides pflag.Value implementations for declaring
// tokenizer options from the command line.
package types

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidShorthand indicates a shorthand mapping not of the form c=long.
	ErrInvalidShorthand = errors.New("invalid shorthand")

	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("invalid format")
)

// Shorthands is a flag type mapping single characters to long option
// names. It accepts comma-separated c=long pairs, and can be repeated.
type Shorthands map[rune]string

// Set implements the pflag.Value interface.
func (s *Shorthands) Set(val string) error {
	if *s == nil {
		*s = Shorthands{}
	}

	for _, pair := range strings.Split(val, ",") {
		short, long, found := strings.Cut(pair, "=")
		if !found || long == "" {
			return fmt.Errorf("%w: %q must be of the form c=long", ErrInvalidShorthand, pair)
		}

		char, size := utf8.DecodeRuneInString(short)
		if size == 0 || size != len(short) || char == utf8.RuneError {
			return fmt.Errorf("%w: %q is not a single character", ErrInvalidShorthand, short)
		}

		(*s)[char] = long
	}

	return nil
}

// String implements the pflag.Value interface.
func (s *Shorthands) String() string {
	pairs := make([]string, 0, len(*s))

	for _, short := range slices.Sorted(maps.Keys(*s)) {
		pairs = append(pairs, string(short)+"="+(*s)[short])
	}

	return strings.Join(pairs, ",")
}

// Type implements the pflag.Value interface.
func (s *Shorthands) Type() string { return "c=long" }

// Format is the shape in which a result is printed.
type Format string

const (
	// FormatCanonical prints every option as a list of values.
	FormatCanonical Format = "canonical"

	// FormatCompat prints options given once as a bare value.
	FormatCompat Format = "compat"
)

// Set implements the pflag.Value interface.
func (f *Format) Set(val string) error {
	switch Format(strings.ToLower(val)) {
	case FormatCanonical:
		*f = FormatCanonical
	case FormatCompat:
		*f = FormatCompat
	default:
		return fmt.Errorf("%w %q: must be one of %s, %s", ErrInvalidFormat, val, FormatCanonical, FormatCompat)
	}

	return nil
}

// String implements the pflag.Value interface.
func (f *Format) String() string {
	if *f == "" {
		return string(FormatCanonical)
	}

	return string(*f)
}

// Type implements the pflag.Value interface.
func (f *Format) Type() string { return "format" }
