// Package log configures the slog.Logger used by command-line tools,
// with functional options.
//
//	logger := log.New(
//		log.WithLevel("debug"),
//		log.WithFormat("json"),
//	)
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Default configuration values for a new logger.
const (
	DefaultLevel  = slog.LevelWarn
	DefaultFormat = FormatText
)

// Format defines the log output format.
type Format uint8

const (
	FormatText Format = iota // Human-readable text format.
	FormatJSON               // JSON format.
)

// String returns the lower-case string representation of the log format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// New creates a slog.Logger. By default, it logs warnings and errors
// in plain text to os.Stderr, leaving os.Stdout to command output.
func New(opts ...Option) *slog.Logger {
	c := config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
		Writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&c)
	}

	o := &slog.HandlerOptions{Level: c.Level}

	var handler slog.Handler
	switch c.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(c.Writer, o)
	default:
		handler = slog.NewTextHandler(c.Writer, o)
	}

	return slog.New(handler)
}

type config struct {
	Level  slog.Level
	Format Format
	Writer io.Writer
}

// Option defines a function that modifies the logger configuration.
type Option func(*config)

// WithLevel sets the minimum log level, from a slog.Level or a string
// recognized by ParseLevel. Invalid values are ignored.
func WithLevel(v any) Option {
	return func(c *config) {
		switch t := v.(type) {
		case slog.Level:
			c.Level = t
		case string:
			if level, err := ParseLevel(t); err == nil {
				c.Level = level
			}
		}
	}
}

// WithFormat sets the output format, from a Format or a string
// recognized by ParseFormat. Invalid values are ignored.
func WithFormat(v any) Option {
	return func(c *config) {
		switch t := v.(type) {
		case Format:
			c.Format = t
		case string:
			if format, err := ParseFormat(t); err == nil {
				c.Format = format
			}
		}
	}
}

// WithWriter sets the output destination. A nil writer is ignored.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.Writer = w
		}
	}
}

// ParseLevel converts a string into a slog.Level, ignoring case.
func ParseLevel(s string) (level slog.Level, err error) {
	if e := level.UnmarshalText([]byte(s)); e != nil {
		err = fmt.Errorf("invalid log level %q", s)
	}

	return
}

// ParseFormat converts "text" or "json" into a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatText, fmt.Errorf("invalid log format %q", s)
	}
}
