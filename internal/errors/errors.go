package errors

import "errors"

var (
	// ErrInvalidConfig indicates that a tokenizer configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConfigFile indicates that a configuration file could not be parsed or decoded.
	ErrConfigFile = errors.New("invalid configuration file")

	// ErrUnknownFlag indicates that a parsed option key has no matching flag.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrExpectedArgument indicates that an option occurrence carried no value,
	// although the flag it is bound to requires one.
	ErrExpectedArgument = errors.New("expected argument for flag")

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.New("object cannot be nil")
)
