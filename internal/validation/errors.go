package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// invalidVarError wraps an error raised by validator on a configuration
// field, and replaces its message with one more adapted to CLI.
type invalidVarError struct {
	fieldName    string
	fieldValue   any
	tag          string
	validatorErr validator.FieldError
}

func newInvalidVarError(err validator.FieldError) *invalidVarError {
	return &invalidVarError{
		fieldName:    err.Field(),
		fieldValue:   err.Value(),
		tag:          err.Tag(),
		validatorErr: err,
	}
}

// Error implements the Error interface.
func (err *invalidVarError) Error() string {
	value := err.fieldValue
	if short, ok := value.(rune); ok {
		value = string(short)
	}

	switch err.tag {
	case "required":
		return fmt.Sprintf("%s: option name cannot be empty", err.fieldName)
	case "startsnotwith":
		return fmt.Sprintf("%s: option name `%v` cannot start with a dash", err.fieldName, value)
	case "ne":
		return fmt.Sprintf("%s: `%v` is not a valid shorthand", err.fieldName, value)
	}

	// Or simply replace the empty key with the field name.
	retag := regexp.MustCompile(`Key: '[^']*' Error:`)

	return strings.TrimSpace(retag.ReplaceAllString(err.validatorErr.Error(), err.fieldName+":"))
}

// Unwrap returns the original validator error.
func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
