package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/parseargs/internal/config"
	flagerrors "github.com/reeflective/parseargs/internal/errors"
)

// Validate checks that the options only contain usable option names and
// shorthands. The returned error wraps ErrInvalidConfig, and one error
// for each invalid name.
func Validate(opts *config.Opts) error {
	if opts == nil {
		return fmt.Errorf("%w: options", flagerrors.ErrNilObject)
	}

	err := validator.New().Struct(opts)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", flagerrors.ErrInvalidConfig, err)
	}

	all := make([]error, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		all = append(all, newInvalidVarError(fieldErr))
	}

	return fmt.Errorf("%w: %w", flagerrors.ErrInvalidConfig, errors.Join(all...))
}
