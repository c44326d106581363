package values

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/reeflective/parseargs/internal/errors"
	"github.com/reeflective/parseargs/internal/result"
)

// Bind sets the flags of a pflag set with all option values found in a result,
// in order of appearance. Option keys are matched against flag long names,
// or shorthands for single-character keys. Positional and trailing arguments
// are left untouched.
func Bind(res *result.Result, flags *pflag.FlagSet) error {
	if res == nil || flags == nil {
		return fmt.Errorf("%w: result or flag set", errors.ErrNilObject)
	}

	for _, key := range res.Keys() {
		flag := lookup(flags, key)
		if flag == nil {
			return fmt.Errorf("%w: %s", errors.ErrUnknownFlag, display(key))
		}

		val, _ := res.Lookup(key)

		if val.Flag {
			if err := setNoValue(flags, flag); err != nil {
				return err
			}

			continue
		}

		for _, arg := range val.Args {
			if !arg.Valid {
				if err := setNoValue(flags, flag); err != nil {
					return err
				}

				continue
			}

			if err := flags.Set(flag.Name, arg.Value); err != nil {
				return fmt.Errorf("invalid argument %q for %s: %w", arg.Value, display(flag.Name), err)
			}
		}
	}

	return nil
}

func lookup(flags *pflag.FlagSet, key string) *pflag.Flag {
	if flag := flags.Lookup(key); flag != nil {
		return flag
	}

	// ShorthandLookup panics on anything longer than one byte.
	if len(key) == 1 {
		return flags.ShorthandLookup(key)
	}

	return nil
}

// setNoValue sets a flag given without argument, if it accepts it.
func setNoValue(flags *pflag.FlagSet, flag *pflag.Flag) error {
	if flag.NoOptDefVal == "" {
		return fmt.Errorf("%w: %s", errors.ErrExpectedArgument, display(flag.Name))
	}

	if err := flags.Set(flag.Name, flag.NoOptDefVal); err != nil {
		return fmt.Errorf("invalid argument for %s: %w", display(flag.Name), err)
	}

	return nil
}

// display formats an option key as it would be typed.
func display(key string) string {
	if len([]rune(key)) == 1 {
		return "-" + key
	}

	return "--" + key
}
