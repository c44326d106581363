// Package parseargs tokenizes command-line arguments into a mapping from
// option names to their values, without requiring options to be declared
// beforehand.
//
// Tokens are scanned once, left to right: `--name` is a long option, `-abc`
// is a cluster of shorthands (the same as `-a -b -c`), `--` ends options,
// and anything else is either the value of the option just before it, or a
// positional argument. Options listed as flags never take a value.
//
//	res := parseargs.Parse(os.Args[1:],
//		parseargs.WithFlags("verbose"),
//		parseargs.WithShorthand('v', "verbose"),
//		parseargs.WithShorthand('o', "output"),
//	)
//
//	res.IsFlag("verbose")  // true if -v or --verbose was given
//	res.Strings("output")  // all values given to -o or --output
//	res.Positional()       // everything else
//
// Parsing never fails. Checking that options are known or correctly typed
// is left to the caller: the Bind function does it against a pflag.FlagSet,
// and Command wires the whole in a cobra command.
package parseargs

import (
	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/parseargs/internal/completions"
	"github.com/reeflective/parseargs/internal/config"
	"github.com/reeflective/parseargs/internal/errors"
	"github.com/reeflective/parseargs/internal/result"
	"github.com/reeflective/parseargs/internal/scan"
	"github.com/reeflective/parseargs/internal/validation"
	"github.com/reeflective/parseargs/internal/values"
)

// === Primary Entry Points ===

// Parse tokenizes a list of arguments, as found after the program name
// (os.Args[1:]). The result always has a positional bucket, and a trailing
// one only when a `--` separator was found.
func Parse(args []string, opts ...Option) *Result {
	return scan.Scan(args, newOpts(opts))
}

// Validate checks that the options only declare usable names: option
// names must not be empty nor start with a dash, and `-` is not a valid
// shorthand. Parse does not need valid options, but names not passing
// this check cannot be matched by any token.
func Validate(opts ...Option) error {
	return validation.Validate(newOpts(opts))
}

// Bind sets the flags of a pflag set with all option values found in a result.
// It returns ErrUnknownFlag if an option has no flag, and ErrExpectedArgument if
// an option requiring an argument was given without one.
func Bind(res *Result, flags *pflag.FlagSet) error {
	return values.Bind(res, flags)
}

// Completions registers completions for the positional words of a command,
// which are classified with the given options.
func Completions(cmd *cobra.Command, opts ...Option) *carapace.Carapace {
	comps := carapace.Gen(cmd)
	completions.Bind(comps, newOpts(opts))

	return comps
}

// CompletionAction returns a carapace action completing
// words classified with the given options.
func CompletionAction(opts ...Option) carapace.Action {
	return completions.Action(newOpts(opts))
}

// === Results ===

// Result maps option keys to their values, in order of first appearance.
type Result = result.Result

// Value is what an option key holds: either a set flag, or the list
// of its occurrences.
type Value = result.Value

// Arg is a single occurrence of an option, with or without a value.
type Arg = result.Arg

const (
	// PositionalKey is the key of positional arguments in Result.Map.
	PositionalKey = result.PositionalKey

	// RestKey is the key of arguments after the separator in Result.Map.
	RestKey = result.RestKey
)

// === Configuration (Functional Options) ===

// Option is a functional option for configuring how tokens are classified.
type Option func(o *config.Opts)

func newOpts(opts []Option) *config.Opts {
	internalOpts := make([]config.OptFunc, len(opts))
	for i, opt := range opts {
		internalOpts[i] = config.OptFunc(opt)
	}

	return config.New(internalOpts...)
}

// WithFlags declares option names (long names or shorthand characters)
// that never take a value: they are set to true when present.
func WithFlags(names ...string) Option {
	return Option(config.Flags(names...))
}

// WithShorthand maps a single character to a long option name.
func WithShorthand(short rune, long string) Option {
	return Option(config.Shorthand(short, long))
}

// WithShorthands maps single characters to long option names.
func WithShorthands(shorthands map[rune]string) Option {
	return Option(config.Shorthands(shorthands))
}

// WithKeepShorthands keeps undeclared shorthands under their character.
// By default, they are ignored along with the value that follows them.
func WithKeepShorthands() Option {
	return Option(config.KeepShorthands(true))
}

// FromFlagSet declares flags and shorthands from a pflag set:
// flags usable without an argument never take a value.
func FromFlagSet(flags *pflag.FlagSet) Option {
	return Option(values.FromFlagSet(flags))
}

// FromCommand declares flags and shorthands from all flags of a
// cobra command, including those inherited from its parents.
func FromCommand(cmd *cobra.Command) Option {
	return Option(values.FromCommand(cmd))
}

// FromFile declares flags and shorthands from an HCL configuration file.
func FromFile(path string) (Option, error) {
	optFunc, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Option(optFunc), nil
}

// FromHCL declares flags and shorthands from HCL configuration contents.
func FromHCL(src []byte, filename string) (Option, error) {
	optFunc, err := config.ParseHCL(src, filename)
	if err != nil {
		return nil, err
	}

	return Option(optFunc), nil
}

// === Public Errors ===

var (
	// ErrInvalidConfig indicates that options failed validation.
	ErrInvalidConfig = errors.ErrInvalidConfig

	// ErrConfigFile indicates that a configuration file could not be parsed.
	ErrConfigFile = errors.ErrConfigFile

	// ErrUnknownFlag indicates that an option has no matching flag.
	ErrUnknownFlag = errors.ErrUnknownFlag

	// ErrExpectedArgument indicates that an option requiring
	// an argument was given without one.
	ErrExpectedArgument = errors.ErrExpectedArgument

	// ErrNilObject indicates that an object is nil although it should not.
	ErrNilObject = errors.ErrNilObject
)
