package values

import (
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/parseargs/internal/config"
)

// FromFlagSet returns options matching the flags declared in a pflag set:
// flags usable without an argument (booleans, counters, or any flag with
// a NoOptDefVal) never collect a value, and flag shorthands are resolved
// to their long names.
func FromFlagSet(flags *pflag.FlagSet) config.OptFunc {
	return func(opt *config.Opts) {
		if flags == nil {
			return
		}

		flags.VisitAll(func(flag *pflag.Flag) {
			if flag.NoOptDefVal != "" {
				opt.Apply(config.Flags(flag.Name))
			}

			short, size := utf8.DecodeRuneInString(flag.Shorthand)
			if size > 0 && size == len(flag.Shorthand) {
				opt.Apply(config.Shorthand(short, flag.Name))
			}
		})
	}
}

// FromCommand returns options matching all flags available to a command,
// both its own and those inherited from its parents.
func FromCommand(cmd *cobra.Command) config.OptFunc {
	return func(opt *config.Opts) {
		if cmd == nil {
			return
		}

		opt.Apply(
			FromFlagSet(cmd.LocalFlags()),
			FromFlagSet(cmd.InheritedFlags()),
		)
	}
}
