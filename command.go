package parseargs

import (
	"github.com/spf13/cobra"
)

// RunFunc is the function run by a command with its tokenized arguments.
// The command flags are already set with the values found in the result.
type RunFunc func(cmd *cobra.Command, res *Result) error

// Command makes a cobra command tokenize its own arguments: flag parsing
// is disabled, and the command's RunE tokenizes the raw arguments with
// the flags of the command (and any additional options), binds them onto
// the command flags, and calls run with the result.
//
// Since cobra does not parse flags anymore, a --help flag is handled here.
func Command(cmd *cobra.Command, run RunFunc, opts ...Option) *cobra.Command {
	cmd.DisableFlagParsing = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		all := append([]Option{FromCommand(cmd)}, opts...)
		res := Parse(args, all...)

		if err := Bind(res, cmd.Flags()); err != nil {
			return err
		}

		if help, err := cmd.Flags().GetBool("help"); err == nil && help {
			return cmd.Help()
		}

		return run(cmd, res)
	}

	return cmd
}
