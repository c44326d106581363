package main

import (
	"fmt"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/parseargs"
	"github.com/reeflective/parseargs/internal/log"
	"github.com/reeflective/parseargs/types"
)

// rootOptions holds the tokenizer options declared on the command line.
type rootOptions struct {
	flags      []string
	shorthands types.Shorthands
	keep       bool
	config     string
	format     types.Format
	logLevel   string
	logFormat  string
}

// options returns the tokenizer options, loading the configuration file if any.
func (o *rootOptions) options() ([]parseargs.Option, error) {
	opts := []parseargs.Option{
		parseargs.WithFlags(o.flags...),
		parseargs.WithShorthands(o.shorthands),
	}

	if o.keep {
		opts = append(opts, parseargs.WithKeepShorthands())
	}

	if o.config != "" {
		fileOpt, err := parseargs.FromFile(o.config)
		if err != nil {
			return nil, err
		}

		opts = append(opts, fileOpt)
	}

	return opts, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{format: types.FormatCanonical}

	rootCmd := &cobra.Command{
		Use:   "parseargs [flags] -- tokens...",
		Short: "Tokenize command-line arguments and print them as JSON",
		Long: `Tokenize command-line arguments and print them as JSON.

All words after the first -- are tokenized: options are printed with
the list of their values (null for a value-less occurrence), or true
for flags. Positional words are under "", and words after a second --
are under "--".`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringSliceVarP(&opts.flags, "flag", "f", nil, "option names which never take a value")
	flags.VarP(&opts.shorthands, "shorthand", "s", "shorthand to long option mappings")
	flags.BoolVarP(&opts.keep, "keep-shorthands", "k", false, "keep undeclared shorthands")
	flags.StringVarP(&opts.config, "config", "c", "", "HCL file declaring options")
	flags.Var(&opts.format, "format", "output format (canonical, compat)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	comps := carapace.Gen(rootCmd)

	comps.FlagCompletion(carapace.ActionMap{
		"config":     carapace.ActionFiles(".hcl"),
		"format":     carapace.ActionValues(string(types.FormatCanonical), string(types.FormatCompat)),
		"log-level":  carapace.ActionValues("debug", "info", "warn", "error"),
		"log-format": carapace.ActionValues("text", "json"),
	})

	comps.PositionalAnyCompletion(carapace.ActionCallback(func(_ carapace.Context) carapace.Action {
		tokenOpts, err := opts.options()
		if err != nil {
			return carapace.ActionMessage("invalid configuration: %v", err)
		}

		return parseargs.CompletionAction(tokenOpts...)
	}))

	return rootCmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := log.New(
		log.WithLevel(opts.logLevel),
		log.WithFormat(opts.logFormat),
		log.WithWriter(cmd.ErrOrStderr()),
	)

	tokenOpts, err := opts.options()
	if err != nil {
		logger.Error("Failed to load configuration", "path", opts.config, "error", err)

		return err
	}

	if err := parseargs.Validate(tokenOpts...); err != nil {
		logger.Error("Invalid configuration", "error", err)

		return err
	}

	res := parseargs.Parse(args, tokenOpts...)

	rest, separated := res.Rest()
	logger.Debug("Tokenized arguments",
		"tokens", len(args),
		"options", res.Len(),
		"positional", len(res.Positional()),
		"rest", len(rest),
		"separated", separated,
	)

	var data []byte
	if opts.format == types.FormatCompat {
		data, err = res.MarshalCompat()
	} else {
		data, err = res.MarshalJSON()
	}

	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}
