package completions

import (
	"maps"
	"slices"
	"strings"

	"github.com/carapace-sh/carapace"

	"github.com/reeflective/parseargs/internal/config"
	"github.com/reeflective/parseargs/internal/scan"
)

// candidate is an option name to propose, with its description.
type candidate struct {
	name string
	desc string
	flag bool
}

// suggestion is what should be completed for the current word.
type suggestion uint8

const (
	suggestNothing suggestion = iota
	suggestOptions
	suggestValue
)

// Bind registers completions for the positional words of a command.
func Bind(comps *carapace.Carapace, opts *config.Opts) {
	comps.PositionalAnyCompletion(Action(opts))
}

// Action completes a line of tokens, as they are classified with the given
// options: option names when the current word starts with a dash, and a
// usage message when the previous option expects a value.
func Action(opts *config.Opts) carapace.Action {
	handler := func(ctx carapace.Context) carapace.Action {
		what, key := suggest(opts, ctx.Args, ctx.Value)

		switch what {
		case suggestOptions:
			return Options(opts)
		case suggestValue:
			return carapace.ActionMessage("value for --%s", key)
		default:
			return carapace.ActionValues()
		}
	}

	return carapace.ActionCallback(handler)
}

// Options returns an action completing all option names and shorthands known to the options.
func Options(opts *config.Opts) carapace.Action {
	var flags, options []string

	for _, cand := range candidates(opts) {
		if cand.flag {
			flags = append(flags, cand.name, cand.desc)
		} else {
			options = append(options, cand.name, cand.desc)
		}
	}

	return carapace.Batch(
		carapace.ActionValuesDescribed(flags...).Tag("flags"),
		carapace.ActionValuesDescribed(options...).Tag("options"),
	).ToA()
}

// suggest scans the words already typed, and finds
// what kind of word the current one should be.
func suggest(opts *config.Opts, args []string, current string) (suggestion, string) {
	scanner := scan.New(opts)
	if !scanner.Run(args) {
		return suggestNothing, ""
	}

	if strings.HasPrefix(current, "-") {
		return suggestOptions, ""
	}

	if cursor := scanner.Cursor(); cursor.State == scan.KeyOpen {
		return suggestValue, cursor.Key
	}

	return suggestNothing, ""
}

// candidates lists long option names then shorthands, each sorted.
func candidates(opts *config.Opts) []candidate {
	flagSet := opts.FlagSet()
	longs := map[string]bool{}

	for _, name := range opts.Flags {
		if len([]rune(name)) > 1 {
			longs[name] = true
		}
	}

	for _, long := range opts.Shorthands {
		if long != "" {
			longs[long] = true
		}
	}

	shorts := map[rune]string{}

	for short := range opts.Shorthands {
		if long, found := opts.Longhand(short); found {
			shorts[short] = long
		}
	}

	// Single-character flags are only used as such when they are kept.
	for _, name := range opts.Flags {
		short := []rune(name)
		if len(short) == 1 && opts.KeepShorthands && shorts[short[0]] == "" {
			shorts[short[0]] = name
		}
	}

	var cands []candidate

	for _, long := range slices.Sorted(maps.Keys(longs)) {
		cands = append(cands, candidate{name: "--" + long, flag: flagSet[long]})
	}

	for _, short := range slices.Sorted(maps.Keys(shorts)) {
		long := shorts[short]
		cands = append(cands, candidate{
			name: "-" + string(short),
			desc: long,
			flag: flagSet[long],
		})
	}

	return cands
}
