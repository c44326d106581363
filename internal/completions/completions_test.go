package completions

import (
	"testing"

	"github.com/carapace-sh/carapace"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/parseargs/internal/config"
)

func testOpts() *config.Opts {
	return config.New(
		config.Flags("verbose", "q"),
		config.Shorthands(map[rune]string{'o': "output", 'v': "verbose"}),
		config.KeepShorthands(true),
	)
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	require.Equal(t, []candidate{
		{name: "--output"},
		{name: "--verbose", flag: true},
		{name: "-o", desc: "output"},
		{name: "-q", desc: "q", flag: true},
		{name: "-v", desc: "verbose", flag: true},
	}, candidates(testOpts()))

	// Without kept shorthands, single-character flags are never used as shorthands.
	opts := testOpts()
	opts.KeepShorthands = false

	require.Len(t, candidates(opts), 4)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		args    []string
		current string
		what    suggestion
		key     string
	}{
		{"empty line", nil, "", suggestNothing, ""},
		{"dash", nil, "-", suggestOptions, ""},
		{"long prefix", []string{"pos"}, "--ou", suggestOptions, ""},
		{"value of long option", []string{"--output"}, "", suggestValue, "output"},
		{"value of shorthand", []string{"-vo"}, "fi", suggestValue, "output"},
		{"option after open key", []string{"--output"}, "-", suggestOptions, ""},
		{"after flag", []string{"--verbose"}, "", suggestNothing, ""},
		{"after value", []string{"--output", "file"}, "", suggestNothing, ""},
		{"after separator", []string{"--", "--output"}, "-", suggestNothing, ""},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			what, key := suggest(testOpts(), test.args, test.current)
			require.Equal(t, test.what, what)
			require.Equal(t, test.key, key)
		})
	}
}

// TestCompletions just calls the carapace engine test routine
// on a command whose positional words are completed as options.
func TestCompletions(t *testing.T) {
	t.Parallel()

	rootCmd := &cobra.Command{Use: "test", DisableFlagParsing: true}
	Bind(carapace.Gen(rootCmd), testOpts())

	carapace.Test(t)
}
