package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpts_FlagSet(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		optFuncs []OptFunc
		expected map[string]bool
	}{
		{
			name:     "no flags",
			expected: map[string]bool{},
		},
		{
			name:     "long flags",
			optFuncs: []OptFunc{Flags("verbose", "quiet")},
			expected: map[string]bool{"verbose": true, "quiet": true},
		},
		{
			name:     "shorthand flag resolves to its longhand",
			optFuncs: []OptFunc{Flags("v"), Shorthand('v', "verbose")},
			expected: map[string]bool{"v": true, "verbose": true},
		},
		{
			name:     "resolution is not transitive",
			optFuncs: []OptFunc{Flags("a"), Shorthands(map[rune]string{'a': "b", 'b': "c"})},
			expected: map[string]bool{"a": true, "b": true},
		},
		{
			name:     "shorthand to empty name",
			optFuncs: []OptFunc{Flags("a"), Shorthand('a', "")},
			expected: map[string]bool{"a": true},
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.expected, New(test.optFuncs...).FlagSet())
		})
	}
}

func TestOpts_Longhand(t *testing.T) {
	t.Parallel()

	opts := New(Shorthand('o', "output"), Shorthand('e', ""))

	long, found := opts.Longhand('o')
	require.True(t, found)
	require.Equal(t, "output", long)

	_, found = opts.Longhand('e')
	require.False(t, found)

	_, found = opts.Longhand('x')
	require.False(t, found)
}

func TestOpts_Apply(t *testing.T) {
	t.Parallel()

	opts := (&Opts{}).Apply(
		Flags("a"),
		nil,
		Shorthand('b', "bbb"),
		KeepShorthands(true),
		Flags("c"),
	)

	require.Equal(t, []string{"a", "c"}, opts.Flags)
	require.Equal(t, map[rune]string{'b': "bbb"}, opts.Shorthands)
	require.True(t, opts.KeepShorthands)
}

func TestCopyOpts(t *testing.T) {
	t.Parallel()

	src := New(Flags("a"), Shorthand('b', "bbb"), KeepShorthands(true))
	dst := New(CopyOpts(src))

	require.Equal(t, src, dst)

	dst.Apply(Flags("x"), Shorthand('y', "yyy"))
	require.Equal(t, []string{"a"}, src.Flags)
	require.Equal(t, map[rune]string{'b': "bbb"}, src.Shorthands)
}
