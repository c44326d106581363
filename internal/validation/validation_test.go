package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflective/parseargs/internal/config"
	flagerrors "github.com/reeflective/parseargs/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		optFuncs []config.OptFunc
		errMsg   string
	}{
		{
			name: "default options",
		},
		{
			name: "valid options",
			optFuncs: []config.OptFunc{
				config.Flags("verbose", "v"),
				config.Shorthand('o', "output"),
				config.KeepShorthands(true),
			},
		},
		{
			name:     "empty flag name",
			optFuncs: []config.OptFunc{config.Flags("verbose", "")},
			errMsg:   "Flags[1]: option name cannot be empty",
		},
		{
			name:     "flag name with a dash",
			optFuncs: []config.OptFunc{config.Flags("--verbose")},
			errMsg:   "Flags[0]: option name `--verbose` cannot start with a dash",
		},
		{
			name:     "empty longhand",
			optFuncs: []config.OptFunc{config.Shorthand('o', "")},
			errMsg:   "option name cannot be empty",
		},
		{
			name:     "longhand with a dash",
			optFuncs: []config.OptFunc{config.Shorthand('o', "-output")},
			errMsg:   "option name `-output` cannot start with a dash",
		},
		{
			name:     "dash shorthand",
			optFuncs: []config.OptFunc{config.Shorthand('-', "dash")},
			errMsg:   "`-` is not a valid shorthand",
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(config.New(test.optFuncs...))
			if test.errMsg == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, flagerrors.ErrInvalidConfig)
			require.ErrorContains(t, err, test.errMsg)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	t.Parallel()

	err := Validate(config.New(config.Flags("", "-x")))
	require.ErrorIs(t, err, flagerrors.ErrInvalidConfig)
	require.ErrorContains(t, err, "Flags[0]")
	require.ErrorContains(t, err, "Flags[1]")
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), flagerrors.ErrNilObject)
}
