package config

// OptFunc sets values in Opts structure.
type OptFunc func(opt *Opts)

// Opts specifies how a list of tokens is classified by the scanner.
// It is never modified while a scan is in progress.
type Opts struct {
	// Flags lists the option names (long or single-character) for
	// which values are never collected: their presence sets them to true.
	Flags []string `validate:"dive,required,startsnotwith=-"`

	// Shorthands maps a single character to a long option name.
	Shorthands map[rune]string `validate:"dive,keys,ne=45,endkeys,required,startsnotwith=-"`

	// KeepShorthands stores shorthands that are not listed in Shorthands
	// under their literal character. Otherwise they are ignored, along
	// with the value that follows them.
	KeepShorthands bool
}

// DefOpts returns the default scanning options.
func DefOpts() *Opts {
	return &Opts{
		Shorthands: map[rune]string{},
	}
}

// New returns the default options with the given option funcs applied.
func New(optFuncs ...OptFunc) *Opts {
	return DefOpts().Apply(optFuncs...)
}

// Apply applies the given options to the current options.
func (o *Opts) Apply(optFuncs ...OptFunc) *Opts {
	for _, f := range optFuncs {
		if f != nil {
			(f)(o)
		}
	}

	return o
}

// CopyOpts returns a copy of the given options.
func CopyOpts(opts *Opts) OptFunc {
	return func(opt *Opts) {
		opt.Flags = append(opt.Flags[:0:0], opts.Flags...)
		opt.KeepShorthands = opts.KeepShorthands

		opt.Shorthands = make(map[rune]string, len(opts.Shorthands))
		for short, long := range opts.Shorthands {
			opt.Shorthands[short] = long
		}
	}
}

// Flags adds option names (long names or shorthand characters) that never collect a value.
func Flags(names ...string) OptFunc {
	return func(opt *Opts) { opt.Flags = append(opt.Flags, names...) }
}

// Shorthand maps a single character to a long option name.
func Shorthand(short rune, long string) OptFunc {
	return func(opt *Opts) {
		if opt.Shorthands == nil {
			opt.Shorthands = map[rune]string{}
		}
		opt.Shorthands[short] = long
	}
}

// Shorthands adds all the given character to long option name mappings.
func Shorthands(shorthands map[rune]string) OptFunc {
	return func(opt *Opts) {
		for short, long := range shorthands {
			Shorthand(short, long)(opt)
		}
	}
}

// KeepShorthands sets whether unknown shorthands are kept under their literal character.
func KeepShorthands(val bool) OptFunc {
	return func(opt *Opts) { opt.KeepShorthands = val }
}

// Longhand returns the long option name a shorthand character resolves to.
// A shorthand mapped to an empty name is not resolved.
func (o *Opts) Longhand(short rune) (string, bool) {
	long, found := o.Shorthands[short]

	return long, found && long != ""
}

// FlagSet returns the set of option keys that never collect a value: every name
// in Flags, and every long name to which a shorthand listed in Flags resolves.
func (o *Opts) FlagSet() map[string]bool {
	listed := make(map[string]bool, len(o.Flags))
	set := make(map[string]bool, len(o.Flags))

	for _, name := range o.Flags {
		listed[name] = true
		set[name] = true
	}

	for short, long := range o.Shorthands {
		if long != "" && listed[string(short)] {
			set[long] = true
		}
	}

	return set
}
