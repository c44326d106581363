package scan

import (
	"github.com/reeflective/parseargs/internal/config"
	"github.com/reeflective/parseargs/internal/result"
)

const separator = "--"

// State is the state of the scanner cursor between two tokens.
type State uint8

const (
	// NoKeyOpen means the next plain token is a positional argument.
	NoKeyOpen State = iota

	// KeyOpen means the next plain token is the value of the open key.
	KeyOpen

	// DropNextValue means the next plain token belonged to an
	// unknown shorthand, and is discarded.
	DropNextValue
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case KeyOpen:
		return "key open"
	case DropNextValue:
		return "drop next value"
	default:
		return "no key open"
	}
}

// Cursor tracks which option key, if any, will receive the next plain token.
type Cursor struct {
	State State
	Key   string
}

// Scanner classifies tokens one at a time, and assigns
// them to options or positional arguments in its result.
type Scanner struct {
	opts   *config.Opts
	flags  map[string]bool
	res    *result.Result
	cursor Cursor
	done   bool
}

// New returns a scanner for the given options. Nil options are the defaults.
func New(opts *config.Opts) *Scanner {
	if opts == nil {
		opts = config.DefOpts()
	}

	return &Scanner{
		opts:  opts,
		flags: opts.FlagSet(),
		res:   result.New(),
	}
}

// Scan tokenizes a list of arguments, as found after the program name.
// It never fails: tokens that cannot be options are values.
func Scan(args []string, opts *config.Opts) *result.Result {
	scanner := New(opts)
	scanner.Run(args)

	return scanner.Result()
}

// Run scans all tokens, stopping after a separator. It returns
// false if a separator was found: further tokens are not scanned.
func (s *Scanner) Run(args []string) bool {
	for i, arg := range args {
		if s.done {
			break
		}

		if arg == separator {
			s.close()
			s.res.SetRest(args[i+1:])
			s.done = true

			break
		}

		s.token(arg)
	}

	return !s.done
}

// Cursor returns the state of the scanner after the last scanned token.
func (s *Scanner) Cursor() Cursor {
	return s.cursor
}

// Result closes any key still waiting for a value and returns the result.
func (s *Scanner) Result() *result.Result {
	s.close()

	return s.res
}

func (s *Scanner) token(arg string) {
	switch {
	case isLong(arg):
		s.long(arg[2:])
	case isShortCluster(arg):
		s.cluster(arg[1:])
	default:
		s.value(arg)
	}
}

// isLong matches --name, but not ---name.
func isLong(arg string) bool {
	return len(arg) > 2 && arg[0] == '-' && arg[1] == '-' && arg[2] != '-'
}

// isShortCluster matches -a or -abc, but not a lone dash.
func isShortCluster(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && arg[1] != '-'
}

func (s *Scanner) long(name string) {
	s.close()
	s.open(name)
}

// cluster handles -abc as -a -b -c.
func (s *Scanner) cluster(shorts string) {
	for _, short := range shorts {
		s.close()

		key, found := s.opts.Longhand(short)
		if !found {
			if !s.opts.KeepShorthands {
				s.cursor = Cursor{State: DropNextValue}

				continue
			}

			key = string(short)
		}

		s.open(key)
	}
}

// open makes key the receiver of the next value, unless it is a flag.
func (s *Scanner) open(key string) {
	if s.flags[key] {
		s.res.SetFlag(key)
		s.cursor = Cursor{State: NoKeyOpen}

		return
	}

	s.cursor = Cursor{State: KeyOpen, Key: key}
}

func (s *Scanner) value(arg string) {
	switch s.cursor.State {
	case KeyOpen:
		s.res.Put(s.cursor.Key, result.Some(arg))
	case DropNextValue:
	case NoKeyOpen:
		s.res.AddPositional(arg)
	}

	s.cursor = Cursor{State: NoKeyOpen}
}

// close records a value-less occurrence of the open key, if any.
func (s *Scanner) close() {
	if s.cursor.State == KeyOpen {
		s.res.Put(s.cursor.Key, result.None())
	}

	s.cursor = Cursor{State: NoKeyOpen}
}
