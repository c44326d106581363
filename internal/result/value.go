package result

// Arg is one occurrence of an option. Valid is false when
// the option was given without a value.
type Arg struct {
	Value string
	Valid bool
}

// Some returns a valued occurrence.
func Some(val string) Arg { return Arg{Value: val, Valid: true} }

// None returns a value-less occurrence.
func None() Arg { return Arg{} }

// Value is what a single option key holds in a Result: either
// a flag (which was set), or the ordered list of its occurrences.
type Value struct {
	// Flag is true if the key never collects values.
	Flag bool

	// Args holds all occurrences of a non-flag key, in arrival order.
	Args []Arg
}

// Strings returns the values of all valued occurrences, in order.
func (v Value) Strings() []string {
	vals := make([]string, 0, len(v.Args))

	for _, arg := range v.Args {
		if arg.Valid {
			vals = append(vals, arg.Value)
		}
	}

	return vals
}

// Last returns the value of the last occurrence, if it had one.
func (v Value) Last() (string, bool) {
	if len(v.Args) == 0 {
		return "", false
	}

	last := v.Args[len(v.Args)-1]

	return last.Value, last.Valid
}

// Count returns the number of occurrences. Flags count as one.
func (v Value) Count() int {
	if v.Flag {
		return 1
	}

	return len(v.Args)
}

// canonical returns the value in its canonical representation:
// true for flags, a list of strings and nils otherwise.
func (v Value) canonical() any {
	if v.Flag {
		return true
	}

	list := make([]any, len(v.Args))
	for i, arg := range v.Args {
		list[i] = arg.any()
	}

	return list
}

// compat returns the value as a bare scalar when it occurred once.
func (v Value) compat() any {
	if v.Flag {
		return true
	}

	if len(v.Args) == 1 {
		return v.Args[0].any()
	}

	return v.canonical()
}

func (a Arg) any() any {
	if !a.Valid {
		return nil
	}

	return a.Value
}
