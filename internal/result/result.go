package result

import (
	"bytes"
	"encoding/json"
)

const (
	// PositionalKey is the key under which arguments not
	// associated with any option are stored.
	PositionalKey = ""

	// RestKey is the key under which arguments following
	// the end-of-options separator are stored.
	RestKey = "--"
)

// Result maps option keys to their values, in the order in which
// keys first appeared, along with positional and trailing arguments.
type Result struct {
	keys       []string
	values     map[string]*Value
	positional []string
	rest       []string
	separated  bool
}

// New returns an empty result, with an empty positional bucket.
func New() *Result {
	return &Result{
		values:     map[string]*Value{},
		positional: []string{},
	}
}

// Put records an occurrence of a key. Flags ignore it and stay set.
func (r *Result) Put(key string, arg Arg) {
	val := r.value(key)
	if val.Flag {
		return
	}

	val.Args = append(val.Args, arg)
}

// SetFlag marks the key as a flag. Any previous occurrence is dropped.
func (r *Result) SetFlag(key string) {
	val := r.value(key)
	val.Flag = true
	val.Args = nil
}

// AddPositional appends an argument not associated with any option.
func (r *Result) AddPositional(arg string) {
	r.positional = append(r.positional, arg)
}

// SetRest stores the arguments found after the separator.
func (r *Result) SetRest(args []string) {
	r.rest = append([]string{}, args...)
	r.separated = true
}

func (r *Result) value(key string) *Value {
	val, found := r.values[key]
	if !found {
		val = &Value{}
		r.values[key] = val
		r.keys = append(r.keys, key)
	}

	return val
}

// Keys returns all option keys, in order of first appearance.
// Positional and trailing buckets are not included.
func (r *Result) Keys() []string {
	return append([]string{}, r.keys...)
}

// Len returns the number of option keys.
func (r *Result) Len() int {
	return len(r.keys)
}

// Lookup returns the value of an option key.
func (r *Result) Lookup(key string) (Value, bool) {
	val, found := r.values[key]
	if !found {
		return Value{}, false
	}

	return Value{Flag: val.Flag, Args: append([]Arg(nil), val.Args...)}, true
}

// Has returns true if the option key occurred at least once.
func (r *Result) Has(key string) bool {
	_, found := r.values[key]

	return found
}

// IsFlag returns true if the key is a flag that was set.
func (r *Result) IsFlag(key string) bool {
	val, found := r.values[key]

	return found && val.Flag
}

// Strings returns all values collected for a non-flag key.
func (r *Result) Strings(key string) []string {
	val, found := r.values[key]
	if !found {
		return nil
	}

	return val.Strings()
}

// Positional returns the arguments not associated with any option.
// It is never nil.
func (r *Result) Positional() []string {
	return append([]string{}, r.positional...)
}

// Rest returns the arguments found after the separator, and
// true if a separator was found.
func (r *Result) Rest() ([]string, bool) {
	if !r.separated {
		return nil, false
	}

	return append([]string{}, r.rest...), true
}

// Map returns the canonical map representation of the result: flags
// map to true, other keys to a list of strings and nils. Positional
// arguments are under "", and trailing ones under "--" if any.
func (r *Result) Map() map[string]any {
	return r.toMap(Value.canonical)
}

// Compat returns the result in its historical shape, in which a key
// given once maps to its bare value (a string, or nil if it had none)
// instead of a list.
func (r *Result) Compat() map[string]any {
	return r.toMap(Value.compat)
}

func (r *Result) toMap(convert func(Value) any) map[string]any {
	out := make(map[string]any, len(r.keys)+2)

	for _, key := range r.keys {
		if key == PositionalKey || key == RestKey {
			continue
		}

		out[key] = convert(*r.values[key])
	}

	out[PositionalKey] = r.Positional()

	if rest, found := r.Rest(); found {
		out[RestKey] = rest
	}

	return out
}

// MarshalJSON encodes the result in its canonical shape, as an object
// whose keys are in order: positionals, options, trailing arguments.
func (r *Result) MarshalJSON() ([]byte, error) {
	return r.marshal(Value.canonical)
}

// MarshalCompat is like MarshalJSON, but uses the historical shape.
func (r *Result) MarshalCompat() ([]byte, error) {
	return r.marshal(Value.compat)
}

func (r *Result) marshal(convert func(Value) any) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	write := func(key string, val any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}

		keyData, err := json.Marshal(key)
		if err != nil {
			return err
		}

		valData, err := json.Marshal(val)
		if err != nil {
			return err
		}

		buf.Write(keyData)
		buf.WriteByte(':')
		buf.Write(valData)

		return nil
	}

	if err := write(PositionalKey, r.Positional()); err != nil {
		return nil, err
	}

	for _, key := range r.keys {
		// Reserved buckets win over options of the same name.
		if key == PositionalKey || key == RestKey {
			continue
		}

		if err := write(key, convert(*r.values[key])); err != nil {
			return nil, err
		}
	}

	if rest, found := r.Rest(); found {
		if err := write(RestKey, rest); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
