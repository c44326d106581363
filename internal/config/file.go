package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/reeflective/parseargs/internal/errors"
)

// hclFile represents the top-level structure of a configuration file for decoding.
type hclFile struct {
	KeepShorthands *bool        `hcl:"keep_shorthands,optional"`
	Flags          []string     `hcl:"flags,optional"`
	Options        []*hclOption `hcl:"option,block"`
}

// hclOption declares a single long option, with its shorthand and flag status.
type hclOption struct {
	Name      string  `hcl:"name,label"`
	Shorthand *string `hcl:"shorthand,optional"`
	Flag      *bool   `hcl:"flag,optional"`
}

// LoadFile parses an HCL configuration file and returns the options it declares.
func LoadFile(path string) (OptFunc, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", errors.ErrConfigFile, path, diags)
	}

	return decode(file, path)
}

// ParseHCL parses HCL configuration contents and returns the options it declares.
// The filename is only used in error messages.
func ParseHCL(src []byte, filename string) (OptFunc, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", errors.ErrConfigFile, filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (OptFunc, error) {
	var parsed hclFile

	diags := gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", errors.ErrConfigFile, filename, diags)
	}

	optFuncs := []OptFunc{Flags(parsed.Flags...)}

	if parsed.KeepShorthands != nil {
		optFuncs = append(optFuncs, KeepShorthands(*parsed.KeepShorthands))
	}

	for _, option := range parsed.Options {
		if option.Flag != nil && *option.Flag {
			optFuncs = append(optFuncs, Flags(option.Name))
		}

		if option.Shorthand == nil {
			continue
		}

		short, size := utf8.DecodeRuneInString(*option.Shorthand)
		if size == 0 || size != len(*option.Shorthand) || short == utf8.RuneError {
			return nil, fmt.Errorf("%w: %s: option %q: shorthand %q is not a single character",
				errors.ErrConfigFile, filename, option.Name, *option.Shorthand)
		}

		optFuncs = append(optFuncs, Shorthand(short, option.Name))
	}

	return func(opt *Opts) { opt.Apply(optFuncs...) }, nil
}
