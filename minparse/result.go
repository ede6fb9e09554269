package minparse

import (
	"maps"
	"slices"
)

// Result holds the outcome of one Parse call. It is owned by the caller and
// never modified after Parse returns; accessors hand out copies.
type Result struct {
	args       []string            // Raw positional values in command-line order
	argStrings map[string]string   // Fixed positionals
	argSlices  map[string][]string // Variadic positional
	options    map[string]any      // bool, int or string per option
	given      map[string]bool     // Options that appeared on the command line
	usage      string
	help       string
}

// newResult creates a result pre-filled with every default: "" for fixed
// positionals, an empty slice for the variadic one and Kind.Default() for options.
func newResult(cfg *Config, usage, help string) *Result {
	r := &Result{
		argStrings: make(map[string]string, len(cfg.Positionals)),
		argSlices:  make(map[string][]string, 1),
		options:    make(map[string]any, len(cfg.Options)),
		given:      make(map[string]bool),
		usage:      usage,
		help:       help,
	}
	for _, pos := range cfg.Positionals {
		if pos.Variadic {
			r.argSlices[pos.Name] = []string{}
		} else {
			r.argStrings[pos.Name] = ""
		}
	}
	for _, opt := range cfg.Options {
		r.options[opt.Name] = opt.Kind.Default()
	}
	return r
}

// setOption overwrites the option value; the last occurrence wins
func (r *Result) setOption(name string, value any) {
	r.options[name] = value
	r.given[name] = true
}

// GetArg returns the value of a fixed positional ("" if absent or unknown)
func (r *Result) GetArg(name string) string {
	return r.argStrings[name]
}

// GetRest returns the values absorbed by the variadic positional
func (r *Result) GetRest(name string) []string {
	return slices.Clone(r.argSlices[name])
}

// Args returns every positional value in command-line order
func (r *Result) Args() []string {
	return slices.Clone(r.args)
}

// GetBool returns the value of a BIN option
func (r *Result) GetBool(name string) bool {
	v, _ := r.options[name].(bool)
	return v
}

// GetInt returns the value of an INT option
func (r *Result) GetInt(name string) int {
	v, _ := r.options[name].(int)
	return v
}

// GetString returns the value of a STR option
func (r *Result) GetString(name string) string {
	v, _ := r.options[name].(string)
	return v
}

// Value returns the value of any option and whether the option is declared
func (r *Result) Value(name string) (any, bool) {
	v, ok := r.options[name]
	return v, ok
}

// Has reports whether the option was given on the command line (as opposed
// to holding its default)
func (r *Result) Has(name string) bool {
	return r.given[name]
}

// Positionals returns positional name -> value, where the value is a string
// for fixed positionals and a []string for the variadic one.
func (r *Result) Positionals() map[string]any {
	out := make(map[string]any, len(r.argStrings)+len(r.argSlices))
	for k, v := range r.argStrings {
		out[k] = v
	}
	for k, v := range r.argSlices {
		out[k] = slices.Clone(v)
	}
	return out
}

// Options returns option name -> bool, int or string
func (r *Result) Options() map[string]any {
	return maps.Clone(r.options)
}

// Usage returns the generated usage text
func (r *Result) Usage() string {
	return r.usage
}

// Help returns the generated help text
func (r *Result) Help() string {
	return r.help
}
