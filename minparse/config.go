package minparse

import "slices"

// Positional is one declared positional argument. Only the last one may be
// variadic.
type Positional struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Variadic bool   `json:"variadic,omitempty" yaml:"variadic,omitempty" toml:"variadic,omitempty"`
}

// Option describes a flag-driven argument.
type Option struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Kind  Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Short string `json:"short,omitempty" yaml:"short,omitempty" toml:"short,omitempty"` // e.g. "-v"
	Long  string `json:"long,omitempty" yaml:"long,omitempty" toml:"long,omitempty"`    // e.g. "--verbose"
	Help  string `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`    // empty hides the option from help
}

// NewOption builds an Option and checks it in isolation: it must have a valid
// kind and at least one well-formed flag. Cross-option checks (duplicate flags
// and names) happen in Validate.
func NewOption(name string, kind Kind, short, long, help string) (Option, error) {
	opt := Option{Name: name, Kind: kind, Short: short, Long: long, Help: help}
	if err := validateOption(opt); err != nil {
		return Option{}, err
	}
	return opt, nil
}

// Flags returns the non-empty flag strings of the option, short first.
func (o Option) Flags() []string {
	flags := make([]string, 0, 2)
	if o.Short != "" {
		flags = append(flags, o.Short)
	}
	if o.Long != "" {
		flags = append(flags, o.Long)
	}
	return flags
}

// Config is the declarative description the parser and help generator work from.
// It is owned by the caller and only read during Parse and Render.
type Config struct {
	Program     string       `json:"program,omitempty" yaml:"program,omitempty" toml:"program,omitempty"`
	Preamble    string       `json:"preamble,omitempty" yaml:"preamble,omitempty" toml:"preamble,omitempty"`
	Postamble   string       `json:"postamble,omitempty" yaml:"postamble,omitempty" toml:"postamble,omitempty"`
	Positionals []Positional `json:"positionals,omitempty" yaml:"positionals,omitempty" toml:"positionals,omitempty"`
	Options     []Option     `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// NewConfig creates an empty configuration for the named program
func NewConfig(program string) *Config {
	return &Config{Program: program}
}

// Positional appends a fixed positional argument
func (c *Config) Positional(name string) *Config {
	c.Positionals = append(c.Positionals, Positional{Name: name})
	return c
}

// Variadic appends a positional argument that absorbs all remaining values.
// It must be the last positional.
func (c *Config) Variadic(name string) *Config {
	c.Positionals = append(c.Positionals, Positional{Name: name, Variadic: true})
	return c
}

// Bin appends an on/off option
func (c *Config) Bin(name, short, long, help string) *Config {
	return c.Add(Option{Name: name, Kind: KindBin, Short: short, Long: long, Help: help})
}

// Int appends an integer option
func (c *Config) Int(name, short, long, help string) *Config {
	return c.Add(Option{Name: name, Kind: KindInt, Short: short, Long: long, Help: help})
}

// Str appends a string option
func (c *Config) Str(name, short, long, help string) *Config {
	return c.Add(Option{Name: name, Kind: KindStr, Short: short, Long: long, Help: help})
}

// Add appends a prebuilt option
func (c *Config) Add(opt Option) *Config {
	c.Options = append(c.Options, opt)
	return c
}

// Describe sets the text shown before and after the options table in help output.
func (c *Config) Describe(preamble, postamble string) *Config {
	c.Preamble = preamble
	c.Postamble = postamble
	return c
}

// Option returns the option with the given name
func (c *Config) Option(name string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// variadic returns the variadic positional, if the configuration declares one
func (c *Config) variadic() (Positional, bool) {
	if n := len(c.Positionals); n > 0 && c.Positionals[n-1].Variadic {
		return c.Positionals[n-1], true
	}
	return Positional{}, false
}

// flagIndex maps every registered flag string to its option.
// Only meaningful on a validated configuration.
type flagIndex map[string]*Option

func (c *Config) index() flagIndex {
	idx := make(flagIndex, 2*len(c.Options))
	for i := range c.Options {
		opt := &c.Options[i]
		for _, f := range opt.Flags() {
			idx[f] = opt
		}
	}
	return idx
}

// names returns all flag strings, sorted (used for suggestions)
func (idx flagIndex) names() []string {
	out := make([]string, 0, len(idx))
	for f := range idx {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
