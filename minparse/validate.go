package minparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Validate checks a configuration for internal consistency, failing on the
// first violation with a *ConfigError. Checks run in this order:
//
//  1. positional names are non-empty and pairwise unique
//  2. a variadic positional, if any, is the last one
//  3. option names are non-empty and unique
//  4. every option has a short or a long flag, each well formed
//  5. no flag string is used twice, across options or within one
//  6. every option kind is one of BIN, INT, STR
func Validate(cfg *Config) error {
	if cfg == nil {
		return newConfigError(ErrorTypeEmptyName, "", "configuration is nil")
	}

	seenPositional := make(map[string]struct{}, len(cfg.Positionals))
	for i, pos := range cfg.Positionals {
		if pos.Name == "" {
			return newConfigError(ErrorTypeEmptyName, "",
				"positional "+strconv.Itoa(i)+" has an empty name")
		}
		if _, dup := seenPositional[pos.Name]; dup {
			return newConfigError(ErrorTypeDuplicatePositional, pos.Name,
				"the name of each positional must be unique: '"+pos.Name+"' is used more than once")
		}
		seenPositional[pos.Name] = struct{}{}
	}
	for i, pos := range cfg.Positionals {
		if pos.Variadic && i != len(cfg.Positionals)-1 {
			return newConfigError(ErrorTypeMisplacedVariadic, pos.Name,
				"only the last positional can be variadic: '"+pos.Name+"' is at position "+
					strconv.Itoa(i)+" of "+strconv.Itoa(len(cfg.Positionals)))
		}
	}

	seenOption := make(map[string]struct{}, len(cfg.Options))
	for _, opt := range cfg.Options {
		if opt.Name == "" {
			return newConfigError(ErrorTypeEmptyName, "", "an option has an empty name")
		}
		if _, dup := seenOption[opt.Name]; dup {
			return newConfigError(ErrorTypeDuplicateOption, opt.Name,
				"the name of each option must be unique: '"+opt.Name+"' is used more than once")
		}
		seenOption[opt.Name] = struct{}{}
	}

	for _, opt := range cfg.Options {
		if err := checkFlags(opt); err != nil {
			return err
		}
	}

	owner := make(map[string]string, 2*len(cfg.Options))
	for _, opt := range cfg.Options {
		if opt.Short != "" && opt.Short == opt.Long {
			return newConfigError(ErrorTypeDuplicateFlag, opt.Name,
				"option '"+opt.Name+"' uses '"+opt.Short+"' as both its short and long flag")
		}
		for _, flag := range opt.Flags() {
			if prev, dup := owner[flag]; dup {
				return newConfigError(ErrorTypeDuplicateFlag, opt.Name,
					"the flag of each option must be unique: '"+flag+"' is used by both '"+
						prev+"' and '"+opt.Name+"'")
			}
			owner[flag] = opt.Name
		}
	}

	for _, opt := range cfg.Options {
		if err := checkKind(opt); err != nil {
			return err
		}
	}
	return nil
}

// validateOption runs the per-option subset of Validate
func validateOption(opt Option) error {
	if opt.Name == "" {
		return newConfigError(ErrorTypeEmptyName, "", "an option has an empty name")
	}
	if err := checkFlags(opt); err != nil {
		return err
	}
	if opt.Short != "" && opt.Short == opt.Long {
		return newConfigError(ErrorTypeDuplicateFlag, opt.Name,
			"option '"+opt.Name+"' uses '"+opt.Short+"' as both its short and long flag")
	}
	return checkKind(opt)
}

func checkFlags(opt Option) error {
	if opt.Short == "" && opt.Long == "" {
		return newConfigError(ErrorTypeMissingFlag, opt.Name,
			"either the short or the long flag must be set: both are empty for option '"+opt.Name+"'")
	}
	if opt.Short != "" && !isShortFlag(opt.Short) {
		return newConfigError(ErrorTypeMalformedFlag, opt.Name,
			"short flags must start with a single '-' (e.g. -h): '"+opt.Short+
				"' is not valid for option '"+opt.Name+"'")
	}
	if opt.Long != "" && !isLongFlag(opt.Long) {
		return newConfigError(ErrorTypeMalformedFlag, opt.Name,
			"long flags must start with '--' (e.g. --help): '"+opt.Long+
				"' is not valid for option '"+opt.Name+"'")
	}
	return nil
}

func checkKind(opt Option) error {
	if !opt.Kind.Valid() {
		return newConfigError(ErrorTypeInvalidKind, opt.Name,
			"the kind of option '"+opt.Name+"' must be BIN, INT or STR, got "+opt.Kind.String())
	}
	return nil
}

// isShortFlag matches "-x", "-xy", ... but not "--x" or "-"
func isShortFlag(s string) bool {
	return len(s) >= 2 && s[0] == '-' && s[1] != '-' && flagBodyOK(s[1:])
}

// isLongFlag matches "--x", "--xyz", ...
func isLongFlag(s string) bool {
	return len(s) >= 3 && strings.HasPrefix(s, "--") && s[2] != '-' && flagBodyOK(s[2:])
}

func flagBodyOK(body string) bool {
	for _, r := range body {
		if r == '=' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Fingerprint returns a structural hash of the configuration. Two configs with
// the same positionals, options and help text hash equal; the parser uses it to
// skip re-validating an unchanged configuration.
func Fingerprint(cfg *Config) uint64 {
	if cfg == nil {
		return 0
	}
	d := xxhash.New()
	field := func(s string) {
		_, _ = d.WriteString(strconv.Itoa(len(s)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(s)
	}
	field(cfg.Program)
	field(cfg.Preamble)
	field(cfg.Postamble)
	field(strconv.Itoa(len(cfg.Positionals)))
	for _, pos := range cfg.Positionals {
		field(pos.Name)
		field(strconv.FormatBool(pos.Variadic))
	}
	field(strconv.Itoa(len(cfg.Options)))
	for _, opt := range cfg.Options {
		field(opt.Name)
		field(strconv.Itoa(int(opt.Kind)))
		field(opt.Short)
		field(opt.Long)
		field(opt.Help)
	}
	return d.Sum64()
}
