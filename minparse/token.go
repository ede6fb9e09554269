package minparse

import (
	"strings"

	"github.com/dzonerzy/go-minparse/internal/fuzzy"
)

// TokenType classifies a lexical unit produced by the Tokenizer
type TokenType int

const (
	// TokenPositional is a bare value
	TokenPositional TokenType = iota
	// TokenFlagValue is a value-taking flag together with its value
	TokenFlagValue
	// TokenFlagAlone is a binary flag
	TokenFlagAlone
	// TokenStacked is a bundle of binary short flags, e.g. -vh
	TokenStacked
	// TokenSeparator is the standalone "--"
	TokenSeparator
)

// String returns a readable token type name
func (t TokenType) String() string {
	switch t {
	case TokenPositional:
		return "positional"
	case TokenFlagValue:
		return "flag-value"
	case TokenFlagAlone:
		return "flag"
	case TokenStacked:
		return "stacked"
	case TokenSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Token is one classified unit of the command line
type Token struct {
	Type  TokenType
	Raw   string   // Raw argument the token starts at
	Flag  string   // Flag text for TokenFlagValue and TokenFlagAlone
	Value string   // Positional value or flag value
	Stack []string // Expanded short flags for TokenStacked, e.g. ["-v", "-h"]
}

// Tokenizer lazily classifies raw arguments. It is consumed once, in order:
//
//	tz := NewTokenizer(args, cfg)
//	for tz.Next() {
//		tok := tz.Token()
//	}
//	if err := tz.Err(); err != nil { ... }
type Tokenizer struct {
	args           []string
	index          flagIndex
	maxDistance    int
	position       int
	positionalOnly bool

	tok Token
	err error
}

// NewTokenizer creates a tokenizer over args using the flags registered in
// cfg. The configuration is assumed to be valid.
func NewTokenizer(args []string, cfg *Config) *Tokenizer {
	return newTokenizer(args, cfg.index(), defaultMaxDistance)
}

func newTokenizer(args []string, index flagIndex, maxDistance int) *Tokenizer {
	return &Tokenizer{args: args, index: index, maxDistance: maxDistance}
}

// Next advances to the next token. It returns false at the end of input or
// on the first error, which is then available from Err.
func (t *Tokenizer) Next() bool {
	if t.err != nil || t.position >= len(t.args) {
		return false
	}
	arg := t.args[t.position]
	t.position++

	if t.positionalOnly {
		t.tok = Token{Type: TokenPositional, Raw: arg, Value: arg}
		return true
	}

	tok, err := t.classify(arg)
	if err != nil {
		t.err = err
		t.tok = Token{}
		return false
	}
	t.tok = tok
	return true
}

// Token returns the token produced by the last successful Next
func (t *Tokenizer) Token() Token {
	return t.tok
}

// Err returns the first error encountered, if any
func (t *Tokenizer) Err() error {
	return t.err
}

// classify handles a single argument in scanning mode
//
//nolint:gocognit // One switch over argument shapes reads better than several helpers.
func (t *Tokenizer) classify(arg string) (Token, error) {
	switch {
	case arg == "--":
		// Everything after "--" is positional, including further "--"
		t.positionalOnly = true
		return Token{Type: TokenSeparator, Raw: arg}, nil

	case arg == "=":
		return Token{}, &UserError{
			Type:    ErrorTypeStrayEquals,
			Message: "bad formatting: unexpected floating '=' sign (write --flag=value without spaces)",
			Arg:     arg,
		}

	case len(arg) < 2 || arg[0] != '-':
		// Includes "" and the lone "-" conventionally meaning stdin
		return Token{Type: TokenPositional, Raw: arg, Value: arg}, nil
	}

	// Exact flag match wins over "=" splitting and stacking
	if opt := t.index[arg]; opt != nil {
		if !opt.Kind.TakesValue() {
			return Token{Type: TokenFlagAlone, Raw: arg, Flag: arg}, nil
		}
		if t.position >= len(t.args) {
			return Token{}, &UserError{
				Type:    ErrorTypeMissingValue,
				Message: "bad formatting: missing value for option '" + arg + "'",
				Flag:    arg,
				Arg:     arg,
			}
		}
		value := t.args[t.position]
		if value == "=" {
			return Token{}, &UserError{
				Type:    ErrorTypeStrayEquals,
				Message: "bad formatting: '=' must be attached to the flag (write " + arg + "=value)",
				Flag:    arg,
				Arg:     value,
			}
		}
		t.position++
		return Token{Type: TokenFlagValue, Raw: arg, Flag: arg, Value: value}, nil
	}

	if eq := strings.IndexByte(arg, '='); eq > 0 {
		name, value := arg[:eq], arg[eq+1:]
		opt := t.index[name]
		if opt == nil {
			return Token{}, t.unknownFlag(name, arg)
		}
		if !opt.Kind.TakesValue() {
			return Token{}, &UserError{
				Type:    ErrorTypeUnexpectedValue,
				Message: "bad formatting: option '" + name + "' is a binary flag and takes no value",
				Flag:    name,
				Arg:     arg,
			}
		}
		return Token{Type: TokenFlagValue, Raw: arg, Flag: name, Value: value}, nil
	}

	if arg[1] != '-' && len(arg) >= 3 {
		return t.stacked(arg)
	}
	return Token{}, t.unknownFlag(arg, arg)
}

// stacked expands "-abc" into "-a", "-b", "-c". Every character must name a
// binary short flag, otherwise the whole argument is rejected.
func (t *Tokenizer) stacked(arg string) (Token, error) {
	stack := make([]string, 0, len(arg)-1)
	for _, r := range arg[1:] {
		flag := "-" + string(r)
		opt := t.index[flag]
		if opt == nil {
			return Token{}, &UserError{
				Type:    ErrorTypeInvalidStack,
				Message: "invalid flag received: option '" + flag + "' (in '" + arg + "') is not a valid argument",
				Flag:    flag,
				Arg:     arg,
			}
		}
		if opt.Kind.TakesValue() {
			return Token{}, &UserError{
				Type:    ErrorTypeInvalidStack,
				Message: "bad formatting: option '" + flag + "' (in '" + arg + "') takes a value and cannot be stacked",
				Flag:    flag,
				Arg:     arg,
			}
		}
		stack = append(stack, flag)
	}
	return Token{Type: TokenStacked, Raw: arg, Stack: stack}, nil
}

func (t *Tokenizer) unknownFlag(flag, arg string) *UserError {
	return &UserError{
		Type:       ErrorTypeUnknownFlag,
		Message:    "invalid flag received: option '" + flag + "' is not a valid argument",
		Flag:       flag,
		Arg:        arg,
		Suggestion: fuzzy.FindBestFlag(flag, t.index.names(), t.maxDistance),
	}
}
