package minparse

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/dzonerzy/go-minparse/internal/pool"
)

const (
	// DefaultWrapWidth is the column help text is wrapped to unless WithWrapWidth says otherwise.
	DefaultWrapWidth = 80

	defaultMaxDistance = 2
)

// ParseState represents the current state of the parser state machine
type ParseState int

const (
	// StateScanning recognizes flags and positionals
	StateScanning ParseState = iota
	// StatePositionalOnly is entered on "--" and never left
	StatePositionalOnly
)

// String returns the state name used in debug logs
func (s ParseState) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StatePositionalOnly:
		return "positional-only"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Parser is a caller-owned parsing context. It holds the configuration, the
// cached validation outcome and the latest successful result. A Parser is not
// safe for concurrent use; create one per goroutine.
type Parser struct {
	cfg         *Config
	wrapWidth   int
	maxDistance int
	logger      *log.Logger

	// Validation cache, keyed by Fingerprint(cfg)
	validated   bool
	fingerprint uint64
	index       flagIndex

	state ParseState
	last  *Result
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithWrapWidth sets the column help text is wrapped to (default 80)
func WithWrapWidth(width int) ParserOption {
	return func(p *Parser) {
		if width > 0 {
			p.wrapWidth = width
		}
	}
}

// WithLogger enables debug tracing of tokens and state transitions.
// A nil logger (the default) keeps the parser silent.
func WithLogger(logger *log.Logger) ParserOption {
	return func(p *Parser) { p.logger = logger }
}

// WithSuggestions sets the maximum edit distance for "did you mean"
// suggestions on unknown flags. Zero disables suggestions.
func WithSuggestions(maxDistance int) ParserOption {
	return func(p *Parser) { p.maxDistance = maxDistance }
}

// NewParser creates a parsing context for cfg. The configuration is validated
// lazily by Parse and Render, and re-validated only when it changes.
func NewParser(cfg *Config, opts ...ParserOption) *Parser {
	p := &Parser{
		cfg:         cfg,
		wrapWidth:   DefaultWrapWidth,
		maxDistance: defaultMaxDistance,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the configuration the parser reads from
func (p *Parser) Config() *Config {
	return p.cfg
}

// Result returns the result of the latest successful Parse, or nil
func (p *Parser) Result() *Result {
	return p.last
}

// State returns the state the parser finished the latest Parse in
func (p *Parser) State() ParseState {
	return p.state
}

// Render generates usage and help text for the parser's configuration
func (p *Parser) Render() (usage, help string, err error) {
	if err := p.prepare(); err != nil {
		return "", "", err
	}
	usage, help = render(p.cfg, p.wrapWidth)
	return usage, help, nil
}

// Parse classifies args (without the program name) against the configuration
// and returns the typed result. A *ConfigError is returned before any argument
// is looked at; malformed input yields a *UserError.
func (p *Parser) Parse(args []string) (*Result, error) {
	if err := p.prepare(); err != nil {
		return nil, err
	}

	usage, help := render(p.cfg, p.wrapWidth)
	result := newResult(p.cfg, usage, help)

	buf := pool.GetArgs()
	defer pool.PutArgs(buf)

	p.state = StateScanning
	tz := newTokenizer(args, p.index, p.maxDistance)
	for tz.Next() {
		tok := tz.Token()
		p.debug("token", "type", tok.Type, "raw", tok.Raw)

		switch tok.Type {
		case TokenSeparator:
			p.state = StatePositionalOnly
			p.debug("state", "state", p.state)

		case TokenPositional:
			*buf = append(*buf, tok.Value)

		case TokenFlagAlone:
			opt := p.index[tok.Flag]
			result.setOption(opt.Name, true)

		case TokenFlagValue:
			if err := p.storeValue(result, tok); err != nil {
				return nil, err
			}

		case TokenStacked:
			for _, flag := range tok.Stack {
				result.setOption(p.index[flag].Name, true)
			}
		}
	}
	if err := tz.Err(); err != nil {
		p.debug("parse failed", "err", err)
		return nil, err
	}

	if err := p.distribute(result, *buf); err != nil {
		return nil, err
	}

	p.last = result
	return result, nil
}

// prepare validates the configuration unless its fingerprint is unchanged
// since the last successful validation.
func (p *Parser) prepare() error {
	fp := Fingerprint(p.cfg)
	if p.validated && fp == p.fingerprint {
		p.debug("validation cached", "fingerprint", fp)
		return nil
	}
	p.validated = false
	if err := Validate(p.cfg); err != nil {
		return err
	}
	p.validated = true
	p.fingerprint = fp
	p.index = p.cfg.index()
	p.debug("validated", "fingerprint", fp, "options", len(p.cfg.Options))
	return nil
}

// storeValue coerces a flag value to the option's kind
func (p *Parser) storeValue(result *Result, tok Token) error {
	opt := p.index[tok.Flag]
	if !opt.Kind.TakesValue() {
		return &UserError{
			Type:    ErrorTypeUnexpectedValue,
			Message: "bad formatting: option '" + tok.Flag + "' is a binary flag and takes no value",
			Flag:    tok.Flag,
			Arg:     tok.Raw,
		}
	}
	value, err := opt.Kind.Coerce(tok.Value)
	if err != nil {
		return &UserError{
			Type:    ErrorTypeInvalidValue,
			Message: "bad formatting: only " + opt.Kind.String() + " values allowed for option '" + tok.Flag + "': " + err.Error(),
			Flag:    tok.Flag,
			Arg:     tok.Value,
		}
	}
	result.setOption(opt.Name, value)
	return nil
}

// distribute assigns buffered positional values to declared names in order.
// Missing values keep their defaults; extra values are an error unless the
// last positional is variadic.
func (p *Parser) distribute(result *Result, values []string) error {
	i := 0
	for _, pos := range p.cfg.Positionals {
		if pos.Variadic {
			rest := make([]string, len(values)-i)
			copy(rest, values[i:])
			result.argSlices[pos.Name] = rest
			i = len(values)
			break
		}
		if i >= len(values) {
			break
		}
		result.argStrings[pos.Name] = values[i]
		i++
	}
	if i < len(values) {
		return &UserError{
			Type:    ErrorTypeTooManyArgs,
			Message: "too many arguments: unexpected positional '" + values[i] + "' received",
			Arg:     values[i],
		}
	}
	result.args = append(make([]string, 0, len(values)), values...)
	return nil
}

func (p *Parser) debug(msg string, keyvals ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, keyvals...)
	}
}

// Parse is a one-shot helper: it builds a Parser for cfg and parses args.
func Parse(cfg *Config, args []string, opts ...ParserOption) (*Result, error) {
	return NewParser(cfg, opts...).Parse(args)
}
