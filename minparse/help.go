package minparse

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

const (
	usagePrefix = "Usage: "

	// Descriptions never wrap narrower than this, however wide the flag columns are
	minDescriptionWidth = 20
)

// paragraphBreak matches a line break followed by one or more further line
// breaks, possibly with blanks in between (CR, LF and CRLF all count).
var paragraphBreak = regexp.MustCompile(`(?:\r\n?|\n)(?:[ \t\f\v]*(?:\r\n?|\n))+`)

// Render generates the usage and help text for cfg, wrapped to wrapWidth
// columns (DefaultWrapWidth if wrapWidth <= 0). It is a pure function of its
// arguments; an invalid configuration yields a *ConfigError.
func Render(cfg *Config, wrapWidth int) (usage, help string, err error) {
	if err := Validate(cfg); err != nil {
		return "", "", err
	}
	usage, help = render(cfg, wrapWidth)
	return usage, help, nil
}

// render assumes cfg is valid
func render(cfg *Config, width int) (usage, help string) {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	usage = renderUsage(cfg, width)

	var b strings.Builder
	b.WriteString(usage)
	if pre := Reflow(cfg.Preamble, width); pre != "" {
		b.WriteString("\n\n")
		b.WriteString(pre)
	}
	if table := renderOptions(cfg, width); table != "" {
		b.WriteString("\n\nOptions:\n")
		b.WriteString(table)
	}
	if post := Reflow(cfg.Postamble, width); post != "" {
		b.WriteString("\n\n")
		b.WriteString(post)
	}
	return usage, b.String()
}

// Reflow collapses every whitespace run to a single space and wraps the text
// to width columns. Paragraphs separated by a blank line stay separated.
func Reflow(text string, width int) string {
	if width < 1 {
		width = 1
	}
	paragraphs := paragraphBreak.Split(text, -1)
	out := make([]string, 0, len(paragraphs))
	for _, para := range paragraphs {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		out = append(out, wordwrap.WrapString(strings.Join(words, " "), uint(width)))
	}
	return strings.Join(out, "\n\n")
}

func programName(cfg *Config) string {
	if cfg.Program != "" {
		return cfg.Program
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return "program"
}

// renderUsage lists the program, an [options ...] marker when the help table
// has entries, the positionals, then every option left out of the help table.
// Help-less binary options with one-letter short flags are clustered as [-abc].
func renderUsage(cfg *Config, width int) string {
	var tokens []string

	for _, opt := range cfg.Options {
		if hasHelp(opt) {
			tokens = append(tokens, "[options ...]")
			break
		}
	}

	for _, pos := range cfg.Positionals {
		if pos.Variadic {
			tokens = append(tokens, "["+pos.Name+" ...]")
		} else {
			tokens = append(tokens, "["+pos.Name+"]")
		}
	}

	var cluster strings.Builder
	var rest []string
	for _, opt := range cfg.Options {
		if hasHelp(opt) {
			continue
		}
		if clusterable(opt) {
			cluster.WriteString(opt.Short[1:])
			continue
		}
		rest = append(rest, "["+usageFlag(opt)+"]")
	}
	if cluster.Len() > 0 {
		tokens = append(tokens, "[-"+cluster.String()+"]")
	}
	tokens = append(tokens, rest...)

	indent := strings.Repeat(" ", len(usagePrefix))
	lines := []string{usagePrefix + programName(cfg)}
	for _, tok := range tokens {
		cur := lines[len(lines)-1]
		if textWidth(cur)+1+textWidth(tok) > width {
			lines = append(lines, indent+tok)
			continue
		}
		lines[len(lines)-1] = cur + " " + tok
	}
	return strings.Join(lines, "\n")
}

func hasHelp(opt Option) bool {
	return strings.TrimSpace(opt.Help) != ""
}

func clusterable(opt Option) bool {
	return opt.Kind == KindBin && utf8.RuneCountInString(opt.Short) == 2
}

// usageFlag renders an option for the usage line, e.g. "-c|--count <int>"
func usageFlag(opt Option) string {
	var flag string
	switch {
	case opt.Short != "" && opt.Long != "":
		flag = opt.Short + "|" + opt.Long
	case opt.Long != "":
		flag = opt.Long
	default:
		flag = opt.Short
	}
	return flag + opt.Kind.Tail()
}

// longCell is the second column of the options table: the long flag with its
// value placeholder, or just the placeholder for short-only options.
func longCell(opt Option) string {
	if opt.Long != "" {
		return opt.Long + opt.Kind.Tail()
	}
	return strings.TrimSpace(opt.Kind.Tail())
}

// renderOptions builds the options table:
//
//	-h --help               Print the help message and quit
//	   --file <str>         Obtain patterns from FILE, one per line
//
// Descriptions are reflowed to the remaining width with a hanging indent.
func renderOptions(cfg *Config, width int) string {
	var opts []Option
	shortW, longW := 0, 0
	for _, opt := range cfg.Options {
		if !hasHelp(opt) {
			continue
		}
		opts = append(opts, opt)
		shortW = max(shortW, textWidth(opt.Short))
		longW = max(longW, textWidth(longCell(opt)))
	}
	if len(opts) == 0 {
		return ""
	}

	descCol := 2 + shortW + longW + 3
	if shortW > 0 && longW > 0 {
		descCol++
	}
	descWidth := max(width-descCol, minDescriptionWidth)
	hanging := strings.Repeat(" ", descCol)

	rows := make([]string, 0, len(opts))
	for _, opt := range opts {
		var b strings.Builder
		b.WriteString("  ")
		if shortW > 0 {
			b.WriteString(pad(opt.Short, shortW))
			if longW > 0 {
				b.WriteByte(' ')
			}
		}
		if longW > 0 {
			b.WriteString(pad(longCell(opt), longW))
		}
		b.WriteString("   ")

		desc := strings.Split(Reflow(opt.Help, descWidth), "\n")
		for i, line := range desc {
			if i > 0 {
				b.WriteByte('\n')
				if line != "" {
					b.WriteString(hanging)
				}
			}
			b.WriteString(line)
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func pad(s string, width int) string {
	if n := width - textWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}
