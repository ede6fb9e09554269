package minparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func collect(t *testing.T, args []string, cfg *Config) ([]Token, error) {
	t.Helper()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	tz := NewTokenizer(args, cfg)
	var toks []Token
	for tz.Next() {
		toks = append(toks, tz.Token())
	}
	return toks, tz.Err()
}

func TestTokenizer_Classify(t *testing.T) {
	cfg := grepConfig()

	tests := []struct {
		name string
		args []string
		want []Token
	}{
		{
			name: "positionals",
			args: []string{"Bob", "Smith"},
			want: []Token{
				{Type: TokenPositional, Raw: "Bob", Value: "Bob"},
				{Type: TokenPositional, Raw: "Smith", Value: "Smith"},
			},
		},
		{
			name: "binary flag",
			args: []string{"--help"},
			want: []Token{{Type: TokenFlagAlone, Raw: "--help", Flag: "--help"}},
		},
		{
			name: "value flag consumes next argument",
			args: []string{"--file", "-h"},
			want: []Token{{Type: TokenFlagValue, Raw: "--file", Flag: "--file", Value: "-h"}},
		},
		{
			name: "attached value",
			args: []string{"--file=a=b"},
			want: []Token{{Type: TokenFlagValue, Raw: "--file=a=b", Flag: "--file", Value: "a=b"}},
		},
		{
			name: "attached empty value",
			args: []string{"--max-count="},
			want: []Token{{Type: TokenFlagValue, Raw: "--max-count=", Flag: "--max-count", Value: ""}},
		},
		{
			name: "stacked",
			args: []string{"-vh"},
			want: []Token{{Type: TokenStacked, Raw: "-vh", Stack: []string{"-v", "-h"}}},
		},
		{
			name: "separator",
			args: []string{"--", "-h", "--", "x"},
			want: []Token{
				{Type: TokenSeparator, Raw: "--"},
				{Type: TokenPositional, Raw: "-h", Value: "-h"},
				{Type: TokenPositional, Raw: "--", Value: "--"},
				{Type: TokenPositional, Raw: "x", Value: "x"},
			},
		},
		{
			name: "lone dash and empty string",
			args: []string{"-", ""},
			want: []Token{
				{Type: TokenPositional, Raw: "-", Value: "-"},
				{Type: TokenPositional, Raw: "", Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, tt.args, cfg)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizer_Errors(t *testing.T) {
	cfg := grepConfig().Int("count", "-c", "", "")

	tests := []struct {
		name     string
		args     []string
		wantType ErrorType
		wantFlag string
	}{
		{name: "unknown long flag", args: []string{"--nope"}, wantType: ErrorTypeUnknownFlag, wantFlag: "--nope"},
		{name: "unknown short flag", args: []string{"-x"}, wantType: ErrorTypeUnknownFlag, wantFlag: "-x"},
		{name: "unknown flag with value", args: []string{"--nope=1"}, wantType: ErrorTypeUnknownFlag, wantFlag: "--nope"},
		{name: "binary flag with value", args: []string{"--help=true"}, wantType: ErrorTypeUnexpectedValue, wantFlag: "--help"},
		{name: "stack with unknown", args: []string{"-vx"}, wantType: ErrorTypeInvalidStack, wantFlag: "-x"},
		{name: "stack with value flag", args: []string{"-vc"}, wantType: ErrorTypeInvalidStack, wantFlag: "-c"},
		{name: "missing value", args: []string{"Bob", "--file"}, wantType: ErrorTypeMissingValue, wantFlag: "--file"},
		{name: "stray equals", args: []string{"Bob", "="}, wantType: ErrorTypeStrayEquals},
		{name: "equals as value", args: []string{"--file", "=", "x"}, wantType: ErrorTypeStrayEquals, wantFlag: "--file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.args, cfg)
			var ue *UserError
			if !errors.As(err, &ue) {
				t.Fatalf("Expected *UserError, got %T (%v)", err, err)
			}
			if ue.Type != tt.wantType {
				t.Errorf("Expected %s, got %s (%s)", tt.wantType, ue.Type, ue.Message)
			}
			if ue.Flag != tt.wantFlag {
				t.Errorf("Expected flag %q, got %q", tt.wantFlag, ue.Flag)
			}
		})
	}
}

func TestTokenizer_StopsAfterError(t *testing.T) {
	cfg := grepConfig()
	tz := NewTokenizer([]string{"a", "--bogus", "b"}, cfg)

	if !tz.Next() || tz.Token().Value != "a" {
		t.Fatalf("Expected first token 'a', got %+v", tz.Token())
	}
	if tz.Next() {
		t.Fatal("Expected Next to fail on --bogus")
	}
	if tz.Err() == nil {
		t.Fatal("Expected Err to be set")
	}
	if tz.Next() {
		t.Error("Expected tokenizer to stay stopped after an error")
	}
}

func TestTokenizer_ExactMatchBeatsStacking(t *testing.T) {
	cfg := NewConfig("rm").
		Bin("recursive", "-r", "", "").
		Bin("force", "-f", "", "").
		Bin("rf", "-rf", "", "")

	got, err := collect(t, []string{"-rf", "-fr"}, cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []Token{
		{Type: TokenFlagAlone, Raw: "-rf", Flag: "-rf"},
		{Type: TokenStacked, Raw: "-fr", Stack: []string{"-f", "-r"}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizer_Suggestion(t *testing.T) {
	_, err := collect(t, []string{"--hlep"}, grepConfig())
	var ue *UserError
	if !errors.As(err, &ue) {
		t.Fatalf("Expected *UserError, got %v", err)
	}
	if ue.Suggestion != "--help" {
		t.Errorf("Expected suggestion --help, got %q", ue.Suggestion)
	}
}
