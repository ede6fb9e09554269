//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-minparse/minparse"
)

// Category: parser

func buildGrepConfig() *minparse.Config {
	return minparse.NewConfig("grep").
		Positional("pattern").
		Variadic("files").
		Bin("help", "-h", "--help", "Print the help message and quit").
		Bin("ignore", "-i", "--ignore-case", "Ignore case distinctions in patterns and data").
		Bin("count", "-c", "--count", "Print only a count of selected lines per FILE").
		Bin("quiet", "-q", "", "").
		Bin("verbose", "-v", "", "").
		Int("max", "-m", "--max-count", "Stop after NUM selected lines").
		Str("file", "-f", "--file", "Obtain patterns from FILE, one per line")
}

func BenchmarkParserSimple(b *testing.B) {
	parser := minparse.NewParser(buildGrepConfig())
	args := []string{"--max-count", "8080", "-v", "pattern"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil || result == nil {
			b.Fatal(err)
		}
		if !result.GetBool("verbose") {
			b.Fatalf("verbose not parsed")
		}
	}
}

func BenchmarkParserLongFlags(b *testing.B) {
	parser := minparse.NewParser(buildGrepConfig())
	args := []string{"--max-count=10", "--ignore-case", "--file=/path/to/patterns.txt"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil || result == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParserShortFlags(b *testing.B) {
	parser := minparse.NewParser(buildGrepConfig())
	args := []string{"-icqv", "-m", "3", "foo"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil || result == nil {
			b.Fatal(err)
		}
		if !result.GetBool("quiet") {
			b.Fatalf("stacked flags not parsed")
		}
	}
}

func BenchmarkParserVariadic(b *testing.B) {
	parser := minparse.NewParser(buildGrepConfig())
	args := []string{"foo", "a.go", "b.go", "c.go", "d.go", "e.go", "--", "-f.go", "g.go"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil || result == nil {
			b.Fatal(err)
		}
		if len(result.GetRest("files")) != 7 {
			b.Fatalf("variadic mismatch")
		}
	}
}

func BenchmarkParserErrorSuggestion(b *testing.B) {
	parser := minparse.NewParser(buildGrepConfig())
	args := []string{"--ignore-cas", "foo"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(args); err == nil {
			b.Fatal("expected error")
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	cfg := buildGrepConfig()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := minparse.Validate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	cfg := buildGrepConfig().Describe(
		"Search for PATTERN in each FILE. When FILE is '-', read standard input.",
		"Exit status is 0 if any line is selected, 1 otherwise.",
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := minparse.Render(cfg, 80); err != nil {
			b.Fatal(err)
		}
	}
}
