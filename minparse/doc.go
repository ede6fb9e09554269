// Package minparse parses a flat command line against a declarative
// configuration and generates matching usage and help text.
//
//	cfg := minparse.NewConfig("grep").
//		Positional("pattern").
//		Variadic("files").
//		Bin("help", "-h", "--help", "Print the help message and quit").
//		Int("max", "-m", "--max-count", "Stop after NUM selected lines")
//
//	result, err := minparse.Parse(cfg, os.Args[1:])
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(minparse.ExitCode(err))
//	}
//	if result.GetBool("help") {
//		fmt.Println(result.Help())
//	}
//
// The parser never prints and never exits; both are left to the caller.
package minparse
