package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"gwc/internal/report"
	"gwc/internal/source"
)

// Options is the parsed and normalized command line. It is built once by
// Parse and not modified afterwards.
type Options struct {
	Inputs  []source.Selector
	Display report.Display

	JSON        bool
	Interactive bool
	Verbose     bool
	Version     bool
	Update      bool
}

// Parse reads args (without the program name). Usage and parse errors are
// written to stderr; -h/--help returns pflag.ErrHelp.
func Parse(name string, args []string, stderr io.Writer) (Options, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] [FILE...]\n\n", name)
		fmt.Fprintf(stderr, "%s counts lines, words and characters in each FILE.\n", name)
		fmt.Fprintf(stderr, "With no FILE, or when FILE is -, standard input is read.\n")
		fmt.Fprintf(stderr, "A total line follows when more than one FILE is given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  %s notes.txt          # Lines, words and characters\n", name)
		fmt.Fprintf(stderr, "  %s -l *.go            # Line counts with a total\n", name)
		fmt.Fprintf(stderr, "  cat a b | %s -w       # Words on standard input\n", name)
		fmt.Fprintf(stderr, "  %s --json a.txt b.txt # Results as JSON\n", name)
	}

	var opts Options
	fs.BoolVarP(&opts.Display.Lines, "lines", "l", false, "Count lines")
	fs.BoolVarP(&opts.Display.Words, "words", "w", false, "Count words")
	fs.BoolVarP(&opts.Display.Chars, "chars", "c", false, "Count characters")
	fs.BoolVarP(&opts.JSON, "json", "j", false, "Output results as JSON")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", false, "Browse results in an interactive table")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug information to stderr")
	fs.BoolVarP(&opts.Version, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.Update, "update", "u", false, "Check for the latest version")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	// No selection at all means show everything.
	if opts.Display.None() {
		opts.Display = report.All()
	}

	for _, arg := range fs.Args() {
		opts.Inputs = append(opts.Inputs, source.Selector(arg))
	}
	if len(opts.Inputs) == 0 {
		opts.Inputs = []source.Selector{source.Stdin}
	}

	return opts, nil
}
