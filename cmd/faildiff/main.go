// Command faildiff compares two text files and prints the difference the way
// a test failure report would: as labeled facts, or as a colorized diff when
// writing to a terminal.
//
// Usage:
//
//	faildiff [-pretty|-facts] [-context N] EXPECTEDFILE ACTUALFILE
//
// Exit status is 1 when the files differ, 0 when they are identical, and 2 on
// usage or I/O errors.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/faildiff/faildiff/diffformat"
	"github.com/faildiff/faildiff/fact"
	"github.com/faildiff/faildiff/internal/termformat"
	"github.com/faildiff/faildiff/textdiff"
)

func main() {
	pretty := flag.Bool("pretty", false, "colorized diff output (default when stdout is a terminal)")
	facts := flag.Bool("facts", false, "plain fact output even when stdout is a terminal")
	contextSize := flag.Int("context", 3, "unchanged lines shown around each change in -pretty output")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: faildiff [-pretty|-facts] [-context N] EXPECTEDFILE ACTUALFILE")
		os.Exit(2)
	}

	expected, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "faildiff: %v\n", err)
		os.Exit(2)
	}
	actual, err := os.ReadFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "faildiff: %v\n", err)
		os.Exit(2)
	}

	if string(expected) == string(actual) {
		return
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	usePretty := *pretty || (isTTY && !*facts)

	if usePretty {
		fmt.Println(renderPretty(string(expected), string(actual), *contextSize, isTTY))
	} else {
		fl, err := diffformat.FormatValues(string(expected), string(actual))
		if err != nil {
			fmt.Fprintf(os.Stderr, "faildiff: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(renderFacts(fl))
	}
	os.Exit(1)
}

// renderPretty returns the colorized diff, fitted to the terminal width when
// one is available.
func renderPretty(expected, actual string, contextSize int, isTTY bool) string {
	rendered := textdiff.Compute(expected, actual).RenderPretty(contextSize)

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	if width <= 0 {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	for i, ln := range lines {
		if termformat.TextWidth(ln) > width {
			lines[i] = termformat.TruncateToWidth(ln, width)
		}
	}
	return strings.Join(lines, "\n")
}

// renderFacts sanitizes fact values so control characters in the compared
// files can't corrupt the terminal, then renders the report.
func renderFacts(fl fact.List) string {
	for i, f := range fl {
		if f.HasValue {
			fl[i].Value = termformat.Sanitize(f.Value, 0)
		}
	}
	return fl.String()
}
