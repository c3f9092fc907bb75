// trebuchet sums the calibration values of newline-delimited text.
//
// Usage:
//
//	trebuchet [-mode words|literal] [-log-level level] < input.txt
//
// Each line's value is its first and last digit read as a two-digit number.
// In words mode (the default) "one" through "nine" count as digits too.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agenthands/trebuchet/pkg/digit"
	"github.com/agenthands/trebuchet/pkg/log"
	"github.com/agenthands/trebuchet/pkg/summer"
)

const (
	exitOK    = 0
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("trebuchet", flag.ContinueOnError)
	cmd.SetOutput(stderr)
	modeName := cmd.String("mode", digit.ModeWords.String(), "Digit recognition: words or literal")
	logLevel := cmd.String("log-level", log.LevelInfo, "Log level: debug, info, warn, error, fatal")

	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if cmd.NArg() > 0 {
		fmt.Fprintf(stderr, "trebuchet: unexpected argument %q; input is read from stdin\n", cmd.Arg(0))
		return exitUsage
	}

	mode, err := digit.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "trebuchet: %v\n", err)
		return exitUsage
	}
	if !log.ValidLevel(*logLevel) {
		fmt.Fprintf(stderr, "trebuchet: unknown log level %q\n", *logLevel)
		return exitUsage
	}
	log.SetLevel(*logLevel)

	s := summer.Get(mode)
	defer summer.Put(mode, s)

	total, err := s.Sum(stdin)
	if err != nil {
		// A read fault ends input like EOF; report it and keep the total.
		log.Warnf("input ended early: %v", err)
	}

	st := s.Stats()
	log.Debugf("mode=%s lines=%d matched=%d digits=%d", mode, st.Lines, st.Matched, st.Digits)

	fmt.Fprintf(stdout, "Result: %d\n", total)
	return exitOK
}
