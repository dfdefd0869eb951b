// Command extract prints the keying-time matrix of a keying-time record page
// as lines of the form
//
//	ab  145
//
// suitable as input for command keyingtime.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/npillmayer/schuko/tracing"

	"github.com/esrille/keyboard-layout-comparison/matrix"
)

const usage = `extract prints the keying-time matrix of an HTML page.

Usage:
	extract [--verbose] [<path>]
	extract -h | --help

Options:
	--verbose  Trace extraction details.
	-h --help  Show this screen.

The page is read from <path>, keytime.html by default.`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	arguments, err := docopt.ParseArgs(usage, args, "")
	if err != nil {
		return err
	}
	path := "keytime.html"
	if p, ok := arguments["<path>"].(string); ok {
		path = p
	}
	if verbose, _ := arguments.Bool("--verbose"); verbose {
		tracing.Select("kblc.matrix").SetTraceLevel(tracing.LevelDebug)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := matrix.Extract(stdout, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
