// Command keyingtime estimates the minimum time for typing the given text on
// a QWERTY keyboard.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/npillmayer/schuko/tracing"

	"github.com/esrille/keyboard-layout-comparison/keyingtime"
)

const usage = `keyingtime estimates the minimum time for inputting the given text(s).

Usage:
	keyingtime [--verbose] <keying_time_file> [<text>...]
	keyingtime -h | --help

Options:
	--verbose  Trace finger waits.
	-h --help  Show this screen.

With no text, read the standard input.
Example: keyingtime keytime.notepc.txt "hello, world"`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal("Error: ", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	arguments, err := docopt.ParseArgs(usage, args, "")
	if err != nil {
		return err
	}
	path, _ := arguments.String("<keying_time_file>")
	if verbose, _ := arguments.Bool("--verbose"); verbose {
		tracing.Select("kblc.keyingtime").SetTraceLevel(tracing.LevelDebug)
	}

	table, err := load(path)
	if err != nil {
		fmt.Fprintln(stdout, usage)
		return err
	}

	e := table.NewEstimator()
	if texts, ok := arguments["<text>"].([]string); ok && len(texts) > 0 {
		e.TypeString(strings.Join(texts, " "))
	} else if _, err := e.ReadFrom(stdin); err != nil {
		return err
	}
	fmt.Fprintln(stdout, e.Time())
	return nil
}

func load(path string) (*keyingtime.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s'", path)
	}
	defer f.Close()
	return keyingtime.Load(f)
}
