// Command toqwerty prints the QWERTY keystrokes for typing a kana text with
// a given kana keyboard layout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/npillmayer/schuko/tracing"

	layout "github.com/esrille/keyboard-layout-comparison"
	"github.com/esrille/keyboard-layout-comparison/layoutfile"
)

const usage = `toqwerty converts kana text into QWERTY keystrokes.

Usage:
	toqwerty [--nfc] [--verbose] <layout> <infile> [<ignored>...]
	toqwerty -h | --help

Options:
	--nfc      Compose decomposed kana (NFC) before conversion.
	--verbose  Trace conversion details.
	-h --help  Show this screen.

The layout is a JSON (or YAML) file with the tables 'normal', 'shift' or
'left'/'right', and the kana sets 'daku', 'handaku' and 'kogaki'.
Arguments after <infile> are ignored.`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	// missing arguments are not an error: print the usage and leave
	helped := false
	parser := &docopt.Parser{
		HelpHandler: func(err error, text string) {
			fmt.Fprintln(stdout, text)
			helped = true
		},
	}
	arguments, err := parser.ParseArgs(usage, args, "")
	if helped || err != nil {
		return nil
	}
	layoutPath, _ := arguments.String("<layout>")
	inPath, _ := arguments.String("<infile>")
	nfc, _ := arguments.Bool("--nfc")
	if verbose, _ := arguments.Bool("--verbose"); verbose {
		tracing.Select("kblc.layout").SetTraceLevel(tracing.LevelDebug)
	}

	cfg, err := layoutfile.LoadConfig(layoutPath)
	if err != nil {
		return fmt.Errorf("layout did not load successfully: %w", err)
	}
	cfg.Normalize = nfc
	l, err := layout.New(layoutPath, cfg)
	if err != nil {
		return fmt.Errorf("layout did not load successfully: %w", err)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out := bufio.NewWriter(stdout)
	session := l.NewSession(out)
	if err := session.ConvertReader(in); err != nil {
		return fmt.Errorf("error while converting: %w", err)
	}
	if err := out.Flush(); err != nil {
		return err
	}
	tracing.Select("kblc.layout").Infof("%s: converted %d characters with %s",
		inPath, session.Count(), l.Identifier)
	return nil
}
