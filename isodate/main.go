package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/isodate"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type options struct {
	Grammar  string `short:"g" long:"grammar" default:"any" choice:"any" choice:"iso8601" choice:"date" choice:"vcard" choice:"time" choice:"timezone" choice:"timezone-offset" choice:"generic" description:"Grammar every input must fully match"`
	Format   string `short:"f" long:"format" default:"table" choice:"table" choice:"json" choice:"yaml" description:"Output format"`
	Timezone string `long:"timezone" default:"UTC" description:"Location for values without a zone, aka America/Los_Angeles"`
	Samples  bool   `long:"samples" description:"Parse the built-in sample strings"`
	Verbose  bool   `short:"v" long:"verbose" description:"Log grammar misses to stderr"`
	NoColor  bool   `long:"no-color" description:"Disable colored PASS/FAIL"`
}

var grammars = []*isodate.Grammar{
	isodate.ISO8601,
	isodate.Date,
	isodate.VCard,
	isodate.Time,
	isodate.Zone,
	isodate.ZoneOffset,
	isodate.Generic,
}

// samples exercise every grammar branch, good and bad.
var samples = []string{
	"2018",
	"20181231",
	"2018-12",
	"2018-12-31",
	"2018-256",
	"2018256",
	"2018W06",
	"2018W061",
	"2018W06-1",
	"2018-W06-1",
	"--1231",
	"---12",
	"2018-12-31T23",
	"2018-12-31T2359",
	"2018-12-31T235959",
	"2018-12-31T23:59:59.555555",
	"2018-12-31T23:59,5Z",
	"2018-12-31T12.569+03:17",
	"2018-12-31T12:30:11-0800",
	"2012/03/19 10:11:59",
	"2014-04-26 17:24:37.318636",
	"2009-08-12 22:15:09.123-07:00",
	"2009-08-12 22:15:09+0100",
	"201812",
	"2018-12-31T12.30.5",
	"2018-12-31T12:30:11.5555555",
	"--xxxx",
	"+1987-01-01 00:00:00",
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [DATES...]"
	parser.LongDescription = heredoc.Doc(`
		Parses each date argument with the chosen grammar and reports whether
		the whole string matched, along with the parsed fields.

		Without arguments, reads one date per line from stdin, or the sample
		list when --samples is given.
	`)

	args, err := parser.Parse()
	if flags.WroteHelp(err) {
		return
	} else if err != nil {
		os.Exit(2)
	}

	if err := run(opts, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errFailures) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

var errFailures = errors.New("some inputs did not parse")

func run(opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	log := zap.NewNop()
	if opts.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log = l
	}
	defer log.Sync() //nolint:errcheck

	if opts.NoColor {
		color.NoColor = true
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", opts.Timezone, err)
	}

	inputs := args
	switch {
	case len(inputs) > 0:
	case opts.Samples:
		inputs = samples
	default:
		if inputs, err = readLines(stdin); err != nil {
			return err
		}
	}

	var g *isodate.Grammar
	if opts.Grammar != "any" {
		var ok bool
		g, ok = lo.Find(grammars, func(g *isodate.Grammar) bool { return g.Name == opts.Grammar })
		if !ok {
			return fmt.Errorf("unknown grammar %q", opts.Grammar)
		}
	}

	results, err := isodate.ParseBatch(g, inputs, isodate.Logger(log))
	if err != nil {
		return err
	}
	log.Debug("parsed batch", zap.Int("inputs", len(inputs)), zap.String("grammar", opts.Grammar))

	if err := write(stdout, opts.Format, newReports(results, loc)); err != nil {
		return err
	}
	if lo.SomeBy(results, func(r isodate.Result) bool { return !r.OK() }) {
		return errFailures
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
