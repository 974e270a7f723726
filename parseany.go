// Package isodate parses ISO 8601 dates and times (extended and basic
// forms, ordinal dates, week dates, vCard partial dates) and the looser
// "YYYY-MM-DD HH:MM:SS" timestamps common in data interchange.
//
// Parsing is done by small grammars built from combinators (Seq, Or,
// Maybe) over fixed and variable width digit terminals. Each parse fills a
// Context with the raw fields; helpers convert it into a time.Time.
//
//	c, err := isodate.ISO8601.Parse("2018-12-31T23:59:59.5+03:00")
//	ts, err := isodate.ParseAny("2014/04/26 17:24:37.318636")
package isodate

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultGrammars are tried in order by ParseAny.
var DefaultGrammars = []*Grammar{ISO8601, Generic}

type parser struct {
	grammars []*Grammar
	log      *zap.Logger
}

// ParserOption changes how ParseAny and friends behave.
type ParserOption func(*parser) error

// Grammars replaces the grammars tried, in order.
func Grammars(gs ...*Grammar) ParserOption {
	return func(p *parser) error {
		if len(gs) == 0 {
			return errors.New("isodate: no grammars given")
		}
		p.grammars = gs
		return nil
	}
}

// Logger sends a debug record for every grammar that rejects the input.
func Logger(l *zap.Logger) ParserOption {
	return func(p *parser) error {
		if l == nil {
			l = zap.NewNop()
		}
		p.log = l
		return nil
	}
}

func newParser(opts []ParserOption) (*parser, error) {
	p := &parser{grammars: DefaultGrammars, log: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *parser) parse(datestr string) (*Context, *Grammar, error) {
	var lastErr error
	for _, g := range p.grammars {
		c, err := g.Parse(datestr)
		if err == nil {
			return c, g, nil
		}
		p.log.Debug("grammar rejected input",
			zap.String("grammar", g.Name),
			zap.String("input", datestr),
			zap.Error(err))
		lastErr = err
	}
	return nil, nil, fmt.Errorf("could not find date format for %q: %w", datestr, lastErr)
}

// ParseContext returns the raw fields of the first grammar that consumes
// all of datestr, and that grammar.
func ParseContext(datestr string, opts ...ParserOption) (*Context, *Grammar, error) {
	p, err := newParser(opts)
	if err != nil {
		return nil, nil, err
	}
	return p.parse(datestr)
}

// ParseAny parses datestr with the first matching grammar. Values without
// a zone designator are read in time.Local.
func ParseAny(datestr string, opts ...ParserOption) (time.Time, error) {
	return parseTime(datestr, time.Local, opts)
}

// ParseIn is ParseAny with values lacking a zone read in loc.
func ParseIn(datestr string, loc *time.Location, opts ...ParserOption) (time.Time, error) {
	return parseTime(datestr, loc, opts)
}

// ParseLocal is ParseIn with time.Local, resolved at call time.
func ParseLocal(datestr string, opts ...ParserOption) (time.Time, error) {
	return parseTime(datestr, time.Local, opts)
}

// MustParse is ParseAny that panics on error.
func MustParse(datestr string, opts ...ParserOption) time.Time {
	t, err := ParseAny(datestr, opts...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func parseTime(datestr string, loc *time.Location, opts []ParserOption) (time.Time, error) {
	c, _, err := ParseContext(datestr, opts...)
	if err != nil {
		return time.Time{}, err
	}
	return c.Time(loc), nil
}
