package isodate

import (
	"errors"

	"github.com/sourcegraph/conc/iter"
)

// Result is the outcome of parsing one input of a batch.
type Result struct {
	Input   string   `json:"input"`
	Grammar string   `json:"grammar,omitempty"`
	End     int      `json:"end"` // bytes consumed; partial matches report how far they got
	Context *Context `json:"context,omitempty"`
	Err     error    `json:"-"`
}

// OK reports whether the input was fully consumed.
func (r Result) OK() bool {
	return r.Err == nil
}

// ParseBatch parses every input with g concurrently. Each input gets its
// own context; results are in input order. A nil g tries DefaultGrammars
// the way ParseAny does.
func ParseBatch(g *Grammar, inputs []string, opts ...ParserOption) ([]Result, error) {
	if g != nil {
		opts = append([]ParserOption{Grammars(g)}, opts...)
	}
	p, err := newParser(opts)
	if err != nil {
		return nil, err
	}
	return iter.Map(inputs, func(in *string) Result {
		return p.result(*in)
	}), nil
}

func (p *parser) result(input string) Result {
	r := Result{Input: input}
	c, g, err := p.parse(input)
	if err != nil {
		r.Err = err
		var ie *IncompleteError
		if errors.As(err, &ie) {
			r.Grammar = ie.Grammar
			r.End = ie.End
		}
		return r
	}
	r.Grammar = g.Name
	r.End = len(input)
	r.Context = c
	return r
}
