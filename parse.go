package isodate

import "fmt"

// Match runs the grammar over input with a fresh context. ok is true when
// some prefix matched; the whole input was accepted only when end equals
// len(input).
func (g *Grammar) Match(input []byte) (end int, c *Context, ok bool) {
	c = NewContext()
	end, ok = g.MatchContext(input, c)
	return end, c, ok
}

// MatchContext is Match with a caller supplied context, for callers that
// need different defaults. c must be fresh.
func (g *Grammar) MatchContext(input []byte, c *Context) (int, bool) {
	end := g.root.Match(input, 0, c)
	if end == noMatch {
		return 0, false
	}
	return end, true
}

// Parse requires the grammar to consume all of s.
func (g *Grammar) Parse(s string) (*Context, error) {
	end, c, ok := g.Match([]byte(s))
	if !ok {
		return nil, fmt.Errorf("%w: %s rejected %q", ErrNoMatch, g.Name, s)
	}
	if end != len(s) {
		return nil, &IncompleteError{Grammar: g.Name, Input: s, End: end}
	}
	return c, nil
}
