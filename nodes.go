package isodate

// noMatch is the cursor a Node returns when it cannot consume its pattern.
const noMatch = -1

// Node is one element of a grammar tree. Match tries to consume the
// pattern at in[pos:] and returns the cursor after it, or -1. A Node never
// reads past len(in).
type Node interface {
	Match(in []byte, pos int, c *Context) int
}

type char struct {
	b byte
	h Handler
}

// Char matches the single byte b.
func Char(b byte) Node { return char{b: b} }

// CharFunc matches the single byte b and hands its value to h.
func CharFunc(b byte, h Handler) Node { return char{b: b, h: h} }

func (n char) Match(in []byte, pos int, c *Context) int {
	if pos >= len(in) || in[pos] != n.b {
		return noMatch
	}
	if n.h != nil {
		n.h(c, uint32(n.b))
	}
	return pos + 1
}

type digits struct {
	width int
	h     Handler
}

// Digits matches exactly width ASCII digits.
func Digits(width int, h Handler) Node { return digits{width: width, h: h} }

func (n digits) Match(in []byte, pos int, c *Context) int {
	end := pos + n.width
	if end > len(in) {
		return noMatch
	}
	var v uint32
	for _, b := range in[pos:end] {
		if b < '0' || b > '9' {
			return noMatch
		}
		v = v*10 + uint32(b-'0')
	}
	if n.h != nil {
		n.h(c, v)
	}
	return end
}

type varDigits struct {
	maxWidth int
	h        FractionHandler
}

// VarDigits matches the longest run of 1 to maxWidth ASCII digits.
func VarDigits(maxWidth int, h FractionHandler) Node {
	return varDigits{maxWidth: maxWidth, h: h}
}

func (n varDigits) Match(in []byte, pos int, c *Context) int {
	end := min(pos+n.maxWidth, len(in))
	i := pos
	var v uint32
	for ; i < end; i++ {
		b := in[i]
		if b < '0' || b > '9' {
			break
		}
		v = v*10 + uint32(b-'0')
	}
	if i == pos {
		return noMatch
	}
	if n.h != nil {
		n.h(c, v, i-pos)
	}
	return i
}

type seq []Node

// Seq matches each node in turn, stopping at the first miss.
func Seq(nodes ...Node) Node { return seq(nodes) }

func (s seq) Match(in []byte, pos int, c *Context) int {
	for _, n := range s {
		if pos = n.Match(in, pos, c); pos == noMatch {
			return noMatch
		}
	}
	return pos
}

type or []Node

// Or returns the first alternative that matches from pos. Earlier
// alternatives win.
func Or(nodes ...Node) Node { return or(nodes) }

func (o or) Match(in []byte, pos int, c *Context) int {
	for _, n := range o {
		if next := n.Match(in, pos, c); next != noMatch {
			return next
		}
	}
	return noMatch
}

type maybe []Node

// Maybe matches at most one of its mutually exclusive alternatives and
// succeeds without consuming anything when none match. At end of input no
// alternative is tried.
func Maybe(nodes ...Node) Node { return maybe(nodes) }

func (m maybe) Match(in []byte, pos int, c *Context) int {
	if pos >= len(in) {
		return pos
	}
	for _, n := range m {
		if next := n.Match(in, pos, c); next != noMatch {
			return next
		}
	}
	return pos
}
