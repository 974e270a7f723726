package isodate

import "fmt"

// DateTime holds the calendar and clock fields written by a parse.
// Fields a grammar did not reach stay at zero.
type DateTime struct {
	Year   uint32 `json:"year"`
	Month  uint32 `json:"month"`
	Day    uint32 `json:"day"`
	Hour   uint32 `json:"hour"`
	Minute uint32 `json:"minute"`
	Second uint32 `json:"second"`
}

// String renders the value as "YYYY-MM-DD HH:MM:SS".
func (dt DateTime) String() string {
	return string(LayoutDateTime.Append(nil, dt))
}

// TZKind tells whether a parsed value carried zone information.
type TZKind int

const (
	Local TZKind = iota // no zone designator seen
	UTC                 // "Z" or an explicit offset
)

func (k TZKind) String() string {
	switch k {
	case Local:
		return "local"
	case UTC:
		return "utc"
	}
	return fmt.Sprintf("TZKind(%d)", int(k))
}

// MarshalText lets encoders write the kind by name.
func (k TZKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Timezone is the zone designator of a parsed value. A "Z" flips Kind to
// UTC and leaves Sign at whatever the context started with.
type Timezone struct {
	Kind   TZKind `json:"kind"`
	Sign   int    `json:"sign"`
	Hour   uint32 `json:"offset_hour"`
	Minute uint32 `json:"offset_minute"`
}

// Offset returns the signed offset from UTC in seconds.
func (tz Timezone) Offset() int {
	return tz.Sign * int(tz.Hour*3600+tz.Minute*60)
}

// TimeUnit is the clock field most recently written during a parse.
type TimeUnit int

const (
	None TimeUnit = iota
	Hour
	Minute
	Second
)

func (u TimeUnit) String() string {
	switch u {
	case None:
		return "none"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return fmt.Sprintf("TimeUnit(%d)", int(u))
}

// MarshalText lets encoders write the unit by name.
func (u TimeUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Context is the mutable state of one parse attempt. Handlers write into it
// as terminals match; nothing is rolled back when an enclosing alternative
// fails. A Context must not be reused between attempts or shared between
// goroutines.
type Context struct {
	DateTime     DateTime `json:"datetime"`
	Microseconds uint32   `json:"microseconds"`
	Timezone     Timezone `json:"timezone"`
	Week         uint32   `json:"week"`
	WeekDay      uint32   `json:"week_day"`
	LastUnit     TimeUnit `json:"last_unit"`

	// set by the ordinal day handler so conversions can tell "YYYY-DDD"
	// apart from a day-only vCard date
	ordinal bool
}

// NewContext returns a context with every field at its default: local
// time, positive offset sign, all numbers zero.
func NewContext() *Context {
	return &Context{
		Timezone: Timezone{Kind: Local, Sign: 1},
	}
}

// Ordinal reports whether the day field holds a day of the year.
func (c *Context) Ordinal() bool {
	return c.ordinal
}
