package isodate

import "math"

// Handler stores a matched integer into the context.
type Handler func(c *Context, v uint32)

// FractionHandler receives a fraction's digits and how many there were.
type FractionHandler func(c *Context, v uint32, n int)

func setYear(c *Context, v uint32)    { c.DateTime.Year = v }
func setMonth(c *Context, v uint32)   { c.DateTime.Month = v }
func setDay(c *Context, v uint32)     { c.DateTime.Day = v }
func setWeek(c *Context, v uint32)    { c.Week = v }
func setWeekDay(c *Context, v uint32) { c.WeekDay = v }

// ordinal days share the day slot
func setOrdinalDay(c *Context, v uint32) {
	c.DateTime.Day = v
	c.ordinal = true
}

func setHour(c *Context, v uint32) {
	c.LastUnit = Hour
	c.DateTime.Hour = v
}

func setMinute(c *Context, v uint32) {
	c.LastUnit = Minute
	c.DateTime.Minute = v
}

func setSecond(c *Context, v uint32) {
	c.LastUnit = Second
	c.DateTime.Second = v
}

func setUTC(c *Context, _ uint32) {
	c.Timezone.Kind = UTC
}

func setOffsetSign(c *Context, v uint32) {
	c.Timezone.Kind = UTC
	if v == '+' {
		c.Timezone.Sign = 1
	} else {
		c.Timezone.Sign = -1
	}
}

func setOffsetHour(c *Context, v uint32) {
	c.Timezone.Kind = UTC
	c.Timezone.Hour = v
}

func setOffsetMinute(c *Context, v uint32) {
	c.Timezone.Kind = UTC
	c.Timezone.Minute = v
}

// setFraction spreads a decimal fraction of the last written clock field
// over the smaller fields. All steps truncate. A zero fraction such as
// ".000" leaves the context untouched.
//
// The float64 conversions around products keep the compiler from fusing
// multiply-add, which would change the low bits on some architectures.
func setFraction(c *Context, v uint32, n int) {
	if v == 0 {
		return
	}
	share := float64(v) / math.Pow(10, float64(n))
	switch c.LastUnit {
	case Hour:
		c.DateTime.Minute = truncate(float64(share * 60))
		secLeft := float64((share - float64(c.DateTime.Minute)/60) * 3600)
		c.DateTime.Second = truncate(secLeft)
		usLeft := float64(share*3600*1000000) -
			(float64(float64(c.DateTime.Minute)*60*1000000) + float64(float64(c.DateTime.Second)*1000000))
		c.Microseconds = truncate(usLeft)
	case Minute:
		c.DateTime.Second = truncate(float64(share * 60))
		c.Microseconds = truncate(float64((share - float64(c.DateTime.Second)/60) * 1000000))
	case Second:
		c.Microseconds = truncate(float64(share * 1000000))
	}
}

// truncate converts toward zero, clamping the tiny negatives float
// subtraction can leave behind.
func truncate(f float64) uint32 {
	if f <= 0 {
		return 0
	}
	return uint32(f)
}
