package isodate

import "time"

// Location returns the zone the parsed value was written in: time.UTC for
// "Z" and zero offsets, a fixed zone for other offsets, and loc (or
// time.Local when loc is nil) when the input had no zone designator.
func (c *Context) Location(loc *time.Location) *time.Location {
	if c.Timezone.Kind == UTC {
		if off := c.Timezone.Offset(); off != 0 {
			return time.FixedZone("", off)
		}
		return time.UTC
	}
	if loc == nil {
		return time.Local
	}
	return loc
}

// Time converts the parsed fields into a time.Time. Missing month and day
// count as 1, ordinal days count from January 1 and week dates start on
// the Monday of ISO week 1. Out of range fields are normalized the way
// time.Date does; no calendar validation happens here.
func (c *Context) Time(loc *time.Location) time.Time {
	dt := c.DateTime
	zone := c.Location(loc)
	nsec := int(c.Microseconds) * 1000
	y, h, mi, s := int(dt.Year), int(dt.Hour), int(dt.Minute), int(dt.Second)

	switch {
	case c.Week > 0:
		wd := int(c.WeekDay)
		if wd == 0 {
			wd = 1
		}
		// Monday of week 1 is the Monday on or before January 4
		jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, zone)
		back := (int(jan4.Weekday()) + 6) % 7
		d := 4 - back + (int(c.Week)-1)*7 + wd - 1
		return time.Date(y, time.January, d, h, mi, s, nsec, zone)
	case c.ordinal:
		return time.Date(y, time.January, int(dt.Day), h, mi, s, nsec, zone)
	}

	m, d := int(dt.Month), int(dt.Day)
	if m == 0 {
		m = 1
	}
	if d == 0 {
		d = 1
	}
	return time.Date(y, time.Month(m), d, h, mi, s, nsec, zone)
}
