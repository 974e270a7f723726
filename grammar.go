package isodate

// Grammar is a named, immutable tree of nodes. The package level grammars
// are built once and may be used from any number of goroutines.
type Grammar struct {
	Name string
	root Node
}

// NewGrammar wraps root so it can be matched and parsed.
func NewGrammar(name string, root Node) *Grammar {
	return &Grammar{Name: name, root: root}
}

func (g *Grammar) String() string { return g.Name }

// terminals
var (
	year       = Digits(4, setYear)
	month      = Digits(2, setMonth)
	day        = Digits(2, setDay)
	week       = Digits(2, setWeek)
	weekDay    = Digits(1, setWeekDay)
	ordinalDay = Digits(3, setOrdinalDay)
	hour       = Digits(2, setHour)
	minute     = Digits(2, setMinute)
	second     = Digits(2, setSecond)
	utcMarker  = CharFunc('Z', setUTC)
	offsetHour = Digits(2, setOffsetHour)
	offsetMin  = Digits(2, setOffsetMinute)
	offsetSign = Or(CharFunc('+', setOffsetSign), CharFunc('-', setOffsetSign))
	dateSep    = Or(Char('-'), Char('/'))
	fraction   = Seq(Or(Char('.'), Char(',')), VarDigits(6, setFraction))
)

// shared subtrees
var (
	dateNode    = newDateNode()
	vCardNode   = newVCardNode()
	timeNode    = newTimeNode()
	offsetNode  = Seq(offsetHour, Maybe(offsetMin, Seq(Char(':'), offsetMin)))
	signedZone  = Seq(offsetSign, offsetNode)
	zoneNode    = Or(utcMarker, signedZone)
	genericNode = newGenericNode()
)

var (
	// Date matches calendar, ordinal and week dates with a 4 digit year.
	Date = NewGrammar("date", dateNode)

	// VCard matches the year-less "--MMDD" and "---DD".
	VCard = NewGrammar("vcard", vCardNode)

	// Time matches basic and extended times. A fraction is only accepted
	// after the last field present and qualifies that field.
	Time = NewGrammar("time", timeNode)

	// ZoneOffset matches "HH", "HHMM" and "HH:MM", the part after a sign.
	ZoneOffset = NewGrammar("timezone-offset", offsetNode)

	// Zone matches "Z" or a sign followed by an offset.
	Zone = NewGrammar("timezone", zoneNode)

	// ISO8601 matches date['T'time[zone]] or a vCard date.
	ISO8601 = NewGrammar("iso8601", Or(
		Seq(dateNode, Maybe(Seq(Char('T'), timeNode, Maybe(zoneNode)))),
		vCardNode,
	))

	// Generic matches "YYYY-MM-DD[ HH:MM:SS[.frac][±offset]]" with either
	// '-' or '/' between the date fields.
	Generic = NewGrammar("generic", genericNode)
)

func newDateNode() Node {
	return Seq(
		year, // YYYY
		Maybe(Or(
			// YYYYMMDD
			Seq(month, day),
			Seq(Char('-'), Or(
				// YYYY-DDD
				ordinalDay,
				// YYYY-MM, YYYY-MM-DD
				Seq(month, Maybe(Seq(Char('-'), day))),
				// YYYY-Www, YYYY-Www-D
				Seq(Char('W'), week, Maybe(Seq(Char('-'), weekDay))),
			)),
			// YYYYWww, YYYYWwwD, YYYYWww-D
			Seq(Char('W'), week, Maybe(weekDay, Seq(Char('-'), weekDay))),
			// YYYYDDD
			ordinalDay,
		)),
	)
}

func newVCardNode() Node {
	return Seq(
		Char('-'), Char('-'),
		Or(
			Seq(month, day),     // --MMDD
			Seq(Char('-'), day), // ---DD
		),
	)
}

func newTimeNode() Node {
	return Seq(
		hour, // HH
		Maybe(Or(
			// HHMM, HHMMSS, HHMM.M{1,6}
			Seq(minute, Maybe(second, Maybe(fraction))),
			// HH:MM, HH:MM:SS, HH:MM:SS.S{1,6}, HH:MM.M{1,6}
			Seq(Char(':'), minute, Maybe(
				Seq(Char(':'), second, Maybe(fraction)),
				fraction,
			)),
			// HH.H{1,6}
			fraction,
		)),
	)
}

func newGenericNode() Node {
	return Seq(
		year, dateSep, month, dateSep, day, // YYYY-MM-DD, YYYY/MM/DD
		Maybe(Seq(
			Char(' '),
			hour, Char(':'), minute, Char(':'), second, // HH:MM:SS
			Maybe(Seq(
				fraction,          // .s{1,6}
				Maybe(signedZone), // ±HH:MM, ±HHMM, ±HH
			)),
			Maybe(signedZone),
		)),
	)
}
