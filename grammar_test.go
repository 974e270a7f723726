package isodate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type grammarTest struct {
	in   string
	want Context
}

// local is the context every parse starts from.
var local = Timezone{Kind: Local, Sign: 1}

func checkGrammar(t *testing.T, g *Grammar, tests []grammarTest) {
	t.Helper()
	for _, tt := range tests {
		c, err := g.Parse(tt.in)
		require.NoError(t, err, "%s should fully consume %q", g, tt.in)
		if diff := cmp.Diff(tt.want, *c, cmp.AllowUnexported(Context{})); diff != "" {
			t.Errorf("%s.Parse(%q) mismatch (-want +got):\n%s", g, tt.in, diff)
		}
	}
}

func TestDateGrammar(t *testing.T) {
	checkGrammar(t, Date, []grammarTest{
		{in: "2018", want: Context{DateTime: DateTime{Year: 2018}, Timezone: local}},
		{in: "20181231", want: Context{DateTime: DateTime{Year: 2018, Month: 12, Day: 31}, Timezone: local}},
		{in: "2018-12", want: Context{DateTime: DateTime{Year: 2018, Month: 12}, Timezone: local}},
		{in: "2018-12-31", want: Context{DateTime: DateTime{Year: 2018, Month: 12, Day: 31}, Timezone: local}},
		{in: "2018-256", want: Context{DateTime: DateTime{Year: 2018, Day: 256}, Timezone: local, ordinal: true}},
		// the MMDD branch writes month 25 before it fails on the day;
		// handlers are never undone
		{in: "2018256", want: Context{DateTime: DateTime{Year: 2018, Month: 25, Day: 256}, Timezone: local, ordinal: true}},
		{in: "2018W06", want: Context{DateTime: DateTime{Year: 2018}, Week: 6, Timezone: local}},
		{in: "2018W061", want: Context{DateTime: DateTime{Year: 2018}, Week: 6, WeekDay: 1, Timezone: local}},
		{in: "2018W06-1", want: Context{DateTime: DateTime{Year: 2018}, Week: 6, WeekDay: 1, Timezone: local}},
		{in: "2018-W06", want: Context{DateTime: DateTime{Year: 2018}, Week: 6, Timezone: local}},
		{in: "2018-W53-7", want: Context{DateTime: DateTime{Year: 2018}, Week: 53, WeekDay: 7, Timezone: local}},
	})
}

func TestDateGrammarYears(t *testing.T) {
	for y := 0; y <= 9999; y += 37 {
		in := fmt.Sprintf("%04d", y)
		end, c, ok := Date.Match([]byte(in))
		require.True(t, ok, in)
		assert.Equal(t, len(in), end, in)
		assert.Equal(t, DateTime{Year: uint32(y)}, c.DateTime, in)
		assert.Zero(t, c.Week, in)
		assert.Zero(t, c.WeekDay, in)
	}
}

func TestVCardGrammar(t *testing.T) {
	checkGrammar(t, VCard, []grammarTest{
		{in: "--1231", want: Context{DateTime: DateTime{Month: 12, Day: 31}, Timezone: local}},
		{in: "---12", want: Context{DateTime: DateTime{Day: 12}, Timezone: local}},
	})
}

func TestTimeGrammar(t *testing.T) {
	checkGrammar(t, Time, []grammarTest{
		{in: "23", want: Context{DateTime: DateTime{Hour: 23}, LastUnit: Hour, Timezone: local}},
		{in: "2359", want: Context{DateTime: DateTime{Hour: 23, Minute: 59}, LastUnit: Minute, Timezone: local}},
		{in: "235958", want: Context{DateTime: DateTime{Hour: 23, Minute: 59, Second: 58}, LastUnit: Second, Timezone: local}},
		{in: "23:59", want: Context{DateTime: DateTime{Hour: 23, Minute: 59}, LastUnit: Minute, Timezone: local}},
		{in: "23:59:58", want: Context{DateTime: DateTime{Hour: 23, Minute: 59, Second: 58}, LastUnit: Second, Timezone: local}},
		// HHMM wins over HH followed by leftovers
		{in: "1230.5", want: Context{DateTime: DateTime{Hour: 12, Minute: 30, Second: 30}, LastUnit: Minute, Timezone: local}},
		{in: "12:30.25", want: Context{DateTime: DateTime{Hour: 12, Minute: 30, Second: 15}, LastUnit: Minute, Timezone: local}},
		{in: "12.5", want: Context{DateTime: DateTime{Hour: 12, Minute: 30}, LastUnit: Hour, Timezone: local}},
		{in: "12,569", want: Context{DateTime: DateTime{Hour: 12, Minute: 34, Second: 8}, Microseconds: 399999, LastUnit: Hour, Timezone: local}},
		{in: "12:30:11.555555", want: Context{DateTime: DateTime{Hour: 12, Minute: 30, Second: 11}, Microseconds: 555555, LastUnit: Second, Timezone: local}},
		{in: "12:30:11.5", want: Context{DateTime: DateTime{Hour: 12, Minute: 30, Second: 11}, Microseconds: 500000, LastUnit: Second, Timezone: local}},
		{in: "12:30:11.000000", want: Context{DateTime: DateTime{Hour: 12, Minute: 30, Second: 11}, LastUnit: Second, Timezone: local}},
	})
}

func TestZoneGrammar(t *testing.T) {
	checkGrammar(t, Zone, []grammarTest{
		{in: "Z", want: Context{Timezone: Timezone{Kind: UTC, Sign: 1}}},
		{in: "+03:17", want: Context{Timezone: Timezone{Kind: UTC, Sign: 1, Hour: 3, Minute: 17}}},
		{in: "-0530", want: Context{Timezone: Timezone{Kind: UTC, Sign: -1, Hour: 5, Minute: 30}}},
		{in: "-08", want: Context{Timezone: Timezone{Kind: UTC, Sign: -1, Hour: 8}}},
	})
	checkGrammar(t, ZoneOffset, []grammarTest{
		{in: "0317", want: Context{Timezone: Timezone{Kind: UTC, Sign: 1, Hour: 3, Minute: 17}}},
		{in: "03:17", want: Context{Timezone: Timezone{Kind: UTC, Sign: 1, Hour: 3, Minute: 17}}},
		{in: "03", want: Context{Timezone: Timezone{Kind: UTC, Sign: 1, Hour: 3}}},
	})
}

func TestZoneKeepsCallerSign(t *testing.T) {
	c := NewContext()
	c.Timezone.Sign = -1
	end, ok := Zone.MatchContext([]byte("Z"), c)
	require.True(t, ok)
	assert.Equal(t, 1, end)
	assert.Equal(t, Timezone{Kind: UTC, Sign: -1}, c.Timezone)
}

func TestISO8601Grammar(t *testing.T) {
	day := DateTime{Year: 2018, Month: 12, Day: 31}
	at := func(h, m, s uint32) DateTime {
		dt := day
		dt.Hour, dt.Minute, dt.Second = h, m, s
		return dt
	}
	checkGrammar(t, ISO8601, []grammarTest{
		{in: "2018-12-31", want: Context{DateTime: day, Timezone: local}},
		{in: "---12", want: Context{DateTime: DateTime{Day: 12}, Timezone: local}},
		{in: "--1231", want: Context{DateTime: DateTime{Month: 12, Day: 31}, Timezone: local}},
		{in: "2018-12-31T23", want: Context{DateTime: at(23, 0, 0), LastUnit: Hour, Timezone: local}},
		{in: "20181231T235959", want: Context{DateTime: at(23, 59, 59), LastUnit: Second, Timezone: local}},
		{in: "20181231T2359Z", want: Context{DateTime: at(23, 59, 0), LastUnit: Minute, Timezone: Timezone{Kind: UTC, Sign: 1}}},
		{in: "2018-12-31T1230.5", want: Context{DateTime: at(12, 30, 30), LastUnit: Minute, Timezone: local}},
		{in: "2018-12-31T23:59:59.555555", want: Context{DateTime: at(23, 59, 59), Microseconds: 555555, LastUnit: Second, Timezone: local}},
		{in: "2018-12-31T23:59,5Z", want: Context{DateTime: at(23, 59, 30), LastUnit: Minute, Timezone: Timezone{Kind: UTC, Sign: 1}}},
		{in: "2018-12-31T12.569+03:17", want: Context{
			DateTime:     at(12, 34, 8),
			Microseconds: 399999,
			LastUnit:     Hour,
			Timezone:     Timezone{Kind: UTC, Sign: 1, Hour: 3, Minute: 17},
		}},
		{in: "2018-12-31T12:30:11-0800", want: Context{DateTime: at(12, 30, 11), LastUnit: Second, Timezone: Timezone{Kind: UTC, Sign: -1, Hour: 8}}},
		{in: "2018-12-31T23-05", want: Context{DateTime: at(23, 0, 0), LastUnit: Hour, Timezone: Timezone{Kind: UTC, Sign: -1, Hour: 5}}},
		{in: "2018-256T10:00Z", want: Context{DateTime: DateTime{Year: 2018, Day: 256, Hour: 10}, LastUnit: Minute, Timezone: Timezone{Kind: UTC, Sign: 1}, ordinal: true}},
		{in: "2018-W06-1T10", want: Context{DateTime: DateTime{Year: 2018, Hour: 10}, Week: 6, WeekDay: 1, LastUnit: Hour, Timezone: local}},
	})
}

func TestGenericGrammar(t *testing.T) {
	checkGrammar(t, Generic, []grammarTest{
		{in: "2014-04-26", want: Context{DateTime: DateTime{Year: 2014, Month: 4, Day: 26}, Timezone: local}},
		{in: "2014/04-26", want: Context{DateTime: DateTime{Year: 2014, Month: 4, Day: 26}, Timezone: local}},
		{in: "2012/03/19 10:11:59", want: Context{DateTime: DateTime{Year: 2012, Month: 3, Day: 19, Hour: 10, Minute: 11, Second: 59}, LastUnit: Second, Timezone: local}},
		{in: "2014-04-26 17:24:37.318636", want: Context{
			DateTime:     DateTime{Year: 2014, Month: 4, Day: 26, Hour: 17, Minute: 24, Second: 37},
			Microseconds: 318636,
			LastUnit:     Second,
			Timezone:     local,
		}},
		{in: "2014-05-11 08:20:13,787", want: Context{
			DateTime:     DateTime{Year: 2014, Month: 5, Day: 11, Hour: 8, Minute: 20, Second: 13},
			Microseconds: 787000,
			LastUnit:     Second,
			Timezone:     local,
		}},
		{in: "2009-08-12 22:15:09.123-07:00", want: Context{
			DateTime:     DateTime{Year: 2009, Month: 8, Day: 12, Hour: 22, Minute: 15, Second: 9},
			Microseconds: 123000,
			LastUnit:     Second,
			Timezone:     Timezone{Kind: UTC, Sign: -1, Hour: 7},
		}},
		{in: "2009-08-12 22:15:09+0100", want: Context{
			DateTime: DateTime{Year: 2009, Month: 8, Day: 12, Hour: 22, Minute: 15, Second: 9},
			LastUnit: Second,
			Timezone: Timezone{Kind: UTC, Sign: 1, Hour: 1},
		}},
	})
}

func TestGrammarRejects(t *testing.T) {
	tests := []struct {
		g   *Grammar
		in  string
		end int // -1 when nothing matched at all
	}{
		{g: Date, in: "201812", end: 4},
		{g: Date, in: "2018-12-31X", end: 10},
		{g: Date, in: "18-12-31", end: -1},
		{g: Date, in: "", end: -1},
		{g: Time, in: "12.30.5", end: 5},
		{g: Time, in: "12:30:11.5555555", end: 15},
		{g: Time, in: "123", end: 2},
		{g: VCard, in: "--xxxx", end: -1},
		{g: VCard, in: "-1231", end: -1},
		{g: Zone, in: "+3", end: -1},
		{g: Zone, in: "z", end: -1},
		{g: ISO8601, in: "201812", end: 4},
		{g: ISO8601, in: "2018-12-31T12.30.5", end: 16},
		{g: ISO8601, in: "2018-12-31T12:30:11.5555555", end: 26},
		{g: ISO8601, in: "2018-12-31 12:30", end: 10},
		{g: ISO8601, in: "--xxxx", end: -1},
		{g: Generic, in: "2014-04-26T17:24:37", end: 10},
		{g: Generic, in: "2014-04-26 17:24", end: 10},
		{g: Generic, in: "2014-04-26 05:24:37 PM", end: 19},
		{g: Generic, in: "14-04-26", end: -1},
		// signed and long years are not accepted by the 4 digit year term
		{g: Generic, in: "+1987-01-01 00:00:00", end: -1},
		{g: Generic, in: "198765432-01-01 00:00:00", end: -1},
	}
	for _, tt := range tests {
		_, err := tt.g.Parse(tt.in)
		require.Error(t, err, "%s should reject %q", tt.g, tt.in)
		assert.True(t, errors.Is(err, ErrNoMatch), "%s on %q: %v", tt.g, tt.in, err)

		var ie *IncompleteError
		if tt.end < 0 {
			assert.False(t, errors.As(err, &ie), "%s on %q should match nothing", tt.g, tt.in)
			continue
		}
		require.True(t, errors.As(err, &ie), "%s on %q should be a partial match", tt.g, tt.in)
		assert.Equal(t, tt.end, ie.End, "%s on %q", tt.g, tt.in)
		assert.Equal(t, tt.g.Name, ie.Grammar)
	}
}

func TestMatchPrefix(t *testing.T) {
	end, c, ok := Date.Match([]byte("2018-12-31X"))
	require.True(t, ok)
	assert.Equal(t, 10, end)
	assert.Equal(t, DateTime{Year: 2018, Month: 12, Day: 31}, c.DateTime)

	_, _, ok = Date.Match([]byte("X2018"))
	assert.False(t, ok)
}

func TestCustomGrammar(t *testing.T) {
	// "HH:MM" clock with a mandatory zone
	clock := NewGrammar("clock", Seq(hour, Char(':'), minute, zoneNode))
	c, err := clock.Parse("07:45Z")
	require.NoError(t, err)
	assert.Equal(t, DateTime{Hour: 7, Minute: 45}, c.DateTime)
	assert.Equal(t, UTC, c.Timezone.Kind)
	assert.Equal(t, "clock", clock.String())

	_, err = clock.Parse("07:45")
	assert.ErrorIs(t, err, ErrNoMatch)
}
