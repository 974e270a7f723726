package isodate

type tagKind uint8

const (
	tagYear tagKind = iota
	tagMonth
	tagDay
	tagHour
	tagMinute
	tagSecond
	tagAMPM
	tagLit
)

// Tag is one field of a Layout.
type Tag struct {
	kind tagKind
	lit  byte
}

var (
	TagYear   = Tag{kind: tagYear}   // 4 digits
	TagMonth  = Tag{kind: tagMonth}  // 2 digits
	TagDay    = Tag{kind: tagDay}    // 2 digits
	TagHour   = Tag{kind: tagHour}   // 2 digits, 00-23
	TagMinute = Tag{kind: tagMinute} // 2 digits
	TagSecond = Tag{kind: tagSecond} // 2 digits
	TagAMPM   = Tag{kind: tagAMPM}   // "AM" or "PM"
)

// Lit is a literal byte in a Layout.
func Lit(b byte) Tag { return Tag{kind: tagLit, lit: b} }

// Width is the number of bytes the tag always writes.
func (t Tag) Width() int {
	switch t.kind {
	case tagYear:
		return 4
	case tagLit:
		return 1
	}
	return 2
}

// Layout is a fixed sequence of tags. Its output length does not depend
// on the value being formatted.
type Layout []Tag

// LayoutDateTime renders "2018-04-06 22:42:05".
var LayoutDateTime = Layout{
	TagYear, Lit('-'), TagMonth, Lit('-'), TagDay, Lit(' '),
	TagHour, Lit(':'), TagMinute, Lit(':'), TagSecond,
}

// Size is the number of bytes Format writes.
func (l Layout) Size() int {
	n := 0
	for _, t := range l {
		n += t.Width()
	}
	return n
}

// Format writes dt into buf and returns the number of bytes written,
// always l.Size(). Values wider than their field keep only the low
// digits. Format panics if buf is shorter than l.Size().
func (l Layout) Format(buf []byte, dt DateTime) int {
	_ = buf[:l.Size()]
	i := 0
	for _, t := range l {
		switch t.kind {
		case tagYear:
			putDigits(buf[i:i+4], dt.Year)
		case tagMonth:
			putDigits(buf[i:i+2], dt.Month)
		case tagDay:
			putDigits(buf[i:i+2], dt.Day)
		case tagHour:
			putDigits(buf[i:i+2], dt.Hour)
		case tagMinute:
			putDigits(buf[i:i+2], dt.Minute)
		case tagSecond:
			putDigits(buf[i:i+2], dt.Second)
		case tagAMPM:
			buf[i] = 'A'
			if dt.Hour >= 12 {
				buf[i] = 'P'
			}
			buf[i+1] = 'M'
		case tagLit:
			buf[i] = t.lit
		}
		i += t.Width()
	}
	return i
}

// Append formats dt onto the end of dst.
func (l Layout) Append(dst []byte, dt DateTime) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, l.Size())...)
	l.Format(dst[n:], dt)
	return dst
}

// putDigits fills dst with the low len(dst) decimal digits of v, zero padded.
func putDigits(dst []byte, v uint32) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}
}
