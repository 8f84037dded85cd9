// Package date holds the calendar types used by extracted transactions.
//
// Bank documents print dates in the German day-first convention (31.12.2021) and optionally
// a time of day (09:04 or 01:31:42). DateTime keeps track of whether a time was printed, so
// that a settlement known only to the day is not rendered with a fake midnight.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// DateTimeFormat is the format used when a time of day is known.
const DateTimeFormat = "2006-01-02T15:04:05"

// ErrInvalid is returned for strings that are not a valid day or time of day.
var ErrInvalid = errors.New("invalid date")

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// germanDay is dd.mm.yyyy as printed on statements.
var germanDay = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)

// germanClock is hh:mm or hh:mm:ss.
var germanClock = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseGerman parses a day printed as "31.12.2021".
// Unlike New, it rejects out of range values instead of normalizing them.
func ParseGerman(s string) (Date, error) {
	m := germanDay.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("%w %q want format dd.mm.yyyy", ErrInvalid, s)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	d := New(year, time.Month(month), day)
	if d.y != year || int(d.m) != month || d.d != day {
		return Date{}, fmt.Errorf("%w %q: no such day", ErrInvalid, s)
	}
	return d, nil
}

// MustParseGerman is like ParseGerman but panics on error.
func MustParseGerman(s string) Date {
	d, err := ParseGerman(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// DateTime is a Date with an optional time of day.
type DateTime struct {
	day   Date
	clock time.Duration
	timed bool
}

// At returns the DateTime for day d at the given time of day.
func At(d Date, hour, min, sec int) DateTime {
	return DateTime{day: d, clock: time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second, timed: true}
}

// On returns a DateTime for day d without time of day.
func On(d Date) DateTime { return DateTime{day: d} }

// ParseGermanDateTime parses a day and an optional clock ("" when the document does not print one).
func ParseGermanDateTime(day, clock string) (DateTime, error) {
	d, err := ParseGerman(day)
	if err != nil {
		return DateTime{}, err
	}
	if clock == "" {
		return On(d), nil
	}
	m := germanClock.FindStringSubmatch(clock)
	if m == nil {
		return DateTime{}, fmt.Errorf("%w time %q want format hh:mm[:ss]", ErrInvalid, clock)
	}
	h, _ := strconv.Atoi(m[1])
	mn, _ := strconv.Atoi(m[2])
	s := 0
	if m[3] != "" {
		s, _ = strconv.Atoi(m[3])
	}
	if h > 23 || mn > 59 || s > 59 {
		return DateTime{}, fmt.Errorf("%w time %q: out of range", ErrInvalid, clock)
	}
	return At(d, h, mn, s), nil
}

// Date returns the day part.
func (t DateTime) Date() Date { return t.day }

// HasTime reports whether a time of day was set.
func (t DateTime) HasTime() bool { return t.timed }

// IsZero reports whether t has neither day nor time.
func (t DateTime) IsZero() bool { return t.day.IsZero() && !t.timed }

// Time returns the canonical time.Time in UTC.
func (t DateTime) Time() time.Time { return t.day.time().Add(t.clock) }

// String formats t as "2006-01-02" or "2006-01-02T15:04:05".
func (t DateTime) String() string {
	if !t.timed {
		return t.day.String()
	}
	return t.Time().Format(DateTimeFormat)
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	str := t.String()
	return json.Marshal(&str)
}

// check that a Date and DateTime are valid json marshaller types.
var _ json.Marshaler = Date{}
var _ json.Marshaler = DateTime{}
