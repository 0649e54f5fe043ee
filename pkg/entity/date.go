package entity

import "time"

const DateLayout = "2006-01-02"

// Date is a calendar day in ISO YYYY-MM-DD form.
type Date string

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// Time parses the day as UTC midnight and reports false for malformed values.
func (d Date) Time() (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, string(d), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d Date) Valid() bool {
	_, ok := d.Time()
	return ok
}

func (d Date) String() string {
	return string(d)
}

// StartOfDay truncates t to the beginning of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
