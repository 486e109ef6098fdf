package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Application-level sanity bounds for user-entered years. These are not
// calendar limits; they keep typos like 3403 out of stored invoices.
const (
	MinYear = 1300
	MaxYear = 1500
)

// MonthNames are the twelve Persian month names, Farvardin first.
var MonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// WeekdayNames are the Persian weekday names, Saturday first.
var WeekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

var datePattern = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)

// FormatShort renders d as "YYYY/MM/DD".
func FormatShort(d Date) string {
	return d.String()
}

// FormatLong renders d as "<weekday> <day> <month> <year>",
// e.g. "چهارشنبه 1 فروردین 1403".
func FormatLong(d Date) string {
	return fmt.Sprintf("%s %d %s %d", WeekdayNames[d.Weekday], d.Day, MonthNames[d.Month-1], d.Year)
}

// Parse splits a "YYYY/MM/DD" string into its components. It checks shape
// only, not calendar validity; use Validate for the full check.
func Parse(s string) (year, month, day int, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])
	return year, month, day, true
}

// Validate reports whether s is a well-formed, real Persian date within the
// accepted year range. It returns false for every violation and never panics;
// malformed dates are an expected input condition, not an error.
func Validate(s string) bool {
	year, month, day, ok := Parse(s)
	if !ok {
		return false
	}
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return false
	}
	return true
}

// FromTime converts a wall-clock instant to its Persian calendar date.
func FromTime(t time.Time) Date {
	d, err := ToJalali(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		// Unreachable for any contemporary clock; the conversion domain
		// starts in 1601.
		return Date{}
	}
	return d
}

// Today returns the current Persian date.
func Today() Date {
	return FromTime(time.Now())
}
