// Package calendar converts between the Gregorian and the Persian (Jalali)
// calendar and validates user-entered Persian dates.
//
// The conversion counts civil days since the Gregorian year 1600, which is
// aligned with Persian year 979. Persian years group into 33-year cycles of
// 8 leap years; a leap year adds a 30th day to Esfand, the twelfth month.
// The algorithm is only defined for Gregorian years above 1600 and Persian
// years above 979; earlier dates are rejected rather than misconverted.
package calendar

import (
	"fmt"
	"time"
)

// Epoch anchors: Persian year 979 begins within Gregorian year 1600.
const (
	gregorianEpochYear = 1600
	persianEpochYear   = 979

	// Day offset between the two epoch day counts (Jalali 979/01/01 falls
	// 79 days into the Gregorian day count of year 1600).
	epochDayShift = 79
)

var (
	gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	persianMonthDays   = [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
)

// Date is a Persian calendar date. Weekday is 0 for Saturday (the first day
// of the Persian week) through 6 for Friday.
type Date struct {
	Year    int
	Month   int
	Day     int
	Weekday int
}

// String renders the date as "YYYY/MM/DD", the wire format used on invoices.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// GDate is a Gregorian calendar date produced by the inverse conversion.
type GDate struct {
	Year  int
	Month int
	Day   int
}

// Time returns the date at midnight UTC.
func (g GDate) Time() time.Time {
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
}

// IsGregorianLeapYear reports whether gy is a Gregorian leap year
// (divisible by 4, except centuries not divisible by 400).
func IsGregorianLeapYear(gy int) bool {
	return (gy%4 == 0 && gy%100 != 0) || gy%400 == 0
}

// IsLeapYear reports whether Persian year jy has a 30-day Esfand.
// A year is leap when the 33-year cycle arithmetic assigns it 366 days.
func IsLeapYear(jy int) bool {
	return daysBeforePersianYear(jy+1)-daysBeforePersianYear(jy) == 366
}

// daysBeforePersianYear counts days from the epoch to the start of jy:
// 365 per year, 8 extra days per full 33-year cycle and one per started
// 4-year block inside the current cycle.
func daysBeforePersianYear(jy int) int {
	y := jy - persianEpochYear
	return 365*y + (y/33)*8 + ((y%33)+3)/4
}

// ToJalali converts a Gregorian date to the Persian calendar.
// gy must be greater than 1600; month and day must form a real date.
func ToJalali(gy, gm, gd int) (Date, error) {
	if gy <= gregorianEpochYear {
		return Date{}, fmt.Errorf("calendar: gregorian year %d out of range (must be > %d)", gy, gregorianEpochYear)
	}
	if gm < 1 || gm > 12 {
		return Date{}, fmt.Errorf("calendar: gregorian month %d out of range", gm)
	}
	if gd < 1 || gd > gregorianDaysInMonth(gy, gm) {
		return Date{}, fmt.Errorf("calendar: day %d invalid for %d/%d", gd, gy, gm)
	}

	gy2 := gy - gregorianEpochYear
	dayNo := 365*gy2 + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400
	for i := 0; i < gm-1; i++ {
		dayNo += gregorianMonthDays[i]
	}
	if gm > 2 && IsGregorianLeapYear(gy) {
		dayNo++
	}
	dayNo += gd - 1

	jDayNo := dayNo - epochDayShift
	jy := persianEpochYear + 33*(jDayNo/12053) // 12053 days per 33-year cycle
	jDayNo %= 12053
	jy += 4 * (jDayNo / 1461) // 1461 days per 4-year block
	jDayNo %= 1461
	if jDayNo >= 366 {
		jy += (jDayNo - 1) / 365
		jDayNo = (jDayNo - 1) % 365
	}

	var jm, jd int
	if jDayNo < 186 { // first six 31-day months
		jm = 1 + jDayNo/31
		jd = 1 + jDayNo%31
	} else {
		jm = 7 + (jDayNo-186)/30
		jd = 1 + (jDayNo-186)%30
	}

	// Saturday is weekday 0 in the Persian week.
	wd := (int(time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC).Weekday()) + 1) % 7

	return Date{Year: jy, Month: jm, Day: jd, Weekday: wd}, nil
}

// ToGregorian converts a Persian date to the Gregorian calendar.
// jy must be greater than 979; month and day must form a real date.
func ToGregorian(jy, jm, jd int) (GDate, error) {
	if jy <= persianEpochYear {
		return GDate{}, fmt.Errorf("calendar: persian year %d out of range (must be > %d)", jy, persianEpochYear)
	}
	if jm < 1 || jm > 12 {
		return GDate{}, fmt.Errorf("calendar: persian month %d out of range", jm)
	}
	if jd < 1 || jd > DaysInMonth(jy, jm) {
		return GDate{}, fmt.Errorf("calendar: day %d invalid for %d/%d", jd, jy, jm)
	}

	jDayNo := daysBeforePersianYear(jy)
	for i := 0; i < jm-1; i++ {
		jDayNo += persianMonthDays[i]
	}
	jDayNo += jd - 1

	gDayNo := jDayNo + epochDayShift
	gy := gregorianEpochYear + 400*(gDayNo/146097) // 146097 days per 400 years
	gDayNo %= 146097

	leap := true
	if gDayNo >= 36525 { // first century of the 400-year block is one day longer
		gDayNo--
		gy += 100 * (gDayNo / 36524)
		gDayNo %= 36524
		if gDayNo >= 365 {
			gDayNo++
		} else {
			leap = false
		}
	}

	gy += 4 * (gDayNo / 1461)
	gDayNo %= 1461
	if gDayNo >= 366 {
		leap = false
		gDayNo--
		gy += gDayNo / 365
		gDayNo %= 365
	}

	gm := 1
	for {
		days := gregorianMonthDays[gm-1]
		if gm == 2 && leap {
			days++
		}
		if gDayNo < days {
			break
		}
		gDayNo -= days
		gm++
	}

	return GDate{Year: gy, Month: gm, Day: gDayNo + 1}, nil
}

// DaysInMonth returns the length of a Persian month: 31 days for months 1-6,
// 30 for months 7-11 and 29 or 30 for Esfand depending on the leap year.
func DaysInMonth(jy, jm int) int {
	if jm == 12 && IsLeapYear(jy) {
		return 30
	}
	return persianMonthDays[jm-1]
}

func gregorianDaysInMonth(gy, gm int) int {
	if gm == 2 && IsGregorianLeapYear(gy) {
		return 29
	}
	return gregorianMonthDays[gm-1]
}
