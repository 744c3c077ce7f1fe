// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package businessdate provides support for working with the calendar
// dates and date offsets used in financial schedule generation: compact
// period literals such as "1Y3M4D" or "2B", business day adjustment
// conventions applied against a holiday calendar, and day count
// conventions for computing year fractions.
package businessdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int.
type Month time.Month

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns the number of days in the given year.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// CalendarDate represents a year, month and day as a single comparable
// value. The zero value is not a valid date. Dates are proleptic
// Gregorian and always valid, the constructors clamp or reject out of
// range days.
type CalendarDate uint32

// NewCalendarDate returns the CalendarDate for the given year, month and
// day. Days that exceed those for the given month are silently treated
// as the last day of that month, days of less than 1 as the first.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	if day < 1 {
		day = 1
	}
	if dm := DaysInMonth(year, month); day > dm {
		day = dm
	}
	return newCalendarDate(year, month, day)
}

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(year)<<9 | CalendarDate(month)<<5 | CalendarDate(day)
}

// CalendarDateFromTime returns the CalendarDate for the given time,
// ignoring its time of day and location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return newCalendarDate(when.Year(), Month(when.Month()), when.Day())
}

// CalendarDateFromInt parses a date in the numeric form 20060102.
func CalendarDateFromInt(yyyymmdd int) (CalendarDate, error) {
	year, month, day := yyyymmdd/10000, (yyyymmdd/100)%100, yyyymmdd%100
	if !validYMD(year, Month(month), day) {
		return 0, fmt.Errorf("invalid date: %08d: %w", yyyymmdd, ErrFormat)
	}
	return newCalendarDate(year, Month(month), day), nil
}

func validYMD(year int, month Month, day int) bool {
	return year >= 1 && month >= 1 && month <= 12 &&
		day >= 1 && day <= DaysInMonth(year, month)
}

// Year returns the year of the date.
func (cd CalendarDate) Year() int {
	return int(cd >> 9)
}

// Month returns the month of the date.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 5 & 0xf)
}

// Day returns the day of the month of the date.
func (cd CalendarDate) Day() int {
	return int(cd & 0x1f)
}

// YMD returns the year, month and day of the date.
func (cd CalendarDate) YMD() (int, Month, int) {
	return cd.Year(), cd.Month(), cd.Day()
}

// Int returns the date in the numeric form 20060102.
func (cd CalendarDate) Int() int {
	return cd.Year()*10000 + int(cd.Month())*100 + cd.Day()
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d%02d%02d", cd.Year(), cd.Month(), cd.Day())
}

// Time returns the date at midnight UTC.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of the date.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time().Weekday()
}

// DayOfYear returns the day of the year for the date as 1-365 for
// non-leap years and 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	if IsLeap(cd.Year()) {
		return dayOfYearLeap[cd.Month()-1] + cd.Day()
	}
	return dayOfYear[cd.Month()-1] + cd.Day()
}

// dayNumber returns the number of days since Dec 31 of year 0, so that
// Jan 1 of year 1 is day 1. Differences of day numbers are calendar day
// counts.
func (cd CalendarDate) dayNumber() int {
	y := cd.Year() - 1
	return y*365 + y/4 - y/100 + y/400 + cd.DayOfYear()
}

// DaysBetween returns the number of calendar days from start to end,
// negative when end is before start.
func DaysBetween(start, end CalendarDate) int {
	return end.dayNumber() - start.dayNumber()
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.YMD()
	if month == 12 && day == 31 {
		return newCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return newCalendarDate(year, month+1, 1)
	}
	return newCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.YMD()
	if month == 1 && day == 1 {
		return newCalendarDate(year-1, 12, 31)
	}
	if day <= 1 {
		return newCalendarDate(year, month-1, DaysInMonth(year, month-1))
	}
	return newCalendarDate(year, month, day-1)
}

// AddDays returns the date n calendar days after the date, or before it
// for negative n.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.Time().AddDate(0, 0, n))
}

// AddMonths returns the date n months after the date, or before it for
// negative n. Days that exceed those of the resulting month are clamped
// to the last day of that month, eg. Jan 31 plus one month is the last
// day of Feb.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	year, month, day := cd.YMD()
	m := int(month) + n
	for m > 12 {
		year++
		m -= 12
	}
	for m < 1 {
		year--
		m += 12
	}
	if dm := DaysInMonth(year, Month(m)); day > dm {
		day = dm
	}
	return newCalendarDate(year, Month(m), day)
}

// AddYears returns the date n years after the date, or before it for
// negative n. Feb 29 is clamped to Feb 28 for non-leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	year, month, day := cd.YMD()
	year += n
	if dm := DaysInMonth(year, month); day > dm {
		day = dm
	}
	return newCalendarDate(year, month, day)
}

// StartOfMonth returns the first calendar day of the date's month.
func (cd CalendarDate) StartOfMonth() CalendarDate {
	return newCalendarDate(cd.Year(), cd.Month(), 1)
}

// EndOfMonth returns the last calendar day of the date's month.
func (cd CalendarDate) EndOfMonth() CalendarDate {
	year, month, _ := cd.YMD()
	return newCalendarDate(year, month, DaysInMonth(year, month))
}

// endOfQuarterMonth returns the last month of the quarter containing
// the given month, ie. 3, 6, 9 or 12.
func endOfQuarterMonth(month Month) Month {
	for month%3 != 0 {
		month++
	}
	return month
}

// diffYMD returns years, months and days such that adding first the
// years and months and then the days to start yields end. The three are
// either all non-negative or all non-positive. The maximal whole month
// offset not overshooting end is found first, then the residual days,
// so the reverse difference is generally not the plain negation.
func diffYMD(start, end CalendarDate) (years, months, days int) {
	if end < start {
		years = start.Year() - end.Year()
		months = int(start.Month()) - int(end.Month())
		for months < 0 {
			years--
			months += 12
		}
		s := start.AddYears(-years).AddMonths(-months)
		if DaysBetween(end, s) < 0 {
			months--
			if months < 0 {
				years--
				months += 12
			}
			s = start.AddYears(-years).AddMonths(-months)
		}
		return -years, -months, -DaysBetween(end, s)
	}
	years = end.Year() - start.Year()
	months = int(end.Month()) - int(start.Month())
	for months < 0 {
		years--
		months += 12
	}
	s := start.AddYears(years).AddMonths(months)
	if DaysBetween(s, end) < 0 {
		months--
		if months < 0 {
			years--
			months += 12
		}
		s = start.AddYears(years).AddMonths(months)
	}
	return years, months, DaysBetween(s, end)
}

const expectedDateFormats = "20060102, 2006-01-02, 02.01.2006 or 01/02/2006"

// Parse a date in the formats '20060102', '2006-01-02', '02.01.2006'
// or '01/02/2006'.
func (cd *CalendarDate) Parse(val string) error {
	date, err := ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = date
	return nil
}

// ParseCalendarDate parses a date in the formats accepted by
// CalendarDate.Parse with error checking for valid month and day.
func ParseCalendarDate(val string) (CalendarDate, error) {
	switch {
	case strings.Contains(val, "-"):
		return parseDelimited(val, "-", 0, 1, 2)
	case strings.Contains(val, "."):
		return parseDelimited(val, ".", 2, 1, 0)
	case strings.Contains(val, "/"):
		return parseDelimited(val, "/", 2, 0, 1)
	}
	if len(val) != 8 {
		return 0, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrFormat)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrFormat)
	}
	return CalendarDateFromInt(n)
}

func parseDelimited(val, sep string, yi, mi, di int) (CalendarDate, error) {
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrFormat)
	}
	year, yerr := strconv.Atoi(parts[yi])
	month, merr := strconv.Atoi(parts[mi])
	day, derr := strconv.Atoi(parts[di])
	if yerr != nil || merr != nil || derr != nil || !validYMD(year, Month(month), day) {
		return 0, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrFormat)
	}
	return newCalendarDate(year, Month(month), day), nil
}

// CalendarDateList is a list of dates, not necessarily sorted.
type CalendarDateList []CalendarDate

// Parse a comma separated list of dates in the formats accepted by
// CalendarDate.Parse.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	dates := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var date CalendarDate
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		dates = append(dates, date)
	}
	*cdl = dates
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains the given date.
func (cdl CalendarDateList) Contains(cd CalendarDate) bool {
	for _, d := range cdl {
		if d == cd {
			return true
		}
	}
	return false
}
