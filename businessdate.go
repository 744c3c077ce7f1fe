// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Process-wide defaults, intended to be set once at startup and read
// thereafter. Callers needing per-call control pass explicit arguments
// to Adjust, AddBusinessDays and DayCount.YearFraction instead.
var (
	defaultHolidays   Holidays = &TargetCalendar{}
	defaultConvention          = NoAdjust
	defaultDayCount            = Act365
	baseDateOverride  CalendarDate
)

// SetDefaultHolidays sets the process-wide holiday calendar used by
// BusinessDate operations. A nil value restores the built-in TARGET
// calendar.
func SetDefaultHolidays(h Holidays) {
	if h == nil {
		h = &TargetCalendar{}
	}
	defaultHolidays = h
}

// DefaultHolidays returns the process-wide holiday calendar.
func DefaultHolidays() Holidays {
	return defaultHolidays
}

// SetDefaultConvention sets the process-wide adjustment convention.
func SetDefaultConvention(c Convention) {
	defaultConvention = c
}

// DefaultConvention returns the process-wide adjustment convention.
func DefaultConvention() Convention {
	return defaultConvention
}

// SetDefaultDayCount sets the process-wide day count convention.
func SetDefaultDayCount(dc DayCount) {
	defaultDayCount = dc
}

// DefaultDayCount returns the process-wide day count convention.
func DefaultDayCount() DayCount {
	return defaultDayCount
}

// SetBaseDate overrides the base date used when a literal carries no
// date of its own, normally the current day. The zero CalendarDate
// restores the wall clock.
func SetBaseDate(cd CalendarDate) {
	baseDateOverride = cd
}

// BaseDate returns the process-wide base date.
func BaseDate() CalendarDate {
	if baseDateOverride != 0 {
		return baseDateOverride
	}
	return CalendarDateFromTime(time.Now())
}

// BusinessDate is a CalendarDate together with the business calendar
// operations, evaluated against the process-wide defaults. The explicit
// engine functions Adjust, AddBusinessDays and the DayCount methods
// accept per-call arguments instead. BusinessDates order and compare
// naturally.
type BusinessDate CalendarDate

// Today returns the process-wide base date as a BusinessDate.
func Today() BusinessDate {
	return BusinessDate(BaseDate())
}

// Date returns the underlying CalendarDate.
func (bd BusinessDate) Date() CalendarDate {
	return CalendarDate(bd)
}

func (bd BusinessDate) String() string {
	return CalendarDate(bd).String()
}

// Int returns the date in the numeric form 20060102.
func (bd BusinessDate) Int() int {
	return CalendarDate(bd).Int()
}

// applyPeriod advances the date by the period, years first, then
// months, then days, with business days stepped against the holiday
// calendar.
func applyPeriod(cd CalendarDate, p Period, holidays Holidays) CalendarDate {
	cd = cd.AddYears(p.Years).AddMonths(p.Months).AddDays(p.Days)
	if p.BusinessDays != 0 {
		cd = AddBusinessDays(cd, p.BusinessDays, holidays)
	}
	return cd
}

// Add returns the date advanced by the period. A business day period
// steps over the default holiday calendar.
func (bd BusinessDate) Add(p Period) BusinessDate {
	return BusinessDate(applyPeriod(CalendarDate(bd), p, DefaultHolidays()))
}

// Sub returns the date moved back by the period.
func (bd BusinessDate) Sub(p Period) BusinessDate {
	return bd.Add(p.Neg())
}

// Diff returns the classical period from start to the date, so that
// start.Add(p) equals the date. Diff is not sign-symmetric: the
// difference taken in reverse order is generally a different magnitude,
// not the plain negation.
func (bd BusinessDate) Diff(start BusinessDate) Period {
	years, months, days := diffYMD(CalendarDate(start), CalendarDate(bd))
	return Period{Years: years, Months: months, Days: days}
}

// Adjust applies the convention against the default holiday calendar.
func (bd BusinessDate) Adjust(conv Convention) BusinessDate {
	return BusinessDate(Adjust(CalendarDate(bd), conv, DefaultHolidays()))
}

// IsBusinessDay returns true if the date is a business day under the
// default holiday calendar.
func (bd BusinessDate) IsBusinessDay() bool {
	return IsBusinessDay(CalendarDate(bd), DefaultHolidays())
}

// YearFraction returns the year fraction from the date to end under
// the default day count convention.
func (bd BusinessDate) YearFraction(end BusinessDate) float64 {
	return DefaultDayCount().YearFraction(CalendarDate(bd), CalendarDate(end))
}

// New evaluates a business date literal. A literal is any date format
// accepted by ParseCalendarDate, a period relative to the process-wide
// base date, or a combined form
//
//	[<n>B][convention][classical period][<n>B][convention][date]
//
// evaluated left to right against the default holiday calendar: the
// trailing date (or the base date when absent) is stepped by the
// leading business days, adjusted by a convention written before the
// classical period, stepped by the classical period and the trailing
// business days, and adjusted by a convention written after them. A
// convention accompanying a classical period without a business day
// segment is ambiguous and ignored; a bare convention with no period at
// all applies. For example, '0B1D20160504' is May 5 2016 and 'eom' the
// last business day of the current month.
func New(literal string) (BusinessDate, error) {
	s := strings.TrimSpace(literal)
	if s == "" {
		return Today(), nil
	}
	if cd, err := ParseCalendarDate(s); err == nil {
		return BusinessDate(cd), nil
	}
	holidays := DefaultHolidays()
	base, head := BaseDate(), s
	for _, n := range []int{10, 8} {
		if len(head) <= n {
			continue
		}
		if cd, err := ParseCalendarDate(head[len(head)-n:]); err == nil {
			base, head = cd, head[:len(head)-n]
			break
		}
	}
	if p, err := ParsePeriod(head); err == nil {
		return BusinessDate(applyPeriod(base, p, holidays)), nil
	}
	return evalCombined(head, base, holidays)
}

// MustNew is like New but panics on error, for use with literals known
// to be well formed.
func MustNew(literal string) BusinessDate {
	bd, err := New(literal)
	if err != nil {
		panic(err)
	}
	return bd
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// convRun returns the length of the leading run of convention keyword
// characters.
func convRun(s string) int {
	i := 0
	for i < len(s) && (isAlpha(s[i]) || s[i] == '_' || s[i] == '-') {
		i++
	}
	return i
}

// evalCombined evaluates the combined literal form with an embedded
// convention keyword. The position of the keyword determines when the
// adjustment applies: after the business day step when written before
// the classical period, after the classical step when written after it.
func evalCombined(head string, base CalendarDate, holidays Holidays) (BusinessDate, error) {
	rest := head
	negative := false
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}

	// Leading business day segment.
	hasLead, leadDays := false, 0
	if i := leadingDigits(rest); i > 0 && i < len(rest) && rest[i]|0x20 == 'b' {
		leadDays, _ = strconv.Atoi(rest[:i])
		hasLead = true
		rest = rest[i+1:]
		if negative {
			leadDays, negative = -leadDays, false
		}
	}

	hasPre, preConv := false, NoAdjust
	if err := interiorSign(head, rest); err != nil {
		return 0, err
	}
	if n := convRun(rest); n > 0 {
		conv, err := ParseConvention(rest[:n])
		if err != nil {
			return 0, err
		}
		hasPre, preConv, rest = true, conv, rest[n:]
	}

	// Classical segment, a run of integer and unit tokens. A business
	// day token ends the segment and is consumed separately below.
	end := 0
	for end < len(rest) && isDigit(rest[end]) {
		j := end + leadingDigits(rest[end:])
		if j >= len(rest) || !isAlpha(rest[j]) {
			return 0, fmt.Errorf("invalid literal %q: %w", head, ErrFormat)
		}
		if rest[j]|0x20 == 'b' {
			break
		}
		end = j + 1
	}
	hasClassical := end > 0
	sign := ""
	if negative && hasClassical {
		sign = "-"
	}
	classical, err := ParsePeriod(sign + rest[:end])
	if err != nil {
		return 0, err
	}
	rest = rest[end:]

	// Trailing business day segment.
	hasTail, tailDays := false, 0
	if i := leadingDigits(rest); i > 0 && i < len(rest) && rest[i]|0x20 == 'b' {
		tailDays, _ = strconv.Atoi(rest[:i])
		hasTail = true
		rest = rest[i+1:]
		if negative && !hasClassical {
			tailDays = -tailDays
		}
	}

	hasPost, postConv := false, NoAdjust
	if err := interiorSign(head, rest); err != nil {
		return 0, err
	}
	if n := convRun(rest); n > 0 {
		conv, err := ParseConvention(rest[:n])
		if err != nil {
			return 0, err
		}
		hasPost, postConv, rest = true, conv, rest[n:]
	}
	if len(rest) > 0 {
		return 0, fmt.Errorf("invalid literal %q: %w", head, ErrFormat)
	}

	// A convention accompanying a classical period without a business
	// day segment has no well defined adjustment point and is ignored.
	applies := hasLead || hasTail || !hasClassical
	cd := base
	if hasLead {
		cd = AddBusinessDays(cd, leadDays, holidays)
	}
	if hasPre && applies {
		cd = Adjust(cd, preConv, holidays)
	}
	cd = applyPeriod(cd, classical, holidays)
	if hasTail {
		cd = AddBusinessDays(cd, tailDays, holidays)
	}
	if hasPost && applies {
		cd = Adjust(cd, postConv, holidays)
	}
	return BusinessDate(cd), nil
}

// interiorSign rejects a sign character embedded within a literal;
// only a single leading sign is allowed.
func interiorSign(head, rest string) error {
	if len(rest) > 1 && (rest[0] == '-' || rest[0] == '+') && isDigit(rest[1]) {
		return fmt.Errorf("invalid literal %q: %w", head, ErrSign)
	}
	return nil
}

func leadingDigits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}
