// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import "sync"

// Holidays is the membership test used to decide whether a date is a
// business day. Weekends are handled separately, a Holidays
// implementation need only report non-weekend holidays, though it is
// harmless to include them.
type Holidays interface {
	Contains(cd CalendarDate) bool
}

// easterSunday returns the date of western Easter Sunday for the given
// year, per the Gauss/Butcher algorithm.
func easterSunday(year int) CalendarDate {
	g := year % 19
	c := year / 100
	h := (c - c/4 - (8*c+13)/25 + 19*g + 15) % 30
	i := h - (h/28)*(1-(29/(h+1))*((21-g)/11))
	j := (year + year/4 + i + 2 - c + c/4) % 7
	p := i - j
	day := 1 + (p+27+(p+6)/40)%31
	month := 3 + (p+26)/30
	return newCalendarDate(year, Month(month), day)
}

// TargetCalendar implements Holidays for the ECB TARGET settlement
// calendar: New Year's Day, Good Friday, Easter Monday, Labour Day and
// the two Christmas holidays. Years are computed on first use and
// cached. The zero value is ready to use and safe for concurrent use.
type TargetCalendar struct {
	mu    sync.Mutex
	years map[int]CalendarDateList
}

// Contains returns true if the date is a TARGET holiday.
func (tc *TargetCalendar) Contains(cd CalendarDate) bool {
	return tc.holidays(cd.Year()).Contains(cd)
}

func (tc *TargetCalendar) holidays(year int) CalendarDateList {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if days, ok := tc.years[year]; ok {
		return days
	}
	easter := easterSunday(year)
	days := CalendarDateList{
		newCalendarDate(year, 1, 1),
		easter.AddDays(-2),
		easter.AddDays(1),
		newCalendarDate(year, 5, 1),
		newCalendarDate(year, 12, 25),
		newCalendarDate(year, 12, 26),
	}
	if tc.years == nil {
		tc.years = map[int]CalendarDateList{}
	}
	tc.years[year] = days
	return days
}
