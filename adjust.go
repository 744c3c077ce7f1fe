// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import (
	"fmt"
	"strings"
	"time"
)

// Convention names a business day adjustment rule.
type Convention int

const (
	// NoAdjust leaves the date unchanged.
	NoAdjust Convention = iota
	// Follow moves to the next business day.
	Follow
	// Previous moves to the preceding business day.
	Previous
	// ModFollow moves to the next business day unless that crosses a
	// month boundary, in which case it moves to the preceding one.
	ModFollow
	// ModPrevious moves to the preceding business day unless that
	// crosses a month boundary, in which case it moves to the next one.
	ModPrevious
	// StartOfMonth moves to the first business day of the month.
	StartOfMonth
	// EndOfMonth moves to the last business day of the month.
	EndOfMonth
	// IMM moves to the third Wednesday of the last month of the
	// quarter, the standard futures delivery date.
	IMM
	// CDSIMM moves to the 20th of the last month of the quarter,
	// rolled forward to a business day, the standard CDS roll date.
	CDSIMM
)

var conventionNames = map[Convention]string{
	NoAdjust:     "no",
	Follow:       "follow",
	Previous:     "previous",
	ModFollow:    "modfollow",
	ModPrevious:  "modprevious",
	StartOfMonth: "startofmonth",
	EndOfMonth:   "endofmonth",
	IMM:          "imm",
	CDSIMM:       "cdsimm",
}

func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("convention(%d)", int(c))
}

var conventionAliases = map[string]Convention{
	"":             NoAdjust,
	"no":           NoAdjust,
	"none":         NoAdjust,
	"follow":       Follow,
	"flw":          Follow,
	"previous":     Previous,
	"prev":         Previous,
	"prv":          Previous,
	"modfollow":    ModFollow,
	"modflw":       ModFollow,
	"modprevious":  ModPrevious,
	"modprev":      ModPrevious,
	"modprv":       ModPrevious,
	"startofmonth": StartOfMonth,
	"som":          StartOfMonth,
	"endofmonth":   EndOfMonth,
	"eom":          EndOfMonth,
	"imm":          IMM,
	"cdsimm":       CDSIMM,
	"cds":          CDSIMM,
}

// normalizeKeyword lowercases a convention or day count keyword and
// strips the separators commonly used in them.
func normalizeKeyword(val string) string {
	val = strings.ToLower(val)
	for _, sep := range []string{"_", "-", " ", "."} {
		val = strings.ReplaceAll(val, sep, "")
	}
	return val
}

// Parse a convention keyword, case insensitively and ignoring '_', '-'
// and spaces, eg. 'mod_follow', 'ModFollow' and 'modflw' all parse to
// ModFollow.
func (c *Convention) Parse(val string) error {
	conv, ok := conventionAliases[normalizeKeyword(val)]
	if !ok {
		return fmt.Errorf("convention %q: %w", val, ErrUnsupportedConvention)
	}
	*c = conv
	return nil
}

// ParseConvention parses a convention keyword as per Convention.Parse.
func ParseConvention(val string) (Convention, error) {
	var c Convention
	err := c.Parse(val)
	return c, err
}

// IsBusinessDay returns true if the date is neither a weekend day nor
// a member of the holiday calendar.
func IsBusinessDay(cd CalendarDate, holidays Holidays) bool {
	if wd := cd.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !holidays.Contains(cd)
}

// AddBusinessDays returns the date n business days after the date, or
// before it for negative n. The date itself is not counted.
func AddBusinessDays(cd CalendarDate, n int, holidays Holidays) CalendarDate {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for ; n > 0; n-- {
		cd = cd.AddDays(step)
		for !IsBusinessDay(cd, holidays) {
			cd = cd.AddDays(step)
		}
	}
	return cd
}

// Adjust applies the given convention to the date against the given
// holiday calendar. All conventions are idempotent.
func Adjust(cd CalendarDate, conv Convention, holidays Holidays) CalendarDate {
	switch conv {
	case Follow:
		return adjustFollow(cd, holidays)
	case Previous:
		return adjustPrevious(cd, holidays)
	case ModFollow:
		return adjustModFollow(cd, holidays)
	case ModPrevious:
		return adjustModPrevious(cd, holidays)
	case StartOfMonth:
		return adjustFollow(cd.StartOfMonth(), holidays)
	case EndOfMonth:
		return adjustPrevious(cd.EndOfMonth(), holidays)
	case IMM:
		return adjustIMM(cd)
	case CDSIMM:
		return adjustFollow(newCalendarDate(cd.Year(), endOfQuarterMonth(cd.Month()), 20), holidays)
	}
	return cd
}

func adjustFollow(cd CalendarDate, holidays Holidays) CalendarDate {
	for !IsBusinessDay(cd, holidays) {
		cd = cd.Tomorrow()
	}
	return cd
}

func adjustPrevious(cd CalendarDate, holidays Holidays) CalendarDate {
	for !IsBusinessDay(cd, holidays) {
		cd = cd.Yesterday()
	}
	return cd
}

func adjustModFollow(cd CalendarDate, holidays Holidays) CalendarDate {
	if adj := adjustFollow(cd, holidays); adj.Month() == cd.Month() {
		return adj
	}
	return adjustPrevious(cd, holidays)
}

func adjustModPrevious(cd CalendarDate, holidays Holidays) CalendarDate {
	if adj := adjustPrevious(cd, holidays); adj.Month() == cd.Month() {
		return adj
	}
	return adjustFollow(cd, holidays)
}

// adjustIMM returns the third Wednesday of the last month of the
// date's quarter. The third Wednesday falls on or after the 15th.
func adjustIMM(cd CalendarDate) CalendarDate {
	imm := newCalendarDate(cd.Year(), endOfQuarterMonth(cd.Month()), 15)
	for imm.Weekday() != time.Wednesday {
		imm = imm.Tomorrow()
	}
	return imm
}
