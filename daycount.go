// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import (
	"fmt"
	"math"
)

// DayCount names a day count convention for computing year fractions.
type DayCount int

const (
	// ActAct counts actual days over actual days per year, split at
	// year boundaries, per ISDA.
	ActAct DayCount = iota
	// ActActICMA counts actual days over the actual length of the
	// coupon reference period times the coupon frequency, per ICMA.
	ActActICMA
	// Act360 counts actual days over a 360 day year.
	Act360
	// Act365 counts actual days over a 365 day year.
	Act365
	// Act36525 counts actual days over a 365.25 day year.
	Act36525
	// Thirty360 counts 30 day months over a 360 day year, per the US
	// bond basis rule.
	Thirty360
	// ThirtyE360 counts 30 day months over a 360 day year, per the
	// Eurobond rule.
	ThirtyE360
	// ThirtyE360I is the Italian variant of ThirtyE360, treating the
	// last days of February as the 30th.
	ThirtyE360I
	// ThirtyE360G is the German variant, also known as 30/360 ISDA.
	ThirtyE360G
)

var dayCountNames = map[DayCount]string{
	ActAct:      "act_act",
	ActActICMA:  "act_act_icma",
	Act360:      "act_360",
	Act365:      "act_365",
	Act36525:    "act_36525",
	Thirty360:   "30_360",
	ThirtyE360:  "30e_360",
	ThirtyE360I: "30e_360_i",
	ThirtyE360G: "30e_360_g",
}

func (dc DayCount) String() string {
	if name, ok := dayCountNames[dc]; ok {
		return name
	}
	return fmt.Sprintf("daycount(%d)", int(dc))
}

var dayCountAliases = map[string]DayCount{
	"actact":     ActAct,
	"actactisda": ActAct,
	"actacticma": ActActICMA,
	"actactisma": ActActICMA,
	"act360":     Act360,
	"act365":     Act365,
	"act36525":   Act36525,
	"30360":      Thirty360,
	"30e360":     ThirtyE360,
	"30e360i":    ThirtyE360I,
	"30e360g":    ThirtyE360G,
	"30360isda":  ThirtyE360G,
}

// Parse a day count keyword, case insensitively and ignoring '_', '-'
// and spaces, eg. 'act_act', 'ACT/360' written as 'act_360', '30E_360'.
func (dc *DayCount) Parse(val string) error {
	count, ok := dayCountAliases[normalizeKeyword(val)]
	if !ok {
		return fmt.Errorf("day count %q: %w", val, ErrUnsupportedConvention)
	}
	*dc = count
	return nil
}

// ParseDayCount parses a day count keyword as per DayCount.Parse.
func ParseDayCount(val string) (DayCount, error) {
	var dc DayCount
	err := dc.Parse(val)
	return dc, err
}

// Days returns the actual number of calendar days from start to end.
func (dc DayCount) Days(start, end CalendarDate) int {
	return DaysBetween(start, end)
}

// YearFraction returns the fraction of a year from start to end under
// the day count convention. For all conventions
// YearFraction(b, a) == -YearFraction(a, b).
func (dc DayCount) YearFraction(start, end CalendarDate) float64 {
	if end < start {
		return -dc.YearFraction(end, start)
	}
	switch dc {
	case ActActICMA:
		return actActICMA(start, end)
	case Act360:
		return float64(DaysBetween(start, end)) / 360
	case Act365:
		return float64(DaysBetween(start, end)) / 365
	case Act36525:
		return float64(DaysBetween(start, end)) / 365.25
	case Thirty360:
		return thirty360(start, end)
	case ThirtyE360:
		return thirtyE360(start, end)
	case ThirtyE360I:
		return thirtyE360Italian(start, end)
	case ThirtyE360G:
		return thirtyE360German(start, end)
	}
	return actActISDA(start, end)
}

// actActISDA splits the period at year boundaries and counts the days
// in each year against that year's actual length.
func actActISDA(start, end CalendarDate) float64 {
	if start.Year() == end.Year() {
		return float64(DaysBetween(start, end)) / float64(DaysInYear(start.Year()))
	}
	startRest := float64(DaysBetween(start, newCalendarDate(start.Year(), 12, 31)) + 1)
	endRest := float64(DaysBetween(newCalendarDate(end.Year(), 1, 1), end))
	between := float64(end.Year() - start.Year() - 1)
	return between +
		startRest/float64(DaysInYear(start.Year())) +
		endRest/float64(DaysInYear(end.Year()))
}

func days360(y1 int, m1 Month, d1 int, y2 int, m2 Month, d2 int) float64 {
	return float64(360*(y2-y1)+30*(int(m2)-int(m1))+(d2-d1)) / 360
}

func thirty360(start, end CalendarDate) float64 {
	y1, m1, d1 := start.YMD()
	y2, m2, d2 := end.YMD()
	if d1 > 30 {
		d1 = 30
	}
	if d1 == 30 && d2 == 31 {
		d2 = 30
	}
	return days360(y1, m1, d1, y2, m2, d2)
}

func thirtyE360(start, end CalendarDate) float64 {
	y1, m1, d1 := start.YMD()
	y2, m2, d2 := end.YMD()
	if d1 > 30 {
		d1 = 30
	}
	if d2 > 30 {
		d2 = 30
	}
	return days360(y1, m1, d1, y2, m2, d2)
}

func thirtyE360Italian(start, end CalendarDate) float64 {
	y1, m1, d1 := start.YMD()
	y2, m2, d2 := end.YMD()
	if d1 == 31 || (m1 == 2 && d1 >= 28) {
		d1 = 30
	}
	if d2 == 31 || (m2 == 2 && d2 >= 28) {
		d2 = 30
	}
	return days360(y1, m1, d1, y2, m2, d2)
}

func thirtyE360German(start, end CalendarDate) float64 {
	y1, m1, d1 := start.YMD()
	y2, m2, d2 := end.YMD()
	if d1 > 30 || (m1 == 2 && d1 == DaysInFeb(y1)) {
		d1 = 30
	}
	if d2 > 30 || (m2 == 2 && d2 == DaysInFeb(y2)) {
		d2 = 30
	}
	return days360(y1, m1, d1, y2, m2, d2)
}

// gatherFrequency infers the coupon frequency from the length of the
// reference period, snapping to annual, semi-annual, quarterly or
// monthly.
func gatherFrequency(start, end CalendarDate) int {
	months := int(math.Round(12 * float64(DaysBetween(start, end)) / 365))
	if months < 1 {
		months = 1
	}
	freq := 12 / months
	switch freq {
	case 1, 2, 4, 12:
		return freq
	}
	if freq < 6 {
		return 4
	}
	return 12
}

// actActICMA treats [start, end] as a coupon period, infers the coupon
// frequency from its length and measures the actual days of each
// reference period against that period's actual length, scaled by the
// frequency. Reference periods roll backwards from end.
func actActICMA(start, end CalendarDate) float64 {
	days := DaysBetween(start, end)
	if days == 0 {
		return 0
	}
	freq := gatherFrequency(start, end)
	stepMonths := 12 / freq
	lo := start.AddMonths(-stepMonths)
	hi := end.AddMonths(stepMonths)

	// The wave of reference dates anchored at end, clipped to [lo, hi).
	// Only wave points appear, so the leading reference period always
	// overlaps [start, end].
	var refs []CalendarDate
	for k := 0; ; k++ {
		d := end.AddMonths(stepMonths * k)
		if d >= hi {
			break
		}
		refs = append(refs, d)
	}
	for k := -1; ; k-- {
		d := end.AddMonths(stepMonths * k)
		if d < lo {
			break
		}
		refs = append([]CalendarDate{d}, refs...)
	}

	sum := 0.0
	for i := 1; i < len(refs); i++ {
		s, e := refs[i-1], refs[i]
		if start <= s && e <= end {
			sum += 1 / float64(freq)
			continue
		}
		os, oe := s, e
		if start > os {
			os = start
		}
		if end < oe {
			oe = end
		}
		sum += float64(DaysBetween(os, oe)) / float64(DaysBetween(s, e)) / float64(freq)
	}
	return sum
}
