// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import (
	"fmt"
	"strconv"
	"strings"
)

// monthLens28 and monthLens29 are the month lengths used for bounding
// the day span of a period, with February at its shortest and longest.
var (
	monthLens28 = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	monthLens29 = []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// Period represents a date offset expressed in years, months and days,
// or in business days. The two kinds are mutually exclusive: a period
// has either calendar fields or business days, never both. All fields
// of a normalized period share the same sign.
type Period struct {
	Years        int
	Months       int
	Days         int
	BusinessDays int
}

// NewPeriod returns the normalized period for the given years, months
// and days. Months in excess of 11 are folded into years. All nonzero
// fields must share one sign after folding.
func NewPeriod(years, months, days int) (Period, error) {
	p := Period{Years: years, Months: months, Days: days}
	p.normalize()
	if !p.signConsistent() {
		return Period{}, fmt.Errorf("period %dY %dM %dD: %w", years, months, days, ErrSign)
	}
	return p, nil
}

// NewBusinessPeriod returns a period of the given number of business
// days.
func NewBusinessPeriod(businessDays int) Period {
	return Period{BusinessDays: businessDays}
}

func (p *Period) normalize() {
	p.Years += p.Months / 12
	p.Months %= 12
}

// IsZero returns true for a period with no effect.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0 && p.BusinessDays == 0
}

// HasBusinessDays returns true if the period is expressed in business
// days.
func (p Period) HasBusinessDays() bool {
	return p.BusinessDays != 0
}

func (p Period) isNegative() bool {
	return p.Years < 0 || p.Months < 0 || p.Days < 0 || p.BusinessDays < 0
}

// signConsistent returns true if all nonzero fields share one sign.
func (p Period) signConsistent() bool {
	neg, pos := false, false
	for _, f := range []int{p.Years, p.Months, p.Days, p.BusinessDays} {
		if f < 0 {
			neg = true
		}
		if f > 0 {
			pos = true
		}
	}
	return !(neg && pos)
}

func (p Period) String() string {
	if p.BusinessDays != 0 {
		return strconv.Itoa(p.BusinessDays) + "B"
	}
	var out strings.Builder
	if p.isNegative() {
		out.WriteString("-")
	}
	abs := p.Abs()
	if abs.Years != 0 {
		fmt.Fprintf(&out, "%dY", abs.Years)
	}
	if abs.Months != 0 {
		fmt.Fprintf(&out, "%dM", abs.Months)
	}
	if abs.Days != 0 {
		fmt.Fprintf(&out, "%dD", abs.Days)
	}
	if out.Len() == 0 {
		return "0D"
	}
	return out.String()
}

// Neg returns the period with all fields negated.
func (p Period) Neg() Period {
	return Period{-p.Years, -p.Months, -p.Days, -p.BusinessDays}
}

// Abs returns the period with all fields non-negative.
func (p Period) Abs() Period {
	if p.isNegative() {
		return p.Neg()
	}
	return p
}

// Mul returns the period with all fields multiplied by n, renormalized.
func (p Period) Mul(n int) Period {
	m := Period{p.Years * n, p.Months * n, p.Days * n, p.BusinessDays * n}
	m.normalize()
	return m
}

// Add returns the field-wise sum of the two periods. It is an error to
// combine a business day period with a calendar period.
func (p Period) Add(q Period) (Period, error) {
	if p.HasBusinessDays() && (q.Years != 0 || q.Months != 0 || q.Days != 0) ||
		q.HasBusinessDays() && (p.Years != 0 || p.Months != 0 || p.Days != 0) {
		return Period{}, fmt.Errorf("cannot add %v and %v: %w", p, q, ErrMixedKind)
	}
	s := Period{p.Years + q.Years, p.Months + q.Months, p.Days + q.Days, p.BusinessDays + q.BusinessDays}
	s.normalize()
	if !s.signConsistent() {
		return Period{}, fmt.Errorf("cannot add %v and %v: %w", p, q, ErrSign)
	}
	return s, nil
}

// Sub returns p minus q, subject to the same kind restriction as Add.
func (p Period) Sub(q Period) (Period, error) {
	return p.Add(q.Neg())
}

// Equal returns true if the two periods have identical fields. A
// business day period is never equal to a calendar period.
func (p Period) Equal(q Period) bool {
	return p == q
}

// dayBounds returns the smallest and largest number of calendar days
// the period can span, depending on where in the calendar it is
// applied. Whole years contribute 365 to the lower bound and 366 to the
// upper, residual months the shortest and longest runs of consecutive
// calendar months, and days contribute themselves.
func (p Period) dayBounds() (lo, hi int) {
	if p.isNegative() {
		lo, hi = p.Neg().dayBounds()
		return -hi, -lo
	}
	months := p.Years*12 + p.Months
	lo = 365*(months/12) + minMonthRun(months%12) + p.Days
	hi = 366*(months/12) + maxMonthRun(months%12) + p.Days
	return lo, hi
}

// minMonthRun returns the smallest total length of n consecutive
// calendar months, with February counted at 28 days.
func minMonthRun(n int) int {
	if n == 0 {
		return 0
	}
	best := 12 * 31
	for start := 0; start < 12; start++ {
		sum := 0
		for i := 0; i < n; i++ {
			sum += monthLens28[(start+i)%12]
		}
		if sum < best {
			best = sum
		}
	}
	return best
}

// maxMonthRun returns the largest total length of n consecutive
// calendar months, with February counted at 29 days.
func maxMonthRun(n int) int {
	if n == 0 {
		return 0
	}
	best := 0
	for start := 0; start < 12; start++ {
		sum := 0
		for i := 0; i < n; i++ {
			sum += monthLens29[(start+i)%12]
		}
		if sum > best {
			best = sum
		}
	}
	return best
}

// comparable reports whether the two periods are of the same kind and
// hence admit an order.
func (p Period) comparable(q Period) bool {
	return p.HasBusinessDays() == q.HasBusinessDays() ||
		p.IsZero() || q.IsZero()
}

// Less returns whether p spans fewer calendar days than q for every
// date the two could be applied to. When the day spans overlap the
// periods are incomparable and ok is false. Business day periods are
// ordered by their count and are incomparable with calendar periods.
func (p Period) Less(q Period) (less, ok bool) {
	if !p.comparable(q) {
		return false, false
	}
	if p.HasBusinessDays() || q.HasBusinessDays() {
		return p.BusinessDays < q.BusinessDays, true
	}
	plo, phi := p.dayBounds()
	qlo, qhi := q.dayBounds()
	switch {
	case phi < qlo:
		return true, true
	case plo > qhi:
		return false, true
	}
	return false, false
}

// LessEqual is like Less but admits equal day spans at the boundary.
func (p Period) LessEqual(q Period) (lessEq, ok bool) {
	if !p.comparable(q) {
		return false, false
	}
	if p.HasBusinessDays() || q.HasBusinessDays() {
		return p.BusinessDays <= q.BusinessDays, true
	}
	plo, phi := p.dayBounds()
	qlo, qhi := q.dayBounds()
	switch {
	case phi <= qlo:
		return true, true
	case plo > qhi:
		return false, true
	}
	return false, false
}

// Greater returns whether p spans more calendar days than q for every
// date the two could be applied to, with the same caveats as Less.
func (p Period) Greater(q Period) (greater, ok bool) {
	return q.Less(p)
}

// GreaterEqual is like Greater but admits equal day spans at the
// boundary.
func (p Period) GreaterEqual(q Period) (greaterEq, ok bool) {
	return q.LessEqual(p)
}

// Parse a period in the form '[-]<n>Y<n>Q<n>M<n>W<n>D' or '[-]<n>B',
// case insensitively, eg. '1y3m4d', '-2w' or '2B'. Quarters fold into
// months, weeks into days and months in excess of 11 into years, so
// '18M' parses as one year and six months. The shortcuts 'ON', 'TN'
// and 'DD' denote one, two and three business days and the empty string
// is the zero period. Business days cannot be combined with calendar
// units.
func (p *Period) Parse(val string) error {
	period, err := ParsePeriod(val)
	if err != nil {
		return err
	}
	*p = period
	return nil
}

var longUnits = strings.NewReplacer(
	" ", "",
	"BUSINESSDAYS", "B",
	"YEARS", "Y",
	"QUARTERS", "Q",
	"MONTHS", "M",
	"WEEKS", "W",
	"DAYS", "D",
)

// ParsePeriod parses a period in the formats accepted by Period.Parse.
// Spelled out unit names are also accepted, eg. '2years3months'.
func ParsePeriod(val string) (Period, error) {
	upper := strings.ToUpper(val)
	switch upper {
	case "":
		return Period{}, nil
	case "ON":
		return Period{BusinessDays: 1}, nil
	case "TN":
		return Period{BusinessDays: 2}, nil
	case "DD":
		return Period{BusinessDays: 3}, nil
	}
	rest := longUnits.Replace(upper)
	negative := false
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}
	var p Period
	classical, business := false, false
	for len(rest) > 0 {
		if rest[0] == '-' || rest[0] == '+' {
			return Period{}, fmt.Errorf("invalid period %q: only a single leading sign is allowed: %w", val, ErrSign)
		}
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 || i == len(rest) {
			return Period{}, fmt.Errorf("invalid period %q: %w", val, ErrFormat)
		}
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return Period{}, fmt.Errorf("invalid period %q: %w", val, ErrFormat)
		}
		switch rest[i] {
		case 'Y':
			p.Years += n
			classical = true
		case 'Q':
			p.Months += 3 * n
			classical = true
		case 'M':
			p.Months += n
			classical = true
		case 'W':
			p.Days += 7 * n
			classical = true
		case 'D':
			p.Days += n
			classical = true
		case 'B':
			p.BusinessDays += n
			business = true
		default:
			return Period{}, fmt.Errorf("invalid period %q: unknown unit %q: %w", val, rest[i], ErrFormat)
		}
		rest = rest[i+1:]
	}
	if business && classical {
		return Period{}, fmt.Errorf("invalid period %q: %w", val, ErrMixedKind)
	}
	p.normalize()
	if negative {
		p = p.Neg()
	}
	return p, nil
}
