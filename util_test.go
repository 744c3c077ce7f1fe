// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate_test

import (
	"math"

	"cloudeng.io/businessdate"
)

func dateOf(val string) businessdate.CalendarDate {
	var cd businessdate.CalendarDate
	if err := cd.Parse(val); err != nil {
		panic(err)
	}
	return cd
}

func bdOf(val string) businessdate.BusinessDate {
	return businessdate.BusinessDate(dateOf(val))
}

func periodOf(val string) businessdate.Period {
	var p businessdate.Period
	if err := p.Parse(val); err != nil {
		panic(err)
	}
	return p
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}
