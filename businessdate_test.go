// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate_test

import (
	"errors"
	"testing"

	"cloudeng.io/businessdate"
)

func withBaseDate(t *testing.T, val string) {
	businessdate.SetBaseDate(dateOf(val))
	t.Cleanup(func() { businessdate.SetBaseDate(0) })
}

func TestNewFromDateLiterals(t *testing.T) {
	for _, tc := range []struct {
		literal string
		want    string
	}{
		{"20151231", "20151231"},
		{"2015-12-31", "20151231"},
		{"31.12.2015", "20151231"},
		{"12/31/2015", "20151231"},
	} {
		bd, err := businessdate.New(tc.literal)
		if err != nil {
			t.Errorf("failed: %q: %v", tc.literal, err)
			continue
		}
		if got, want := bd, bdOf(tc.want); got != want {
			t.Errorf("%q: got %v, want %v", tc.literal, got, want)
		}
	}
}

func TestNewFromCombinedLiterals(t *testing.T) {
	for _, tc := range []struct {
		literal string
		want    string
	}{
		{"1D20160504", "20160505"},
		{"0B1D20160504", "20160505"},
		{"1B20151231", "20160104"},
		{"-1B20160104", "20151231"},
		{"1Y2M3D20160101", "20170304"},
		{"1y20160229", "20170228"},
		{"1M2016-01-31", "20160229"},
		// A bare convention adjusts the date.
		{"FLW20160101", "20160104"},
		{"prev20160101", "20151231"},
		{"mod_follow20141129", "20141128"},
		{"eom20160101", "20160129"},
		// A convention alongside a classical period with no business
		// day segment is ambiguous and ignored.
		{"1MFLW20160101", "20160201"},
		{"FLW1M20160101", "20160201"},
		// An explicit business day segment anchors the adjustment:
		// before the classical step when written first, after it when
		// written last.
		{"0BEOM1M20160115", "20160229"},
		{"0B1MEOM20160115", "20160229"},
		{"0BFLW1M20160101", "20160204"},
		{"0B1MFLW20160101", "20160201"},
		{"2B1M20151231", "20160205"},
		// A trailing business day segment steps after the classical
		// period and anchors the final adjustment.
		{"2D1B20160504", "20160509"},
		{"1D2BFLW20160101", "20160105"},
		{"0B3D0BMODFOLLOW20171231", "20180103"},
	} {
		bd, err := businessdate.New(tc.literal)
		if err != nil {
			t.Errorf("failed: %q: %v", tc.literal, err)
			continue
		}
		if got, want := bd, bdOf(tc.want); got != want {
			t.Errorf("%q: got %v, want %v", tc.literal, got, want)
		}
	}
}

func TestNewErrors(t *testing.T) {
	for _, tc := range []struct {
		literal string
		kind    error
	}{
		{"XSDW", businessdate.ErrUnsupportedConvention},
		{"1Y2X20160101", businessdate.ErrFormat},
		{"sideways20160101", businessdate.ErrUnsupportedConvention},
		{"1Y-2W1D20160101", businessdate.ErrSign},
	} {
		if _, err := businessdate.New(tc.literal); !errors.Is(err, tc.kind) {
			t.Errorf("%q: got %v, want %v", tc.literal, err, tc.kind)
		}
	}
}

func TestNewUsesBaseDate(t *testing.T) {
	withBaseDate(t, "20151231")
	for _, tc := range []struct {
		literal string
		want    string
	}{
		{"", "20151231"},
		{"1B", "20160104"},
		{"ON", "20160104"},
		{"1M", "20160131"},
		{"eom", "20151231"},
	} {
		bd, err := businessdate.New(tc.literal)
		if err != nil {
			t.Errorf("failed: %q: %v", tc.literal, err)
			continue
		}
		if got, want := bd, bdOf(tc.want); got != want {
			t.Errorf("%q: got %v, want %v", tc.literal, got, want)
		}
	}
	if got, want := businessdate.Today(), bdOf("20151231"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddSub(t *testing.T) {
	for _, tc := range []struct {
		start, period, want string
	}{
		{"20160101", "1Y2M3D", "20170304"},
		{"20160229", "1Y", "20170228"},
		{"20160131", "1M", "20160229"},
		{"20151231", "2B", "20160105"},
		{"20160101", "0D", "20160101"},
		{"20160630", "-6M", "20151230"},
	} {
		if got, want := bdOf(tc.start).Add(periodOf(tc.period)), bdOf(tc.want); got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.start, tc.period, got, want)
		}
	}
	if got, want := bdOf("20160105").Sub(periodOf("2B")), bdOf("20151231"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bdOf("20170304").Sub(periodOf("3D")), bdOf("20170301"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiff(t *testing.T) {
	for _, tc := range []struct {
		start, end, want string
	}{
		{"20160131", "20171101", "1Y9M1D"},
		{"20160229", "20170301", "1Y1D"},
		{"20161115", "20170115", "2M"},
		{"20150731", "20170220", "1Y6M20D"},
		{"20150612", "20151231", "6M19D"},
		{"20151231", "20150612", "-6M18D"},
		{"20160229", "20170330", "1Y1M2D"},
		{"20170330", "20160229", "-1Y1M"},
		{"20160101", "20160101", "0D"},
	} {
		start, end := bdOf(tc.start), bdOf(tc.end)
		if got, want := end.Diff(start), periodOf(tc.want); got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.end, tc.start, got, want)
		}
	}
}

// The difference is defined so that adding it back to the start date
// recovers the end date, in either direction.
func TestDiffRecoversEnd(t *testing.T) {
	dates := []string{
		"20150612", "20151231", "20160131", "20160229", "20170228",
		"20170301", "20161115", "20150731", "20170220", "20171101",
		"20170330", "20160330", "20200229",
	}
	for _, a := range dates {
		for _, b := range dates {
			start, end := bdOf(a), bdOf(b)
			p := end.Diff(start)
			if got, want := start.Add(p), end; got != want {
				t.Errorf("%v + (%v - %v): got %v, want %v", a, b, a, got, want)
			}
		}
	}
}

func TestBusinessDateMethods(t *testing.T) {
	bd := bdOf("20160101")
	if got, want := bd.Adjust(businessdate.Follow), bdOf("20160104"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if bd.IsBusinessDay() {
		t.Errorf("holiday reported as business day")
	}
	if !bdOf("20160104").IsBusinessDay() {
		t.Errorf("business day not reported")
	}
	if got, want := bd.YearFraction(bdOf("20170101")), 366.0/365; !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bd.String(), "20160101"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := bd.Int(), 20160101; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	businessdate.SetDefaultDayCount(businessdate.Act360)
	t.Cleanup(func() { businessdate.SetDefaultDayCount(businessdate.Act365) })
	if got, want := bdOf("20160101").YearFraction(bdOf("20160331")), 0.25; !near(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	businessdate.SetDefaultConvention(businessdate.ModFollow)
	t.Cleanup(func() { businessdate.SetDefaultConvention(businessdate.NoAdjust) })
	if got, want := businessdate.DefaultConvention(), businessdate.ModFollow; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var holidays businessdate.CalendarDateList
	if err := holidays.Parse("20160105"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	businessdate.SetDefaultHolidays(holidays)
	t.Cleanup(func() { businessdate.SetDefaultHolidays(nil) })
	if got, want := bdOf("20160104").Add(periodOf("1B")), bdOf("20160106"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMustNew(t *testing.T) {
	if got, want := businessdate.MustNew("20151231"), bdOf("20151231"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	businessdate.MustNew("XSDW")
}
