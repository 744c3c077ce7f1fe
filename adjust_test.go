// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate_test

import (
	"errors"
	"testing"

	"cloudeng.io/businessdate"
)

func TestParseConvention(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want businessdate.Convention
	}{
		{"no", businessdate.NoAdjust},
		{"", businessdate.NoAdjust},
		{"follow", businessdate.Follow},
		{"FLW", businessdate.Follow},
		{"previous", businessdate.Previous},
		{"prev", businessdate.Previous},
		{"prv", businessdate.Previous},
		{"mod_follow", businessdate.ModFollow},
		{"ModFollow", businessdate.ModFollow},
		{"modflw", businessdate.ModFollow},
		{"mod_previous", businessdate.ModPrevious},
		{"modprev", businessdate.ModPrevious},
		{"start_of_month", businessdate.StartOfMonth},
		{"som", businessdate.StartOfMonth},
		{"end-of-month", businessdate.EndOfMonth},
		{"eom", businessdate.EndOfMonth},
		{"imm", businessdate.IMM},
		{"cds_imm", businessdate.CDSIMM},
		{"CDS", businessdate.CDSIMM},
	} {
		conv, err := businessdate.ParseConvention(tc.val)
		if err != nil {
			t.Errorf("failed: %q: %v", tc.val, err)
			continue
		}
		if got, want := conv, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
	if _, err := businessdate.ParseConvention("sideways"); !errors.Is(err, businessdate.ErrUnsupportedConvention) {
		t.Errorf("got %v, want %v", err, businessdate.ErrUnsupportedConvention)
	}
}

func TestIsBusinessDay(t *testing.T) {
	holidays := &businessdate.TargetCalendar{}
	for _, tc := range []struct {
		date string
		want bool
	}{
		{"20160101", false}, // New Year's Day
		{"20160102", false}, // Saturday
		{"20160103", false}, // Sunday
		{"20160104", true},
		{"20160325", false}, // Good Friday
		{"20160328", false}, // Easter Monday
		{"20160329", true},
	} {
		if got, want := businessdate.IsBusinessDay(dateOf(tc.date), holidays), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestAdjust(t *testing.T) {
	holidays := &businessdate.TargetCalendar{}
	for _, tc := range []struct {
		date string
		conv businessdate.Convention
		want string
	}{
		{"20160101", businessdate.NoAdjust, "20160101"},
		{"20160101", businessdate.Follow, "20160104"},
		{"20160101", businessdate.Previous, "20151231"},
		{"20160101", businessdate.ModFollow, "20160104"},
		{"20160101", businessdate.ModPrevious, "20160104"},
		{"20160101", businessdate.StartOfMonth, "20160104"},
		{"20160101", businessdate.EndOfMonth, "20160129"},
		{"20160101", businessdate.IMM, "20160316"},
		{"20160101", businessdate.CDSIMM, "20160321"},
		{"20141129", businessdate.ModFollow, "20141128"},
		{"20160312", businessdate.ModFollow, "20160314"},
		{"20160105", businessdate.Follow, "20160105"},
		{"20160601", businessdate.IMM, "20160615"},
		{"20160801", businessdate.IMM, "20160921"},
		{"20161001", businessdate.CDSIMM, "20161220"},
	} {
		if got, want := businessdate.Adjust(dateOf(tc.date), tc.conv, holidays), dateOf(tc.want); got != want {
			t.Errorf("%v %v: got %v, want %v", tc.conv, tc.date, got, want)
		}
	}
}

func TestAdjustIdempotent(t *testing.T) {
	holidays := &businessdate.TargetCalendar{}
	for _, conv := range []businessdate.Convention{
		businessdate.NoAdjust,
		businessdate.Follow,
		businessdate.Previous,
		businessdate.ModFollow,
		businessdate.ModPrevious,
		businessdate.StartOfMonth,
		businessdate.EndOfMonth,
		businessdate.IMM,
		businessdate.CDSIMM,
	} {
		for _, date := range []string{"20160101", "20160215", "20141129", "20160312"} {
			once := businessdate.Adjust(dateOf(date), conv, holidays)
			if got, want := businessdate.Adjust(once, conv, holidays), once; got != want {
				t.Errorf("%v %v: got %v, want %v", conv, date, got, want)
			}
		}
	}
}

func TestAddBusinessDays(t *testing.T) {
	holidays := &businessdate.TargetCalendar{}
	for _, tc := range []struct {
		date string
		n    int
		want string
	}{
		{"20151231", 1, "20160104"},
		{"20151231", 0, "20151231"},
		{"20160104", -1, "20151231"},
		{"20160104", 5, "20160111"},
		{"20160323", 2, "20160329"}, // over Good Friday and Easter Monday
	} {
		if got, want := businessdate.AddBusinessDays(dateOf(tc.date), tc.n, holidays), dateOf(tc.want); got != want {
			t.Errorf("%v + %vB: got %v, want %v", tc.date, tc.n, got, want)
		}
	}
}
