// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command bizdate evaluates business date literals, adjusts dates
// against a holiday calendar, computes year fractions and generates
// payment schedules.
package main

import (
	"context"
	"fmt"

	"cloudeng.io/businessdate"
	"cloudeng.io/businessdate/schedule"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
)

var cmdSet *subcmd.CommandSet

type CommonFlags struct {
	Base     string `subcmd:"base,,'base date (YYYYMMDD) used by literals that carry no date, defaults to today'"`
	Holidays string `subcmd:"holidays,,comma separated dates replacing the built-in TARGET holiday calendar"`
}

type evalFlags struct {
	CommonFlags
}

type adjustFlags struct {
	CommonFlags
	Convention string `subcmd:"convention,mod_follow,adjustment convention to apply"`
}

type diffFlags struct {
	CommonFlags
}

type yearFractionFlags struct {
	CommonFlags
	DayCount string `subcmd:"daycount,act_365,day count convention"`
}

type scheduleFlags struct {
	CommonFlags
	Step          string `subcmd:"step,3M,period between schedule dates"`
	Roll          string `subcmd:"roll,,'rolling anchor date, defaults to the end date'"`
	Adjust        string `subcmd:"adjust,,convention applied to every generated date"`
	FirstStubLong bool   `subcmd:"first-stub-long,false,merge the two leading periods into one long stub"`
	LastStubLong  bool   `subcmd:"last-stub-long,false,merge the two trailing periods into one long stub"`
	RangeOnly     bool   `subcmd:"range-only,false,omit the final date rather than appending it unconditionally"`
}

func init() {
	evalFlagSet := subcmd.NewFlagSet()
	evalFlagSet.MustRegisterFlagStruct(&evalFlags{}, nil, nil)
	adjustFlagSet := subcmd.NewFlagSet()
	adjustFlagSet.MustRegisterFlagStruct(&adjustFlags{}, nil, nil)
	diffFlagSet := subcmd.NewFlagSet()
	diffFlagSet.MustRegisterFlagStruct(&diffFlags{}, nil, nil)
	yfFlagSet := subcmd.NewFlagSet()
	yfFlagSet.MustRegisterFlagStruct(&yearFractionFlags{}, nil, nil)
	scheduleFlagSet := subcmd.NewFlagSet()
	scheduleFlagSet.MustRegisterFlagStruct(&scheduleFlags{}, nil, nil)

	evalCmd := subcmd.NewCommand("eval", evalFlagSet, eval)
	evalCmd.Document("evaluate business date literals", "<literal>+")

	adjustCmd := subcmd.NewCommand("adjust", adjustFlagSet, adjust)
	adjustCmd.Document("adjust dates to business days", "<date>+")

	diffCmd := subcmd.NewCommand("diff", diffFlagSet, diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document("print the period from the second date to the first", "<date> <date>")

	yfCmd := subcmd.NewCommand("yearfraction", yfFlagSet, yearFraction, subcmd.ExactlyNumArguments(2))
	yfCmd.Document("print the year fraction between two dates", "<start> <end>")

	scheduleCmd := subcmd.NewCommand("schedule", scheduleFlagSet, generate, subcmd.ExactlyNumArguments(2))
	scheduleCmd.Document("generate a payment schedule", "<start> <end>")

	cmdSet = subcmd.NewCommandSet(evalCmd, adjustCmd, diffCmd, yfCmd, scheduleCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (cf CommonFlags) apply() error {
	if len(cf.Base) > 0 {
		var cd businessdate.CalendarDate
		if err := cd.Parse(cf.Base); err != nil {
			return err
		}
		businessdate.SetBaseDate(cd)
	}
	if len(cf.Holidays) > 0 {
		var holidays businessdate.CalendarDateList
		if err := holidays.Parse(cf.Holidays); err != nil {
			return err
		}
		businessdate.SetDefaultHolidays(holidays)
	}
	return nil
}

func eval(_ context.Context, values interface{}, args []string) error {
	fv := values.(*evalFlags)
	if err := fv.apply(); err != nil {
		return err
	}
	errs := errors.M{}
	for _, literal := range args {
		bd, err := businessdate.New(literal)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%s: %s\n", literal, bd)
	}
	return errs.Err()
}

func adjust(_ context.Context, values interface{}, args []string) error {
	fv := values.(*adjustFlags)
	if err := fv.apply(); err != nil {
		return err
	}
	conv, err := businessdate.ParseConvention(fv.Convention)
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		cd, err := businessdate.ParseCalendarDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%s: %s\n", arg, businessdate.Adjust(cd, conv, businessdate.DefaultHolidays()))
	}
	return errs.Err()
}

func diff(_ context.Context, values interface{}, args []string) error {
	fv := values.(*diffFlags)
	if err := fv.apply(); err != nil {
		return err
	}
	a, err := businessdate.New(args[0])
	if err != nil {
		return err
	}
	b, err := businessdate.New(args[1])
	if err != nil {
		return err
	}
	fmt.Println(a.Diff(b))
	return nil
}

func yearFraction(_ context.Context, values interface{}, args []string) error {
	fv := values.(*yearFractionFlags)
	if err := fv.apply(); err != nil {
		return err
	}
	dc, err := businessdate.ParseDayCount(fv.DayCount)
	if err != nil {
		return err
	}
	start, err := businessdate.New(args[0])
	if err != nil {
		return err
	}
	end, err := businessdate.New(args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", dc.YearFraction(start.Date(), end.Date()))
	return nil
}

func generate(_ context.Context, values interface{}, args []string) error {
	fv := values.(*scheduleFlags)
	if err := fv.apply(); err != nil {
		return err
	}
	var step businessdate.Period
	if err := step.Parse(fv.Step); err != nil {
		return err
	}
	start, err := businessdate.New(args[0])
	if err != nil {
		return err
	}
	end, err := businessdate.New(args[1])
	if err != nil {
		return err
	}
	roll := end
	if len(fv.Roll) > 0 {
		if roll, err = businessdate.New(fv.Roll); err != nil {
			return err
		}
	}
	var dates schedule.Dates
	if fv.RangeOnly {
		dates, err = schedule.Range(start, end, step, roll)
	} else {
		dates, err = schedule.New(start, end, step, roll)
	}
	if err != nil {
		return err
	}
	if fv.FirstStubLong {
		dates = dates.FirstStubLong()
	}
	if fv.LastStubLong {
		dates = dates.LastStubLong()
	}
	if len(fv.Adjust) > 0 {
		conv, err := businessdate.ParseConvention(fv.Adjust)
		if err != nil {
			return err
		}
		dates = dates.Adjust(conv)
	}
	for _, d := range dates {
		fmt.Println(d)
	}
	return nil
}
