// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for generating the periodic date
// sequences used to build payment schedules: rolling date ranges and
// schedules with long stub handling.
package schedule

import (
	"fmt"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/businessdate"
)

// Dates is an ascending sequence of business dates. All operations
// return new values, the receiver is never modified.
type Dates []businessdate.BusinessDate

// Range returns the ascending dates d with start <= d < end drawn from
// the rolling wave roll + k*step for integer k of both signs, with
// start itself included whether or not it lies on the wave. end is
// never included. A negative step is treated as its positive
// counterpart. Different roll anchors over the same start and end
// produce different intermediate dates when the step spans
// month-length-dependent intervals.
func Range(start, end businessdate.BusinessDate, step businessdate.Period, roll businessdate.BusinessDate) (Dates, error) {
	if step.IsZero() {
		return nil, fmt.Errorf("range %v..%v: %w", start, end, businessdate.ErrInvalidStep)
	}
	step = step.Abs()
	if end <= start {
		return nil, nil
	}
	h := heap.NewMin(heap.WithSliceCap[int64, businessdate.BusinessDate](8))
	h.Push(int64(start), start)
	for k := 0; ; k++ {
		d := roll.Add(step.Mul(k))
		if d >= end {
			break
		}
		if d >= start {
			h.Push(int64(d), d)
		}
	}
	for k := -1; ; k-- {
		d := roll.Add(step.Mul(k))
		if d < start {
			break
		}
		if d < end {
			h.Push(int64(d), d)
		}
	}
	dates := make(Dates, 0, h.Len())
	for h.Len() > 0 {
		_, d := h.Pop()
		if n := len(dates); n > 0 && dates[n-1] == d {
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// New returns the schedule from start to end rolled over the given
// anchor: the Range output with end appended unconditionally, so the
// sequence always runs from start to end inclusive.
func New(start, end businessdate.BusinessDate, step businessdate.Period, roll businessdate.BusinessDate) (Dates, error) {
	dates, err := Range(start, end, step, roll)
	if err != nil {
		return nil, err
	}
	return append(dates, end), nil
}

// FirstStubLong merges the two leading periods into one long stub by
// removing the second date. Sequences of fewer than three dates are
// returned unchanged.
func (d Dates) FirstStubLong() Dates {
	if len(d) < 3 {
		return append(Dates(nil), d...)
	}
	merged := make(Dates, 0, len(d)-1)
	merged = append(merged, d[0])
	return append(merged, d[2:]...)
}

// LastStubLong merges the two trailing periods into one long stub by
// removing the second to last date. Sequences of fewer than three
// dates are returned unchanged.
func (d Dates) LastStubLong() Dates {
	if len(d) < 3 {
		return append(Dates(nil), d...)
	}
	merged := make(Dates, 0, len(d)-1)
	merged = append(merged, d[:len(d)-2]...)
	return append(merged, d[len(d)-1])
}

// Adjust applies the convention to every date independently against
// the default holiday calendar.
func (d Dates) Adjust(conv businessdate.Convention) Dates {
	adjusted := make(Dates, len(d))
	for i, date := range d {
		adjusted[i] = date.Adjust(conv)
	}
	return adjusted
}

// AdjustWith is like Adjust but against an explicit holiday calendar.
func (d Dates) AdjustWith(conv businessdate.Convention, holidays businessdate.Holidays) Dates {
	adjusted := make(Dates, len(d))
	for i, date := range d {
		adjusted[i] = businessdate.BusinessDate(businessdate.Adjust(date.Date(), conv, holidays))
	}
	return adjusted
}

func (d Dates) String() string {
	out := make([]byte, 0, len(d)*10)
	for i, date := range d {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, date.String()...)
	}
	return string(out)
}
