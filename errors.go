// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package businessdate

import "errors"

var (
	// ErrFormat is returned when a date or period literal matches no
	// recognized production.
	ErrFormat = errors.New("unrecognized format")

	// ErrMixedKind is returned when a single period or arithmetic
	// operation mixes business days with years, months or days.
	ErrMixedKind = errors.New("business days and calendar units are mutually exclusive")

	// ErrSign is returned when the non-zero fields of a calendar period
	// disagree in sign.
	ErrSign = errors.New("inconsistent signs")

	// ErrInvalidStep is returned when a range or schedule is asked to
	// step by a zero period.
	ErrInvalidStep = errors.New("zero period step")

	// ErrUnsupportedConvention is returned for unknown adjustment or
	// day count keywords.
	ErrUnsupportedConvention = errors.New("unsupported convention")
)
