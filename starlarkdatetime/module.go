// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarkdatetime exposes the datetime package to Starlark
// scripts as a 'datetime' module with calendar, duration and offset
// constructors. All values it defines are immutable.
package starlarkdatetime // import "go.civiltime.dev/starlarkdatetime"

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"go.civiltime.dev/datetime"
)

// ModuleName defines the expected name for this Module when used in
// the starlark runtime.
const ModuleName = "datetime"

// Module datetime is a Starlark module of calendar and civil-time
// functions.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"duration":     starlark.NewBuiltin("duration", newDuration),
		"date":         starlark.NewBuiltin("date", newDate),
		"datetime":     starlark.NewBuiltin("datetime", newDateTime),
		"from_instant": starlark.NewBuiltin("from_instant", fromInstant),
		"offset":       starlark.NewBuiltin("offset", newOffset),

		"utc":   Offset{Offset: datetime.UTC()},
		"epoch": DateTime{},

		"second": Duration{Duration: datetime.Of(1)},
		"minute": Duration{Duration: datetime.Of(60)},
		"hour":   Duration{Duration: datetime.Of(3600)},
		"day":    Duration{Duration: datetime.Of(86400)},
	},
}

// LoadModule loads the datetime module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

func newDuration(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seconds, milliseconds int64
	if err := starlark.UnpackArgs("duration", args, kwargs, "seconds", &seconds, "milliseconds?", &milliseconds); err != nil {
		return nil, err
	}
	return Duration{Duration: datetime.OfMs(seconds, milliseconds)}, nil
}

func newDate(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		year       int64
		month, day int
	)
	if err := starlark.UnpackArgs("date", args, kwargs, "year", &year, "month", &month, "day", &day); err != nil {
		return nil, err
	}
	d, err := datetime.NewLocalDate(year, datetime.Month(month), day)
	if err != nil {
		return nil, err
	}
	return DateTime{DateTime: d.At(datetime.Midnight())}, nil
}

func newDateTime(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		year                              int64
		month, day                        int
		hour, minute, second, millisecond int
	)
	if err := starlark.UnpackArgs("datetime", args, kwargs,
		"year", &year, "month", &month, "day", &day,
		"hour?", &hour, "minute?", &minute, "second?", &second, "millisecond?", &millisecond); err != nil {
		return nil, err
	}
	dt, err := datetime.NewLocalDateTime(year, datetime.Month(month), day, hour, minute, second, millisecond)
	if err != nil {
		return nil, err
	}
	return DateTime{DateTime: dt}, nil
}

func fromInstant(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var ms int64
	if err := starlark.UnpackPositionalArgs("from_instant", args, kwargs, 1, &ms); err != nil {
		return nil, err
	}
	return DateTime{DateTime: datetime.FromInstant(ms)}, nil
}

func newOffset(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		hours, minutes int
		seconds        starlark.Value
	)
	if err := starlark.UnpackArgs("offset", args, kwargs, "hours?", &hours, "minutes?", &minutes, "seconds?", &seconds); err != nil {
		return nil, err
	}
	if seconds != nil {
		s, err := starlark.AsInt32(seconds)
		if err != nil {
			return nil, err
		}
		o, err := datetime.OfSeconds(int32(s))
		if err != nil {
			return nil, err
		}
		return Offset{Offset: o}, nil
	}
	o, err := datetime.OfHoursMinutes(hours, minutes)
	if err != nil {
		return nil, err
	}
	return Offset{Offset: o}, nil
}
