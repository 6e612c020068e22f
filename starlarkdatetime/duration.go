// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarkdatetime

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.civiltime.dev/datetime"
)

// Duration is the Starlark representation of a datetime.Duration.
type Duration struct {
	Duration datetime.Duration
}

var (
	_ starlark.Value      = Duration{}
	_ starlark.HasAttrs   = Duration{}
	_ starlark.HasBinary  = Duration{}
	_ starlark.Comparable = Duration{}
)

// String implements the Stringer interface.
func (d Duration) String() string { return d.Duration.String() }

// Type returns a short string describing the value's type.
func (d Duration) Type() string { return "datetime.duration" }

// Freeze renders Duration immutable. Required by the starlark.Value
// interface; a duration is already immutable, so this is a no-op.
func (d Duration) Freeze() {}

// Truth reports whether the duration spans any time.
func (d Duration) Truth() starlark.Bool { return starlark.Bool(!d.Duration.IsZero()) }

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y).
func (d Duration) Hash() (uint32, error) {
	ms := d.totalMs()
	return uint32(ms) ^ uint32(ms>>32), nil
}

func (d Duration) totalMs() int64 {
	return d.Duration.Seconds()*1000 + int64(d.Duration.Milliseconds())
}

// Attr gets a value for a string attribute, implementing dot
// expression support.
func (d Duration) Attr(name string) (starlark.Value, error) {
	switch name {
	case "seconds":
		return starlark.MakeInt64(d.Duration.Seconds()), nil
	case "milliseconds":
		return starlark.MakeInt(int(d.Duration.Milliseconds())), nil
	}
	return nil, fmt.Errorf("unrecognized %s attribute %q", d.Type(), name)
}

// AttrNames lists available dot expression strings.
func (d Duration) AttrNames() []string {
	return []string{
		"milliseconds",
		"seconds",
	}
}

// CompareSameType implements comparison of two Duration values.
func (d Duration) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x, y := d.totalMs(), yV.(Duration).totalMs()
	cp := 0
	if x < y {
		cp = -1
	} else if x > y {
		cp = 1
	}
	return threeway(op, cp), nil
}

// Binary implements binary operators:
//
//	duration + duration = duration
//	duration + datetime = datetime
//	duration - duration = duration
//	duration * int = duration
func (d Duration) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case Duration:
			return Duration{Duration: d.Duration.Add(y.Duration)}, nil
		case DateTime:
			return DateTime{DateTime: y.DateTime.Add(d.Duration)}, nil
		}

	case syntax.MINUS:
		if y, ok := yV.(Duration); ok {
			if side == starlark.Left {
				return Duration{Duration: d.Duration.Sub(y.Duration)}, nil
			}
			return Duration{Duration: y.Duration.Sub(d.Duration)}, nil
		}

	case syntax.STAR:
		if y, ok := yV.(starlark.Int); ok {
			n, ok := y.Int64()
			if !ok {
				return nil, fmt.Errorf("int value out of range (want signed 64-bit value)")
			}
			return Duration{Duration: d.Duration.Times(n)}, nil
		}
	}

	return nil, nil
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
