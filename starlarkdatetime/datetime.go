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

// DateTime is the Starlark representation of a datetime.LocalDateTime:
// a wall-clock reading with no UTC association. The zero value is the
// Unix epoch.
type DateTime struct {
	DateTime datetime.LocalDateTime
}

var (
	_ starlark.Value      = DateTime{}
	_ starlark.HasAttrs   = DateTime{}
	_ starlark.HasBinary  = DateTime{}
	_ starlark.Comparable = DateTime{}
)

// assert at compile time that *DateTime implements Unpacker.
var _ starlark.Unpacker = (*DateTime)(nil)

// Unpack is a custom argument unpacker: it accepts a DateTime or an
// int giving the instant in milliseconds since the Unix epoch.
func (t *DateTime) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case DateTime:
		*t = x
		return nil
	case starlark.Int:
		i, ok := x.Int64()
		if !ok {
			return fmt.Errorf("int value out of range (want signed 64-bit value)")
		}
		*t = DateTime{DateTime: datetime.FromInstant(i)}
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), t.Type())
}

// String implements the Stringer interface.
func (t DateTime) String() string { return t.DateTime.String() }

// Type returns a short string describing the value's type.
func (t DateTime) Type() string { return "datetime.datetime" }

// Freeze renders DateTime immutable. Required by the starlark.Value
// interface; the value is already immutable, so this is a no-op.
func (t DateTime) Freeze() {}

// Truth reports whether the reading differs from the Unix epoch.
func (t DateTime) Truth() starlark.Bool { return t.DateTime.Instant() != 0 }

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y).
func (t DateTime) Hash() (uint32, error) {
	ms := t.DateTime.Instant()
	return uint32(ms) ^ uint32(ms>>32), nil
}

// Attr gets a value for a string attribute, implementing dot
// expression support. Every calendar and clock field is derived from
// the instant on each access.
func (t DateTime) Attr(name string) (starlark.Value, error) {
	if name == "instant" {
		return starlark.MakeInt64(t.DateTime.Instant()), nil
	}
	return pieceAttr(t.Type(), t.DateTime, t.DateTime, name)
}

// AttrNames lists available dot expression strings.
func (t DateTime) AttrNames() []string {
	return append(pieceAttrNames(), "instant")
}

// CompareSameType implements comparison of two DateTime values.
func (t DateTime) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x, y := t.DateTime, yV.(DateTime).DateTime
	cp := 0
	if x.Before(y) {
		cp = -1
	} else if x.After(y) {
		cp = 1
	}
	return threeway(op, cp), nil
}

// Binary implements binary operators:
//
//	datetime + duration = datetime
//	datetime - duration = datetime
//	datetime - datetime = duration
func (t DateTime) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	switch op {
	case syntax.PLUS:
		if y, ok := yV.(Duration); ok {
			return DateTime{DateTime: t.DateTime.Add(y.Duration)}, nil
		}

	case syntax.MINUS:
		switch y := yV.(type) {
		case Duration:
			if side == starlark.Left {
				return DateTime{DateTime: t.DateTime.Sub(y.Duration)}, nil
			}
		case DateTime:
			if side == starlark.Left {
				return Duration{Duration: t.DateTime.Since(y.DateTime)}, nil
			}
			return Duration{Duration: y.DateTime.Since(t.DateTime)}, nil
		}
	}

	return nil, nil
}

// pieceAttr projects one calendar or clock field out of a date- and
// time-bearing value. DateTime and OffsetDateTime share it; each
// supplies its own projection.
func pieceAttr(typ string, d datetime.DatePiece, tp datetime.TimePiece, name string) (starlark.Value, error) {
	switch name {
	case "year":
		return starlark.MakeInt64(d.Year()), nil
	case "month":
		return starlark.MakeInt(int(d.Month())), nil
	case "month_name":
		return starlark.String(d.Month().String()), nil
	case "day":
		return starlark.MakeInt(d.Day()), nil
	case "yearday":
		return starlark.MakeInt(d.Yearday()), nil
	case "weekday":
		return starlark.MakeInt(int(d.Weekday())), nil
	case "weekday_name":
		return starlark.String(d.Weekday().String()), nil
	case "hour":
		return starlark.MakeInt(tp.Hour()), nil
	case "minute":
		return starlark.MakeInt(tp.Minute()), nil
	case "second":
		return starlark.MakeInt(tp.Second()), nil
	case "millisecond":
		return starlark.MakeInt(tp.Millisecond()), nil
	}
	return nil, fmt.Errorf("unrecognized %s attribute %q", typ, name)
}

func pieceAttrNames() []string {
	return []string{
		"day",
		"hour",
		"millisecond",
		"minute",
		"month",
		"month_name",
		"second",
		"weekday",
		"weekday_name",
		"year",
		"yearday",
	}
}
