// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarkdatetime

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"

	"go.civiltime.dev/datetime"
)

// Offset is the Starlark representation of a datetime.Offset. The zero
// value is the UTC sentinel.
type Offset struct {
	Offset datetime.Offset
}

var (
	_ starlark.Value    = Offset{}
	_ starlark.HasAttrs = Offset{}
)

// String implements the Stringer interface.
func (o Offset) String() string { return o.Offset.String() }

// Type returns a short string describing the value's type.
func (o Offset) Type() string { return "datetime.offset" }

// Freeze renders Offset immutable. Required by the starlark.Value
// interface; an offset is already immutable, so this is a no-op.
func (o Offset) Freeze() {}

// Truth reports whether the offset shifts anything.
func (o Offset) Truth() starlark.Bool { return o.Offset.Seconds() != 0 }

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y).
func (o Offset) Hash() (uint32, error) {
	h := uint32(o.Offset.Seconds())
	if o.Offset.IsUTC() {
		h ^= 0x9e3779b9
	}
	return h, nil
}

// Attr gets a value for a string attribute, implementing dot
// expression support.
func (o Offset) Attr(name string) (starlark.Value, error) {
	switch name {
	case "seconds":
		return starlark.MakeInt(int(o.Offset.Seconds())), nil
	case "is_utc":
		return starlark.Bool(o.Offset.IsUTC()), nil
	}
	return builtinAttr(o, name, offsetMethods)
}

// AttrNames lists available dot expression strings.
func (o Offset) AttrNames() []string {
	return append(builtinAttrNames(offsetMethods),
		"is_utc",
		"seconds",
	)
}

var offsetMethods = map[string]builtinMethod{
	"transform": offsetTransform,
}

func offsetTransform(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x DateTime
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	recv := recV.(Offset)
	return OffsetDateTime{OffsetDateTime: recv.Offset.Transform(x.DateTime)}, nil
}

// OffsetDateTime is the Starlark representation of a
// datetime.OffsetDateTime: a wall-clock reading projected through a
// fixed offset on every field access.
type OffsetDateTime struct {
	OffsetDateTime datetime.OffsetDateTime
}

var (
	_ starlark.Value    = OffsetDateTime{}
	_ starlark.HasAttrs = OffsetDateTime{}
)

// String implements the Stringer interface.
func (t OffsetDateTime) String() string { return t.OffsetDateTime.String() }

// Type returns a short string describing the value's type.
func (t OffsetDateTime) Type() string { return "datetime.offset_datetime" }

// Freeze renders OffsetDateTime immutable. Required by the
// starlark.Value interface; the value is already immutable, so this is
// a no-op.
func (t OffsetDateTime) Freeze() {}

// Truth reports whether the unadjusted reading differs from the Unix
// epoch.
func (t OffsetDateTime) Truth() starlark.Bool {
	return t.OffsetDateTime.Local().Instant() != 0
}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y).
func (t OffsetDateTime) Hash() (uint32, error) {
	ms := t.OffsetDateTime.Local().Instant()
	return uint32(ms) ^ uint32(ms>>32) ^ uint32(t.OffsetDateTime.Offset().Seconds()), nil
}

// Attr gets a value for a string attribute. Calendar and clock fields
// are projected through the offset afresh on every access.
func (t OffsetDateTime) Attr(name string) (starlark.Value, error) {
	switch name {
	case "local":
		return DateTime{DateTime: t.OffsetDateTime.Local()}, nil
	case "offset":
		return Offset{Offset: t.OffsetDateTime.Offset()}, nil
	}
	return pieceAttr(t.Type(), t.OffsetDateTime, t.OffsetDateTime, name)
}

// AttrNames lists available dot expression strings.
func (t OffsetDateTime) AttrNames() []string {
	return append(pieceAttrNames(), "local", "offset")
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, fmt.Errorf("unrecognized %s attribute %q", recv.Type(), name)
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
