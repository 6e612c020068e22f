// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.civiltime.dev/datetime"
)

func TestOfSeconds(t *testing.T) {
	for _, s := range []int32{0, 1234, -1234, 86400, -86400} {
		o, err := datetime.OfSeconds(s)
		require.NoError(t, err, "OfSeconds(%d)", s)
		require.Equal(t, s, o.Seconds())
		require.False(t, o.IsUTC())
	}
	for _, s := range []int32{86401, -86401, 100000, -100000} {
		_, err := datetime.OfSeconds(s)
		require.ErrorIs(t, err, datetime.ErrOutOfRange, "OfSeconds(%d)", s)
	}
}

func TestOfHoursMinutes(t *testing.T) {
	for _, test := range []struct {
		hours, minutes int
		wantSeconds    int32
		wantErr        error
	}{
		{5, 30, 5*3600 + 30*60, nil},
		{-3, -45, -3*3600 - 45*60, nil},
		{4, 0, 4 * 3600, nil},
		{0, -30, -30 * 60, nil},
		{0, 0, 0, nil},
		{23, 59, 23*3600 + 59*60, nil},
		{-23, -59, -23*3600 - 59*60, nil},
		{8, 60, 0, datetime.ErrOutOfRange},
		{24, 0, 0, datetime.ErrOutOfRange},
		{-24, 0, 0, datetime.ErrOutOfRange},
		{0, -60, 0, datetime.ErrOutOfRange},
		{-4, 30, 0, datetime.ErrSignMismatch},
		{4, -30, 0, datetime.ErrSignMismatch},
		// Sign mismatch wins over range when both apply.
		{-25, 30, 0, datetime.ErrSignMismatch},
	} {
		o, err := datetime.OfHoursMinutes(test.hours, test.minutes)
		if test.wantErr != nil {
			require.ErrorIs(t, err, test.wantErr, "OfHoursMinutes(%d, %d)", test.hours, test.minutes)
			continue
		}
		require.NoError(t, err, "OfHoursMinutes(%d, %d)", test.hours, test.minutes)
		require.Equal(t, test.wantSeconds, o.Seconds(), "OfHoursMinutes(%d, %d)", test.hours, test.minutes)
	}
}

func TestUTCSentinel(t *testing.T) {
	utc := datetime.UTC()
	require.True(t, utc.IsUTC())
	require.EqualValues(t, 0, utc.Seconds())

	// A fixed zero offset shifts nothing but is not the sentinel.
	zero, err := datetime.OfSeconds(0)
	require.NoError(t, err)
	require.False(t, zero.IsUTC())

	local := datetime.FromInstant(1234567890123)
	require.Equal(t, fieldsOf(local, local), fieldsOf(utc.Transform(local), utc.Transform(local)))
	require.Equal(t, fieldsOf(local, local), fieldsOf(zero.Transform(local), zero.Transform(local)))
}

func TestTransformProjectsFields(t *testing.T) {
	local := mustDateTime(t, 2023, datetime.December, 31, 22, 30, 0, 0)

	for _, test := range []struct {
		hours, minutes int
	}{
		{5, 30},
		{-8, 0},
		{0, 45},
		{-3, -45},
		{14, 0},
	} {
		o, err := datetime.OfHoursMinutes(test.hours, test.minutes)
		require.NoError(t, err)

		odt := o.Transform(local)

		// The projection must agree with shifting the instant by the
		// offset's seconds and reading the shifted value directly.
		shifted := local.Add(datetime.Of(int64(o.Seconds())))
		require.Equal(t, fieldsOf(shifted, shifted), fieldsOf(odt, odt),
			"offset %+d:%02d", test.hours, test.minutes)

		// The stored reading is untouched.
		require.Equal(t, local, odt.Local())
	}
}

func TestTransformAcrossBoundaries(t *testing.T) {
	// 2023-12-31T22:30 read at +05:30 lands in the next year.
	local := mustDateTime(t, 2023, datetime.December, 31, 22, 30, 0, 0)
	o, err := datetime.OfHoursMinutes(5, 30)
	require.NoError(t, err)
	odt := o.Transform(local)
	require.EqualValues(t, 2024, odt.Year())
	require.Equal(t, datetime.January, odt.Month())
	require.Equal(t, 1, odt.Day())
	require.Equal(t, 1, odt.Yearday())
	require.Equal(t, datetime.Monday, odt.Weekday())
	require.Equal(t, 4, odt.Hour())
	require.Equal(t, 0, odt.Minute())

	// The same reading at -01:00 stays in 2023.
	west, err := datetime.OfHoursMinutes(-1, 0)
	require.NoError(t, err)
	odt = west.Transform(local)
	require.EqualValues(t, 2023, odt.Year())
	require.Equal(t, datetime.December, odt.Month())
	require.Equal(t, 31, odt.Day())
	require.Equal(t, 21, odt.Hour())
	require.Equal(t, 30, odt.Minute())
}

func TestTransformIdempotent(t *testing.T) {
	local := mustDateTime(t, 2024, datetime.February, 29, 23, 59, 59, 999)
	o, err := datetime.OfSeconds(3600)
	require.NoError(t, err)
	odt := o.Transform(local)

	first := fieldsOf(odt, odt)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, fieldsOf(odt, odt), "read %d drifted", i)
	}
	require.Equal(t, local, odt.Local(), "stored reading mutated")
}

func TestOffsetString(t *testing.T) {
	require.Equal(t, "Z", datetime.UTC().String())

	o, err := datetime.OfHoursMinutes(5, 30)
	require.NoError(t, err)
	require.Equal(t, "+05:30", o.String())

	o, err = datetime.OfHoursMinutes(-3, -45)
	require.NoError(t, err)
	require.Equal(t, "-03:45", o.String())
}
