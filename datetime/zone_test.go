// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.civiltime.dev/datetime"
)

// switchingRules is a RuleSource whose offset changes at a fixed
// transition instant, the way a zone's offset changes at a DST
// boundary.
type switchingRules struct {
	transition    int64
	before, after int32
}

func (r switchingRules) OffsetAt(instant int64) int32 {
	if instant < r.transition {
		return r.before
	}
	return r.after
}

func TestFixedRulesZone(t *testing.T) {
	zone := datetime.NewTimeZone("Asia/Kolkata", datetime.FixedRules(5*3600+30*60))
	require.Equal(t, "Asia/Kolkata", zone.Name())

	local := mustDateTime(t, 2023, datetime.December, 31, 22, 30, 0, 0)
	zdt := zone.Convert(local)

	// Same projection as the equivalent fixed offset.
	o, err := datetime.OfHoursMinutes(5, 30)
	require.NoError(t, err)
	require.Equal(t, fieldsOf(o.Transform(local), o.Transform(local)), fieldsOf(zdt, zdt))
	require.Equal(t, local, zdt.Local())
	require.Same(t, zone, zdt.Zone())
}

func TestZoneRulesVaryByInstant(t *testing.T) {
	// One hour forward at 2024-03-10T10:00 (in the projected zone's
	// terms the instant is arbitrary; only the lookup key matters).
	transition := mustDateTime(t, 2024, datetime.March, 10, 10, 0, 0, 0)
	zone := datetime.NewTimeZone("America/Somewhere", switchingRules{
		transition: transition.Instant(),
		before:     -8 * 3600,
		after:      -7 * 3600,
	})

	winter := mustDateTime(t, 2024, datetime.January, 15, 12, 0, 0, 0)
	require.Equal(t, 4, zone.Convert(winter).Hour())

	summer := mustDateTime(t, 2024, datetime.June, 15, 12, 0, 0, 0)
	require.Equal(t, 5, zone.Convert(summer).Hour())

	// Two readings of the same zone disagree on offset across the
	// transition; the zone value itself is shared, not copied.
	require.Equal(t, int32(-8*3600), zone.OffsetAt(winter.Instant()))
	require.Equal(t, int32(-7*3600), zone.OffsetAt(summer.Instant()))
}

func TestZoneNilRulesIsUTC(t *testing.T) {
	zone := datetime.NewTimeZone("Etc/UTC", nil)
	local := mustDateTime(t, 2024, datetime.February, 29, 23, 59, 59, 999)
	zdt := zone.Convert(local)
	require.Equal(t, fieldsOf(local, local), fieldsOf(zdt, zdt))
}

func TestZonedDateTimeIdempotent(t *testing.T) {
	zone := datetime.NewTimeZone("Pacific/Kiritimati", datetime.FixedRules(14*3600))
	local := mustDateTime(t, 2023, datetime.December, 31, 22, 30, 0, 0)
	zdt := zone.Convert(local)

	first := fieldsOf(zdt, zdt)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, fieldsOf(zdt, zdt), "read %d drifted", i)
	}
	require.Equal(t, local, zdt.Local())
	require.EqualValues(t, 2024, zdt.Year())
}
