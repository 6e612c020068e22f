// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

// A RuleSource resolves the offset a zone applies at a given instant.
// Implementations come from outside this package (a tzdata reader, a
// table of transitions, a test fixture); the package only consumes
// them, read-only, keyed by the instant being projected.
//
// A RuleSource must be safe for concurrent use if the TimeZones built
// on it are shared across goroutines.
type RuleSource interface {
	// OffsetAt returns the offset from UTC, in seconds east, in
	// effect at the given instant (milliseconds since the Unix
	// epoch).
	OffsetAt(instant int64) int32
}

// FixedRules is a RuleSource whose offset never varies: every instant
// resolves to the same number of seconds east of UTC.
type FixedRules int32

// OffsetAt implements RuleSource.
func (r FixedRules) OffsetAt(int64) int32 { return int32(r) }

// A TimeZone is a named policy resolving a possibly time-varying
// offset for each instant. The rule data is held by reference and may
// be shared by any number of ZonedDateTime values.
type TimeZone struct {
	name  string
	rules RuleSource
}

// NewTimeZone returns a zone with the given name and rules. A nil
// rules source behaves as UTC.
func NewTimeZone(name string, rules RuleSource) *TimeZone {
	return &TimeZone{name: name, rules: rules}
}

// Name returns the zone's name.
func (z *TimeZone) Name() string { return z.name }

// OffsetAt returns the offset in seconds east of UTC the zone applies
// at the given instant.
func (z *TimeZone) OffsetAt(instant int64) int32 {
	if z == nil || z.rules == nil {
		return 0
	}
	return z.rules.OffsetAt(instant)
}

// Convert pairs local with z into a ZonedDateTime. As with
// Offset.Transform, nothing is validated or modified here.
func (z *TimeZone) Convert(local LocalDateTime) ZonedDateTime {
	return ZonedDateTime{local: local, zone: z}
}

// A ZonedDateTime is a wall-clock reading paired with the zone under
// which it is to be read. It is the zone-aware analogue of
// OffsetDateTime: the effective offset is looked up per instant, so
// the same zone can shift two readings by different amounts across a
// rule transition. The reading itself is never mutated.
type ZonedDateTime struct {
	local LocalDateTime
	zone  *TimeZone
}

// Local returns the unadjusted wall-clock reading as originally
// supplied.
func (t ZonedDateTime) Local() LocalDateTime { return t.local }

// Zone returns the zone under which the reading is projected.
func (t ZonedDateTime) Zone() *TimeZone { return t.zone }

// adjust shifts the reading by the offset the zone applies at that
// reading's instant.
func (t ZonedDateTime) adjust() LocalDateTime {
	return t.local.Add(Of(int64(t.zone.OffsetAt(t.local.Instant()))))
}

// Year returns the year, after applying the zone's offset.
func (t ZonedDateTime) Year() int64 { return t.adjust().Year() }

// Month returns the month, after applying the zone's offset.
func (t ZonedDateTime) Month() Month { return t.adjust().Month() }

// Day returns the day of the month, after applying the zone's offset.
func (t ZonedDateTime) Day() int { return t.adjust().Day() }

// Yearday returns the day of the year, after applying the zone's
// offset.
func (t ZonedDateTime) Yearday() int { return t.adjust().Yearday() }

// Weekday returns the day of the week, after applying the zone's
// offset.
func (t ZonedDateTime) Weekday() Weekday { return t.adjust().Weekday() }

// Hour returns the hour of the day, after applying the zone's offset.
func (t ZonedDateTime) Hour() int { return t.adjust().Hour() }

// Minute returns the minute of the hour, after applying the zone's
// offset.
func (t ZonedDateTime) Minute() int { return t.adjust().Minute() }

// Second returns the second of the minute, after applying the zone's
// offset.
func (t ZonedDateTime) Second() int { return t.adjust().Second() }

// Millisecond returns the millisecond of the second, after applying
// the zone's offset.
func (t ZonedDateTime) Millisecond() int { return t.adjust().Millisecond() }

// String returns the projected reading followed by the zone name, for
// debugging.
func (t ZonedDateTime) String() string {
	name := "UTC"
	if t.zone != nil && t.zone.name != "" {
		name = t.zone.name
	}
	return t.adjust().String() + "[" + name + "]"
}
