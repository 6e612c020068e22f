// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// An Offset is a validated displacement from UTC, in seconds east, or
// the UTC sentinel carrying no displacement at all. Construction is the
// only validation point: once built, an Offset can be applied without
// further checks.
//
// The admissible range is a full day in either direction, inclusive:
// [-86400, +86400] seconds. That exceeds any real-world offset, but it
// is the contract.
type Offset struct {
	seconds int32
	fixed   bool
}

// UTC returns the offset that shifts nothing.
func UTC() Offset {
	return Offset{}
}

// OfSeconds returns the offset of the given number of seconds east of
// UTC. It fails with ErrOutOfRange if seconds lies outside
// [-86400, 86400]; both endpoints are accepted.
func OfSeconds(seconds int32) (Offset, error) {
	if seconds < -86400 || seconds > 86400 {
		return Offset{}, ErrOutOfRange
	}
	return Offset{seconds: seconds, fixed: true}, nil
}

// OfHoursMinutes returns the offset of the given whole hours and
// minutes east of UTC. Hours and minutes must agree in sign (either
// may be zero); strictly mixed signs fail with ErrSignMismatch before
// any range check. Hours outside (-24, 24) or minutes outside
// (-60, 60), both exclusive, fail with ErrOutOfRange.
func OfHoursMinutes(hours, minutes int) (Offset, error) {
	switch {
	case (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0):
		return Offset{}, ErrSignMismatch
	case hours <= -24 || hours >= 24:
		return Offset{}, ErrOutOfRange
	case minutes <= -60 || minutes >= 60:
		return Offset{}, ErrOutOfRange
	}
	return OfSeconds(int32(hours*3600 + minutes*60))
}

// IsUTC reports whether o is the no-offset sentinel. Note that a fixed
// offset of zero seconds shifts nothing too, but is not the sentinel.
func (o Offset) IsUTC() bool { return !o.fixed }

// Seconds returns the displacement in seconds east of UTC. The UTC
// sentinel reports zero.
func (o Offset) Seconds() int32 { return o.seconds }

// adjust shifts a wall-clock reading by the offset. The sentinel is a
// no-op.
func (o Offset) adjust(local LocalDateTime) LocalDateTime {
	if !o.fixed {
		return local
	}
	return local.Add(Of(int64(o.seconds)))
}

// Transform pairs local with o into an OffsetDateTime. No validation
// happens here, and local is not modified; the pair projects the same
// instant through o on every field access.
func (o Offset) Transform(local LocalDateTime) OffsetDateTime {
	return OffsetDateTime{local: local, offset: o}
}

// String returns the offset in ±hh:mm form, for debugging.
func (o Offset) String() string {
	if !o.fixed {
		return "Z"
	}
	s := o.seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
}

// An OffsetDateTime is a wall-clock reading paired with the fixed
// offset under which it is to be read. The stored reading is never
// mutated: every accessor shifts it by the offset afresh and derives
// the field from the shifted instant, so repeated reads are idempotent.
type OffsetDateTime struct {
	local  LocalDateTime
	offset Offset
}

// Local returns the unadjusted wall-clock reading as originally
// supplied.
func (t OffsetDateTime) Local() LocalDateTime { return t.local }

// Offset returns the offset under which the reading is projected.
func (t OffsetDateTime) Offset() Offset { return t.offset }

// Year returns the year, after applying the offset.
func (t OffsetDateTime) Year() int64 { return t.offset.adjust(t.local).Year() }

// Month returns the month, after applying the offset.
func (t OffsetDateTime) Month() Month { return t.offset.adjust(t.local).Month() }

// Day returns the day of the month, after applying the offset.
func (t OffsetDateTime) Day() int { return t.offset.adjust(t.local).Day() }

// Yearday returns the day of the year, after applying the offset.
func (t OffsetDateTime) Yearday() int { return t.offset.adjust(t.local).Yearday() }

// Weekday returns the day of the week, after applying the offset.
func (t OffsetDateTime) Weekday() Weekday { return t.offset.adjust(t.local).Weekday() }

// Hour returns the hour of the day, after applying the offset.
func (t OffsetDateTime) Hour() int { return t.offset.adjust(t.local).Hour() }

// Minute returns the minute of the hour, after applying the offset.
func (t OffsetDateTime) Minute() int { return t.offset.adjust(t.local).Minute() }

// Second returns the second of the minute, after applying the offset.
func (t OffsetDateTime) Second() int { return t.offset.adjust(t.local).Second() }

// Millisecond returns the millisecond of the second, after applying
// the offset.
func (t OffsetDateTime) Millisecond() int { return t.offset.adjust(t.local).Millisecond() }

// String returns the projected reading followed by the offset, for
// debugging.
func (t OffsetDateTime) String() string {
	return t.offset.adjust(t.local).String() + t.offset.String()
}
