// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"

	"github.com/pkg/errors"
)

// Years outside this range are rejected at construction. The linear
// representation reaches much further, but four-digit years are the
// interchange range and everything a civil-time caller can mean.
const (
	minYear = -9999
	maxYear = 9999
)

// A LocalDate is a calendar date with no time of day and no UTC
// association, stored as a day count since the Unix epoch.
type LocalDate struct {
	days int64
}

// NewLocalDate returns the LocalDate for the given calendar date.
// The day must exist in the given month and year; invalid fields are
// reported as a *FieldError, never clamped.
func NewLocalDate(year int64, month Month, day int) (LocalDate, error) {
	if year < minYear || year > maxYear {
		return LocalDate{}, &FieldError{Field: "year", Value: year, Min: minYear, Max: maxYear}
	}
	if month < January || month > December {
		return LocalDate{}, &FieldError{Field: "month", Value: int64(month), Min: 1, Max: 12}
	}
	if max := month.Days(IsLeapYear(year)); day < 1 || day > max {
		return LocalDate{}, &FieldError{Field: "day", Value: int64(day), Min: 1, Max: int64(max)}
	}
	return LocalDate{days: daysFromCivil(year, month, day)}, nil
}

// DateOfDays returns the LocalDate for a day count since the Unix
// epoch (1970-01-01 is day zero).
func DateOfDays(days int64) LocalDate {
	return LocalDate{days: days}
}

// Days returns the day count since the Unix epoch.
func (d LocalDate) Days() int64 { return d.days }

// Year returns the year in which d falls.
func (d LocalDate) Year() int64 {
	year, _, _, _ := civilFromDays(d.days)
	return year
}

// Month returns the month in which d falls.
func (d LocalDate) Month() Month {
	_, month, _, _ := civilFromDays(d.days)
	return month
}

// Day returns the day of the month of d.
func (d LocalDate) Day() int {
	_, _, day, _ := civilFromDays(d.days)
	return day
}

// Yearday returns the day of the year of d, from 1.
func (d LocalDate) Yearday() int {
	_, _, _, yday := civilFromDays(d.days)
	return yday + 1
}

// Weekday returns the day of the week of d.
func (d LocalDate) Weekday() Weekday {
	return weekdayFromDays(d.days)
}

// At combines d with a time of day into a LocalDateTime.
func (d LocalDate) At(t LocalTime) LocalDateTime {
	return LocalDateTime{ms: mulInt64(d.days, msPerDay) + int64(t.ms)}
}

// String returns the date in ISO-8601 order, for debugging.
func (d LocalDate) String() string {
	year, month, day, _ := civilFromDays(d.days)
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// A LocalTime is a time of day with no date and no UTC association,
// stored as a millisecond count since midnight.
type LocalTime struct {
	ms int32
}

// NewLocalTime returns the LocalTime for the given wall-clock reading.
// Out-of-range fields are reported as a *FieldError.
func NewLocalTime(hour, minute, second, millisecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, &FieldError{Field: "hour", Value: int64(hour), Min: 0, Max: 23}
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, &FieldError{Field: "minute", Value: int64(minute), Min: 0, Max: 59}
	}
	if second < 0 || second > 59 {
		return LocalTime{}, &FieldError{Field: "second", Value: int64(second), Min: 0, Max: 59}
	}
	if millisecond < 0 || millisecond > 999 {
		return LocalTime{}, &FieldError{Field: "millisecond", Value: int64(millisecond), Min: 0, Max: 999}
	}
	ms := ((hour*60+minute)*60+second)*msPerSecond + millisecond
	return LocalTime{ms: int32(ms)}, nil
}

// Midnight returns the LocalTime at the start of the day.
func Midnight() LocalTime { return LocalTime{} }

// Hour returns the hour of the day.
func (t LocalTime) Hour() int { return int(t.ms) / (3600 * msPerSecond) }

// Minute returns the minute of the hour.
func (t LocalTime) Minute() int { return int(t.ms) / (60 * msPerSecond) % 60 }

// Second returns the second of the minute.
func (t LocalTime) Second() int { return int(t.ms) / msPerSecond % 60 }

// Millisecond returns the millisecond of the second.
func (t LocalTime) Millisecond() int { return int(t.ms) % msPerSecond }

// String returns the time of day in ISO-8601 order, for debugging.
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Millisecond())
}

// A LocalDateTime is a wall-clock reading with no UTC association,
// stored as a millisecond count since the Unix epoch. The instant is
// the single source of truth: every calendar and clock field is
// derived from it on access, and two values are equal (with ==)
// exactly when their instants are equal.
type LocalDateTime struct {
	ms int64
}

// FromInstant returns the LocalDateTime for a millisecond count since
// the Unix epoch.
func FromInstant(ms int64) LocalDateTime {
	return LocalDateTime{ms: ms}
}

// NewLocalDateTime returns the LocalDateTime for the given calendar
// date and wall-clock reading. A failing calendar or clock field is
// reported with the original *FieldError as the cause.
func NewLocalDateTime(year int64, month Month, day, hour, minute, second, millisecond int) (LocalDateTime, error) {
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, errors.Wrap(err, "datetime: invalid date")
	}
	tod, err := NewLocalTime(hour, minute, second, millisecond)
	if err != nil {
		return LocalDateTime{}, errors.Wrap(err, "datetime: invalid time of day")
	}
	return date.At(tod), nil
}

// Instant returns the millisecond count since the Unix epoch.
func (t LocalDateTime) Instant() int64 { return t.ms }

// Date returns the calendar date on which t falls.
func (t LocalDateTime) Date() LocalDate {
	return LocalDate{days: floorDiv(t.ms, msPerDay)}
}

// Time returns the time of day of t.
func (t LocalDateTime) Time() LocalTime {
	return LocalTime{ms: int32(floorMod(t.ms, msPerDay))}
}

// Year returns the year in which t falls.
func (t LocalDateTime) Year() int64 { return t.Date().Year() }

// Month returns the month in which t falls.
func (t LocalDateTime) Month() Month { return t.Date().Month() }

// Day returns the day of the month of t.
func (t LocalDateTime) Day() int { return t.Date().Day() }

// Yearday returns the day of the year of t, from 1.
func (t LocalDateTime) Yearday() int { return t.Date().Yearday() }

// Weekday returns the day of the week of t.
func (t LocalDateTime) Weekday() Weekday { return t.Date().Weekday() }

// Hour returns the hour of the day of t.
func (t LocalDateTime) Hour() int { return t.Time().Hour() }

// Minute returns the minute of the hour of t.
func (t LocalDateTime) Minute() int { return t.Time().Minute() }

// Second returns the second of the minute of t.
func (t LocalDateTime) Second() int { return t.Time().Second() }

// Millisecond returns the millisecond of the second of t.
func (t LocalDateTime) Millisecond() int { return t.Time().Millisecond() }

// Add returns the LocalDateTime d later than t. Day, month and year
// boundaries roll over purely through linear arithmetic on the instant
// followed by re-derivation; there is no month-end special casing to
// get wrong.
func (t LocalDateTime) Add(d Duration) LocalDateTime {
	ms := addInt64(t.ms, mulInt64(d.secs, msPerSecond))
	return LocalDateTime{ms: addInt64(ms, int64(d.millis))}
}

// Sub returns the LocalDateTime d earlier than t.
func (t LocalDateTime) Sub(d Duration) LocalDateTime {
	return t.Add(d.Neg())
}

// Since returns the Duration from u to t.
func (t LocalDateTime) Since(u LocalDateTime) Duration {
	ms := subInt64(t.ms, u.ms)
	return OfMs(ms/msPerSecond, ms%msPerSecond)
}

// Before reports whether t precedes u.
func (t LocalDateTime) Before(u LocalDateTime) bool { return t.ms < u.ms }

// After reports whether t follows u.
func (t LocalDateTime) After(u LocalDateTime) bool { return t.ms > u.ms }

// String returns the reading in ISO-8601 order, for debugging.
func (t LocalDateTime) String() string {
	return t.Date().String() + "T" + t.Time().String()
}
