// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

// Calendar kernel: the bijection between (year, month, day) triples and
// day counts since the Unix epoch, using the proleptic Gregorian
// calendar. The cycle decomposition follows the Go standard library's
// time package.

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400; days before it will not compute correctly,
	// but otherwise it can be changed at will.
	absoluteZeroYear = -292277022399

	// The year of the internal day zero.
	internalYear = 1

	// Offsets to convert between internal and absolute day counts.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Days from 0001-01-01 to 1970-01-01.
	epochToInternal = 719162
	epochToAbsolute = epochToInternal + internalToAbsolute

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461

	msPerSecond = 1000
	msPerDay    = 86400 * msPerSecond
)

// IsLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule: divisible by 4, except centuries, unless divisible
// by 400.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysBefore[m] counts the days in a non-leap year before month m+1
// begins. daysBefore[12] is the length of a non-leap year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// daysFromCivil returns the day count since the Unix epoch for the
// given calendar date. The date must already be valid.
func daysFromCivil(year int64, month Month, day int) int64 {
	// Days from the absolute zero year to the start of year.
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	d += int64(daysBefore[month-1])
	if IsLeapYear(year) && month >= March {
		d++
	}
	d += int64(day - 1)

	return d - epochToAbsolute
}

// civilFromDays decomposes a day count since the Unix epoch into its
// calendar date and zero-based day of year.
func civilFromDays(days int64) (year int64, month Month, day int, yday int) {
	d := uint64(days + epochToAbsolute)

	// Account for 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day of
	// that year d/daysPer100Years will be 4 instead of 3. Cut it back
	// down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not affect
	// the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on its last day d/365 will be
	// 4 instead of 3. Cut it back down by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int64(y) + absoluteZeroYear
	yday = int(d)

	day = yday
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return year, February, 29, yday
		}
	}

	// Estimate the month assuming every month has 31 days; the
	// estimate may be low by at most one month.
	month = Month(day/31) + 1
	end := daysBefore[month]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month-1]
	}
	day = day - begin + 1

	return year, month, day, yday
}

// weekdayFromDays returns the weekday for a day count since the Unix
// epoch. 1970-01-01 was a Thursday.
func weekdayFromDays(days int64) Weekday {
	return Weekday(floorMod(days+int64(Thursday), 7))
}

// floorDiv returns the quotient of a/b rounded toward negative
// infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a-floorDiv(a, b)*b, which lies in [0, b).
// b must be positive.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
