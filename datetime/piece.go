// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

// DatePiece is the capability set of values that carry a calendar
// date. Implementations derive every field from a single linear
// representation on each call; none of the fields is stored.
type DatePiece interface {
	// Year returns the proleptic Gregorian year.
	Year() int64

	// Month returns the month of the year.
	Month() Month

	// Day returns the day of the month, from 1.
	Day() int

	// Yearday returns the day of the year, from 1 (so January 1 is 1
	// and December 31 is 365, or 366 in a leap year).
	Yearday() int

	// Weekday returns the day of the week.
	Weekday() Weekday
}

// TimePiece is the capability set of values that carry a time of day.
type TimePiece interface {
	// Hour returns the hour of the day, 0 through 23.
	Hour() int

	// Minute returns the minute of the hour, 0 through 59.
	Minute() int

	// Second returns the second of the minute, 0 through 59.
	Second() int

	// Millisecond returns the millisecond of the second, 0 through 999.
	Millisecond() int
}

var (
	_ DatePiece = LocalDate{}
	_ TimePiece = LocalTime{}
	_ DatePiece = LocalDateTime{}
	_ TimePiece = LocalDateTime{}
	_ DatePiece = OffsetDateTime{}
	_ TimePiece = OffsetDateTime{}
	_ DatePiece = ZonedDateTime{}
	_ TimePiece = ZonedDateTime{}
)
