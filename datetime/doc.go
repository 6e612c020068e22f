// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime provides calendar and civil-time calculations.
//
// The package converts between a linear time value (milliseconds since
// the Unix epoch) and human calendar fields, performs duration
// arithmetic, and projects instants through fixed or zone-derived UTC
// offsets.
//
// Every type is an immutable value. A date/time value stores only its
// linear representation; calendar and clock fields (year, month, day,
// weekday, hour, ...) are derived on each access, never cached, so a
// value has exactly one source of truth. Two LocalDateTime values are
// equal exactly when their instants are equal.
//
// Field access is split into two capability sets, DatePiece and
// TimePiece, implemented independently by each concrete type. Code
// that renders or inspects date/time values should accept one of these
// interfaces rather than a concrete type.
//
// Fallible constructors return an error for invalid input and never
// clamp or normalize it. Arithmetic that would overflow the
// representable range panics: overflow indicates misuse, not bad
// external input.
//
// The package performs no I/O. Resolving a named zone's offset rules
// from the host system is the caller's job; see RuleSource.
package datetime // import "go.civiltime.dev/datetime"
