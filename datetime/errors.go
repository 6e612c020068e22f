// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import "fmt"

// The closed set of construction failures. Every fallible constructor
// reports exactly one of these; nothing is deferred past construction.
var (
	// ErrOutOfRange reports an offset component outside its
	// admissible bound.
	ErrOutOfRange = fmt.Errorf("offset field out of range")

	// ErrSignMismatch reports hour and minute components of an offset
	// that disagree in sign.
	ErrSignMismatch = fmt.Errorf("offset sign mismatch")
)

// A FieldError reports a calendar or clock field outside its admissible
// range. The range is inclusive on both ends.
type FieldError struct {
	Field string // "year", "month", "day", "hour", ...
	Value int64
	Min   int64
	Max   int64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}
