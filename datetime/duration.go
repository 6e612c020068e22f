// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"math"
)

// A Duration is a signed span of time with millisecond precision,
// stored as whole seconds plus a millisecond remainder. The remainder
// is always normalized: its magnitude is below one second and its sign
// matches the sign of the seconds part, so a Duration has exactly one
// representation.
//
// Durations whose arithmetic would leave the representable range panic
// rather than wrap; wraparound would silently corrupt every calendar
// computation downstream.
type Duration struct {
	secs   int64
	millis int32
}

// Of returns the Duration spanning the given number of whole seconds.
func Of(seconds int64) Duration {
	return Duration{secs: seconds}
}

// OfMs returns the Duration spanning the given seconds and
// milliseconds. The inputs need not be normalized; the result is.
func OfMs(seconds int64, milliseconds int64) Duration {
	return normalize(addInt64(seconds, milliseconds/msPerSecond), milliseconds%msPerSecond)
}

// normalize carries whole seconds out of millis and makes the
// remainder's sign agree with the seconds part.
// Precondition: |millis| < 1000.
func normalize(secs, millis int64) Duration {
	if millis < 0 && secs > 0 {
		secs--
		millis += msPerSecond
	} else if millis > 0 && secs < 0 {
		secs++
		millis -= msPerSecond
	}
	return Duration{secs: secs, millis: int32(millis)}
}

// Seconds returns the whole-second part of the duration.
func (d Duration) Seconds() int64 { return d.secs }

// Milliseconds returns the sub-second part of the duration, in the
// range (-1000, 1000) with the same sign as Seconds.
func (d Duration) Milliseconds() int32 { return d.millis }

// IsZero reports whether the duration spans no time.
func (d Duration) IsZero() bool { return d.secs == 0 && d.millis == 0 }

// Add returns the duration d+o.
func (d Duration) Add(o Duration) Duration {
	millis := int64(d.millis) + int64(o.millis)
	secs := addInt64(d.secs, o.secs)
	secs = addInt64(secs, millis/msPerSecond)
	return normalize(secs, millis%msPerSecond)
}

// Sub returns the duration d-o.
func (d Duration) Sub(o Duration) Duration {
	return d.Add(o.Neg())
}

// Neg returns the duration -d.
func (d Duration) Neg() Duration {
	if d.secs == math.MinInt64 {
		panic("datetime: arithmetic overflow")
	}
	return Duration{secs: -d.secs, millis: -d.millis}
}

// Times returns the duration d scaled by n.
func (d Duration) Times(n int64) Duration {
	secs := mulInt64(d.secs, n)
	millis := mulInt64(int64(d.millis), n)
	secs = addInt64(secs, millis/msPerSecond)
	return normalize(secs, millis%msPerSecond)
}

// String returns the duration as "<seconds>s" or "<seconds>.<millis>s".
func (d Duration) String() string {
	if d.millis == 0 {
		return fmt.Sprintf("%ds", d.secs)
	}
	millis := d.millis
	if millis < 0 {
		millis = -millis
	}
	if d.secs == 0 && d.millis < 0 {
		return fmt.Sprintf("-0.%03ds", millis)
	}
	return fmt.Sprintf("%d.%03ds", d.secs, millis)
}

// addInt64 returns a+b, panicking on overflow.
func addInt64(a, b int64) int64 {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		panic("datetime: arithmetic overflow")
	}
	return sum
}

// subInt64 returns a-b, panicking on overflow.
func subInt64(a, b int64) int64 {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		panic("datetime: arithmetic overflow")
	}
	return diff
}

// mulInt64 returns a*b, panicking on overflow.
func mulInt64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		panic("datetime: arithmetic overflow")
	}
	p := a * b
	if p/b != a {
		panic("datetime: arithmetic overflow")
	}
	return p
}
