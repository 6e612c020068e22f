// Copyright 2024 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarkdatetime

import (
	"strings"
	"testing"

	"go.starlark.net/starlark"

	"go.civiltime.dev/datetime"
)

func exec(t *testing.T, src string) starlark.StringDict {
	t.Helper()
	thread := &starlark.Thread{Name: "test"}
	globals, err := starlark.ExecFile(thread, "test.star", src, starlark.StringDict{
		ModuleName: Module,
	})
	if err != nil {
		t.Fatal(err)
	}
	return globals
}

func execErr(t *testing.T, src string) error {
	t.Helper()
	thread := &starlark.Thread{Name: "test"}
	_, err := starlark.ExecFile(thread, "test.star", src, starlark.StringDict{
		ModuleName: Module,
	})
	if err == nil {
		t.Fatalf("script succeeded, want error:\n%s", src)
	}
	return err
}

func TestDateTimeAttrs(t *testing.T) {
	globals := exec(t, `
dt = datetime.datetime(2024, 2, 29, hour=12, minute=34, second=56, millisecond=789)
year = dt.year
month = dt.month
month_name = dt.month_name
day = dt.day
yearday = dt.yearday
weekday_name = dt.weekday_name
hour = dt.hour
minute = dt.minute
second = dt.second
millisecond = dt.millisecond
`)
	for name, want := range map[string]string{
		"year":         "2024",
		"month":        "2",
		"month_name":   `"February"`,
		"day":          "29",
		"yearday":      "60",
		"weekday_name": `"Thursday"`,
		"hour":         "12",
		"minute":       "34",
		"second":       "56",
		"millisecond":  "789",
	} {
		if got := globals[name].String(); got != want {
			t.Errorf("%s = %s, want %s", name, got, want)
		}
	}
}

func TestDurationArithmetic(t *testing.T) {
	globals := exec(t, `
d = datetime.duration(seconds=90, milliseconds=500)
sum = d + datetime.duration(seconds=9, milliseconds=500)
scaled = datetime.duration(seconds=1, milliseconds=500) * 2
shifted = datetime.datetime(2023, 12, 31, hour=23) + datetime.hour
lt = datetime.duration(seconds=1) < datetime.duration(seconds=2)
`)
	if got := globals["sum"].String(); got != "100s" {
		t.Errorf("sum = %s, want 100s", got)
	}
	if got := globals["scaled"].String(); got != "3s" {
		t.Errorf("scaled = %s, want 3s", got)
	}
	if got := globals["shifted"].(DateTime).DateTime.Year(); got != 2024 {
		t.Errorf("shifted year = %d, want 2024", got)
	}
	if got := globals["lt"]; got != starlark.True {
		t.Errorf("lt = %v, want True", got)
	}
}

func TestDateTimeDifference(t *testing.T) {
	globals := exec(t, `
a = datetime.datetime(2024, 3, 1)
b = datetime.datetime(2024, 2, 29)
gap = a - b
`)
	want := Duration{Duration: datetime.Of(86400)}
	if globals["gap"] != want {
		t.Errorf("gap = %v, want %v", globals["gap"], want)
	}
}

func TestOffsetTransform(t *testing.T) {
	globals := exec(t, `
local = datetime.datetime(2023, 12, 31, hour=22, minute=30)
east = datetime.offset(hours=5, minutes=30)
projected = east.transform(local)
year = projected.year
hour = projected.hour
same = projected.local == local
utc_year = datetime.utc.transform(local).year
`)
	if got := globals["year"].String(); got != "2024" {
		t.Errorf("year = %s, want 2024", got)
	}
	if got := globals["hour"].String(); got != "4" {
		t.Errorf("hour = %s, want 4", got)
	}
	if globals["same"] != starlark.True {
		t.Errorf("projection modified the stored reading")
	}
	if got := globals["utc_year"].String(); got != "2023" {
		t.Errorf("utc_year = %s, want 2023", got)
	}
}

func TestOffsetSeconds(t *testing.T) {
	globals := exec(t, `
o = datetime.offset(seconds=86400)
s = o.seconds
u = datetime.utc.is_utc
`)
	if got := globals["s"].String(); got != "86400" {
		t.Errorf("seconds = %s, want 86400", got)
	}
	if globals["u"] != starlark.True {
		t.Errorf("utc.is_utc = %v, want True", globals["u"])
	}
}

func TestConstructionErrors(t *testing.T) {
	for _, test := range []struct {
		src  string
		want string
	}{
		{`datetime.datetime(2023, 2, 29)`, "day 29 out of range"},
		{`datetime.date(2023, 13, 1)`, "month 13 out of range"},
		{`datetime.offset(seconds=86401)`, "out of range"},
		{`datetime.offset(hours=-4, minutes=30)`, "sign mismatch"},
	} {
		err := execErr(t, test.src)
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: error %q does not mention %q", test.src, err, test.want)
		}
	}
}

func TestFromInstant(t *testing.T) {
	globals := exec(t, `
dt = datetime.from_instant(0)
y = dt.year
i = (dt + datetime.day).instant
`)
	if got := globals["y"].String(); got != "1970" {
		t.Errorf("y = %s, want 1970", got)
	}
	if got := globals["i"].String(); got != "86400000" {
		t.Errorf("i = %s, want 86400000", got)
	}
}
