// Copyright 2020 Aleksandr Demakin. All rights reserved.

package selfcheck

import (
	"testing"

	"github.com/avdva/extended"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSuite(t *testing.T) {
	a := assert.New(t)
	suite := Suite()
	names := make([]string, 0, len(suite))
	for _, c := range suite {
		names = append(names, c.Name)
	}
	want := []string{
		"basic functionality",
		"comparison",
		"unary operators",
		"addition and subtraction",
		"multiplication and division",
		"finite value operations",
		"text formatting and parsing",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Suite() names mismatch (-want +got):\n%s", diff)
	}

	report := Run(suite)
	for _, res := range report.Results {
		a.NoError(res.Err, res.Name)
	}
	a.True(report.OK())
	a.Equal(len(suite), report.Passed)
	a.Equal(0, report.Failed)
	a.Equal("7 out of 7 checks passed", report.String())
}

func TestRunFailures(t *testing.T) {
	a := assert.New(t)
	checks := []Check{
		{Name: "ok", Run: func() error { return nil }},
		{Name: "wrong", Run: func() error {
			var e expectation
			e.that(true, "first")
			e.that(false, "second")
			e.that(false, "third")
			return e.err
		}},
		{Name: "internal", Run: func() error {
			_, err := extended.PosInf[int]().Add(extended.NegInf[int]())
			return err
		}},
		{Name: "panic", Run: func() error {
			extended.PosInf[int]().MustFiniteValue()
			return nil
		}},
	}
	report := Run(checks)
	a.False(report.OK())
	a.Equal(1, report.Passed)
	a.Equal(3, report.Failed)
	a.Equal("1 out of 4 checks passed", report.String())
	if a.Len(report.Results, 4) {
		a.Equal("ok succeeded", report.Results[0].String())

		a.ErrorIs(report.Results[1].Err, ErrCheckFailed)
		a.Equal("wrong failed: check failed: second", report.Results[1].String())

		a.ErrorIs(report.Results[2].Err, extended.ErrIndeterminate)
		a.Equal("internal failed internally: extended: add: indeterminate form: +inf + -inf", report.Results[2].String())

		a.ErrorIs(report.Results[3].Err, ErrPanic)
		a.Contains(report.Results[3].String(), "panic failed internally: check panicked")
	}
}

func TestRunEmpty(t *testing.T) {
	a := assert.New(t)
	report := Run(nil)
	a.True(report.OK())
	a.Equal("0 out of 0 checks passed", report.String())
}
