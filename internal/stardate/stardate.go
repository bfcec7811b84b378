// Package stardate computes the stardate shown under the clock face.
//
// A stardate here is the calendar year followed by the number of elapsed
// thousandths of a year since January 1, where a thousandth is a fixed
// 315,576 seconds regardless of leap years:
//
//	stardate = "YYYY." + round((now - Jan 1 00:00) / 315576)
//
// The fraction runs from 0 on New Year's Day to about 100 late on
// December 31.
package stardate

import (
	"fmt"
	"time"

	"github.com/julianstephens/simpleclock/internal/constants"
)

// Compute returns the stardate for t, evaluated in t's own location.
func Compute(t time.Time) string {
	return fmt.Sprintf("%04d.%.0f", t.Year(), Fraction(t))
}

// Fraction returns the unrounded fraction part of the stardate for t.
func Fraction(t time.Time) float64 {
	return ElapsedSeconds(t) / constants.StardateDivisor
}

// ElapsedSeconds returns the seconds between midnight on January 1 of t's
// year and t, both in t's location.
func ElapsedSeconds(t time.Time) float64 {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return t.Sub(start).Seconds()
}
