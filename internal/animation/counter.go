// Package animation computes counter values as a pure function of elapsed
// time, so any frame scheduler can sample them.
package animation

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Counter animates an integer from From to To over Duration
type Counter struct {
	From     int
	To       int
	Duration time.Duration
}

// Value returns the counter value after elapsed time. It is From at or before
// zero, To at or after Duration, and rises linearly (floored) in between.
func (c Counter) Value(elapsed time.Duration) int {
	if elapsed <= 0 {
		return c.From
	}
	if c.Duration <= 0 || elapsed >= c.Duration {
		return c.To
	}

	progress := float64(elapsed) / float64(c.Duration)
	return c.From + int(math.Floor(float64(c.To-c.From)*progress))
}

// Done reports whether the counter reached its target
func (c Counter) Done(elapsed time.Duration) bool {
	return c.Duration <= 0 || elapsed >= c.Duration
}

var numberPattern = regexp.MustCompile(`\d+`)

// Stat is a display value such as "50+" or "100%" split around its first number
type Stat struct {
	Prefix string
	Number int
	Suffix string
}

// ParseStat splits text around its first run of digits. ok is false when the
// text holds no number, in which case it should be shown as-is.
func ParseStat(text string) (Stat, bool) {
	loc := numberPattern.FindStringIndex(text)
	if loc == nil {
		return Stat{}, false
	}

	n, err := strconv.Atoi(text[loc[0]:loc[1]])
	if err != nil {
		return Stat{}, false
	}

	return Stat{
		Prefix: text[:loc[0]],
		Number: n,
		Suffix: text[loc[1]:],
	}, true
}

// Format renders value in place of the stat's number
func (s Stat) Format(value int) string {
	return s.Prefix + strconv.Itoa(value) + s.Suffix
}

// Counter returns a counter running from zero to the stat's number
func (s Stat) Counter(d time.Duration) Counter {
	return Counter{From: 0, To: s.Number, Duration: d}
}
