// Package duration parses compound relative deadline expressions such as
// "1m 1d 1w". Each component is an integer immediately followed by a unit
// letter; components may appear in any combination and order.
package duration

import (
	"regexp"
	"time"

	"taskcheck/internal/core/domain"
)

// Component bounds are deliberate: minutes 1-99, days 1-6, weeks 1-5.
// Out-of-range digits simply fail to match and the component is absent.
var (
	minutesPattern = regexp.MustCompile(`([1-9][0-9]?)m`)
	daysPattern    = regexp.MustCompile(`([1-6])d`)
	weeksPattern   = regexp.MustCompile(`([1-5])w`)
)

const (
	secondsPerMinute int64 = 60
	secondsPerDay    int64 = 24 * 3600
	secondsPerWeek   int64 = 7 * 24 * 3600
)

// Parse returns the total number of seconds expressed by text. It fails with
// domain.ErrNoDuration when no component matches.
func Parse(text string) (int64, error) {
	total := component(minutesPattern, text)*secondsPerMinute +
		component(daysPattern, text)*secondsPerDay +
		component(weeksPattern, text)*secondsPerWeek

	if total == 0 {
		return 0, domain.ErrNoDuration
	}
	return total, nil
}

// ParseDuration is Parse with the result as a time.Duration, ready to add to
// a creation timestamp.
func ParseDuration(text string) (time.Duration, error) {
	secs, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func component(pattern *regexp.Regexp, text string) int64 {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	// The pattern admits at most two digits, so this cannot overflow or fail.
	var value int64
	for _, r := range match[1] {
		value = value*10 + int64(r-'0')
	}
	return value
}
