package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dials/corenote/internal/constants"
	apperrors "github.com/dials/corenote/internal/errors"
)

var reLooseDate = regexp.MustCompile(`^(\d+)-(\d+)-(\d+)$`)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NewDate returns the calendar date as midnight UTC. Out-of-range components
// (month 13, April 31st, ...) are rejected rather than normalized.
func NewDate(year, month, day int) (time.Time, error) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", apperrors.ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// ParseDate parses YYYY-MM-DD where each component may have any number of digits.
func ParseDate(s string) (time.Time, error) {
	m := reLooseDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", apperrors.ErrInvalidDate, s)
	}
	parts := make([]int, 3)
	for i, raw := range m[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, s)
		}
		parts[i] = n
	}
	return NewDate(parts[0], parts[1], parts[2])
}

// FormatDate formats a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(constants.DateFormat)
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayIn returns the calendar date of now in the given location.
func TodayIn(now time.Time, loc *time.Location) time.Time {
	return DateOf(now.In(loc))
}

// ParseClock parses a time string (HH:MM) into hour and minute.
func ParseClock(timeStr string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format %q: %w", timeStr, err)
	}
	return t.Hour(), t.Minute(), nil
}

// CombineDateAndTime places the wall clock time (HH:MM) on the calendar date in loc.
func CombineDateAndTime(date time.Time, timeStr string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, _, err := ParseClock(timeStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
