package scheduler

import "strconv"

// Suffix returns the English ordinal suffix for a day of the month: "st", "nd", "rd" or "th".
func Suffix(day int) string {
	switch day % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Ordinal returns the day followed by its suffix, e.g. "21st".
func Ordinal(day int) string {
	return strconv.Itoa(day) + Suffix(day)
}
