package constants

const (
	// DisplayDateFormat renders a date as "Wednesday, February"; the day and its ordinal suffix are appended separately.
	DisplayDateFormat = "Monday, January"

	// HourFormat renders an on-the-hour time as "4pm"
	HourFormat = "3pm"

	// HourMinuteFormat renders a time with minutes as "4:30pm"
	HourMinuteFormat = "3:04pm"

	// ZoneAbbrevFormat renders the zone abbreviation in effect, e.g. "GMT" or "PDT"
	ZoneAbbrevFormat = "MST"
)
