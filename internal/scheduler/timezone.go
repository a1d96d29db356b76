package scheduler

import (
	"fmt"
	"time"

	"github.com/dials/corenote/internal/constants"
	"github.com/dials/corenote/internal/models"
	"github.com/dials/corenote/internal/utils"
)

// ZonePair is the standard meeting time as seen in two timezones. The times are
// expected to stay static; daylight saving transitions that happen on different
// dates in the two zones break the pairing for a few weeks a year.
type ZonePair struct {
	PrimaryZone   string
	PrimaryTime   string // HH:MM
	SecondaryZone string
	SecondaryTime string // HH:MM
}

// DefaultZonePair is 16:00 London / 08:00 Los Angeles.
var DefaultZonePair = ZonePair{
	PrimaryZone:   constants.DefaultPrimaryZone,
	PrimaryTime:   constants.DefaultPrimaryTime,
	SecondaryZone: constants.DefaultSecondaryZone,
	SecondaryTime: constants.DefaultSecondaryTime,
}

// Reconcile computes the standard meeting time of date in both zones and checks that
// they still coincide. On a mismatch it also computes the pairing anchored on the
// secondary zone's standard time.
func Reconcile(date time.Time, zones ZonePair) (models.TimezoneConflictResult, error) {
	primaryLoc, err := utils.LoadLocation(zones.PrimaryZone)
	if err != nil {
		return models.TimezoneConflictResult{}, fmt.Errorf("primary zone %q: %w", zones.PrimaryZone, err)
	}
	secondaryLoc, err := utils.LoadLocation(zones.SecondaryZone)
	if err != nil {
		return models.TimezoneConflictResult{}, fmt.Errorf("secondary zone %q: %w", zones.SecondaryZone, err)
	}

	primaryExpected, err := utils.CombineDateAndTime(date, zones.PrimaryTime, primaryLoc)
	if err != nil {
		return models.TimezoneConflictResult{}, fmt.Errorf("primary time: %w", err)
	}
	secondaryHour, secondaryMinute, err := utils.ParseClock(zones.SecondaryTime)
	if err != nil {
		return models.TimezoneConflictResult{}, fmt.Errorf("secondary time: %w", err)
	}

	secondaryEquivalent := primaryExpected.In(secondaryLoc)

	result := models.TimezoneConflictResult{
		PrimaryDateLabel:  DateLabel(date),
		PrimaryTimeText:   TimeAndZone(primaryExpected),
		SecondaryTimeText: TimeAndZone(secondaryEquivalent),
	}

	if secondaryEquivalent.Hour() == secondaryHour && secondaryEquivalent.Minute() == secondaryMinute {
		return result, nil
	}

	secondaryExpected := time.Date(date.Year(), date.Month(), date.Day(),
		secondaryHour, secondaryMinute, 0, 0, secondaryLoc)
	primaryEquivalent := secondaryExpected.In(primaryLoc)

	result.HasConflict = true
	result.AlternatePrimaryTimeText = TimeAndZone(primaryEquivalent)
	result.AlternateSecondaryTimeText = TimeAndZone(secondaryExpected)
	return result, nil
}

// DateLabel formats a date as "Wednesday, February 7th".
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%s %s", date.Format(constants.DisplayDateFormat), Ordinal(date.Day()))
}

// TimeAndZone formats a zoned timestamp as "4pm (GMT)", or "4:30pm (GMT)" off the hour.
func TimeAndZone(t time.Time) string {
	layout := constants.HourFormat
	if t.Minute() != 0 {
		layout = constants.HourMinuteFormat
	}
	return fmt.Sprintf("%s (%s)", t.Format(layout), t.Format(constants.ZoneAbbrevFormat))
}
