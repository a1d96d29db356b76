package scheduler

import (
	"time"

	"github.com/dials/corenote/internal/constants"
)

// Position is where the last recorded meeting falls relative to today.
type Position int

const (
	PositionPast Position = iota
	PositionToday
	PositionFuture
)

func (p Position) String() string {
	switch p {
	case PositionToday:
		return "today"
	case PositionFuture:
		return "future"
	default:
		return "past"
	}
}

// ComputeNext returns the meeting date one cadence after the last meeting.
func ComputeNext(last time.Time) time.Time {
	return last.AddDate(0, 0, constants.CadenceDays)
}

// ComputeFollowing returns the meeting after the one on date, used for the "Next meeting" text.
func ComputeFollowing(date time.Time) time.Time {
	return date.AddDate(0, 0, constants.CadenceDays)
}

// Classify compares two calendar dates.
func Classify(last, today time.Time) Position {
	switch {
	case last.Equal(today):
		return PositionToday
	case last.After(today):
		return PositionFuture
	default:
		return PositionPast
	}
}
