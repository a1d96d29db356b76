package models

import "time"

// MeetingRecord is a meeting note recognized in the team listing.
type MeetingRecord struct {
	Date       time.Time `json:"date"` // midnight UTC
	Title      string    `json:"title"`
	ExternalID string    `json:"external_id"`
}

// ScheduleState is derived on every run and never persisted.
type ScheduleState struct {
	LastMeetingDate time.Time `json:"last_meeting_date"`
	NextMeetingDate time.Time `json:"next_meeting_date"`
}

// TimezoneConflictResult describes the standard meeting time of a date in two zones.
// The alternate fields are only set when HasConflict is true.
type TimezoneConflictResult struct {
	PrimaryDateLabel           string `json:"primary_date_label"`
	PrimaryTimeText            string `json:"primary_time_text"`
	SecondaryTimeText          string `json:"secondary_time_text"`
	HasConflict                bool   `json:"has_conflict"`
	AlternatePrimaryTimeText   string `json:"alternate_primary_time_text,omitempty"`
	AlternateSecondaryTimeText string `json:"alternate_secondary_time_text,omitempty"`
}
