package constants

import "time"

// KeyringService identifies a token stored in the OS keyring
type KeyringService string

const (
	AppName           = "corenote"
	Version           = "v0.3.0"
	DefaultConfigDir  = "~/.config/corenote"
	DefaultConfigFile = "corenote.yaml"
	ConfigPathEnv     = "CORENOTE_CONFIG"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Meeting cadence
	CadenceDays = 14

	// Default meeting parameters
	DefaultTeamPrefix      = "DIALS"
	DefaultMeetingTag      = "core meeting"
	DefaultPrimaryZone     = "Europe/London"
	DefaultPrimaryTime     = "16:00"
	DefaultSecondaryZone   = "America/Los_Angeles"
	DefaultSecondaryTime   = "08:00"
	DefaultMeetingDuration = time.Hour

	// Document section markers
	PreviousActionsMarker = "## Previous Actions"
	NextMeetingMarker     = "### Next meeting"

	// Keyring
	KeyringHackMD KeyringService = "hackmd"
	KeyringGitHub KeyringService = "github"
)
