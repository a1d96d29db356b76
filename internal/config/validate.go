package config

import (
	"errors"
	"fmt"

	"github.com/dials/corenote/internal/utils"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.HackMD.Token == "" {
		return errors.New("hackmd token missing: set HACKMD_TOKEN or run 'corenote keyring set hackmd <token>'")
	}
	if c.GitHub.Token == "" {
		return errors.New("github token missing: set GITHUB_TOKEN or run 'corenote keyring set github <token>'")
	}
	if c.HackMD.Team == "" {
		return errors.New("hackmd.team must not be empty")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" || c.GitHub.Branch == "" {
		return fmt.Errorf("github owner, repo and branch are required (got %q/%q@%q)", c.GitHub.Owner, c.GitHub.Repo, c.GitHub.Branch)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %v)", c.HTTPTimeout)
	}

	if err := c.Meeting.validate(); err != nil {
		return fmt.Errorf("meeting: %w", err)
	}

	return nil
}

func (m *MeetingConfig) validate() error {
	if m.TeamPrefix == "" {
		return errors.New("team_prefix must not be empty")
	}
	for _, zone := range []string{m.Timezone, m.PrimaryZone, m.SecondaryZone} {
		if !utils.ValidateTimezone(zone) {
			return fmt.Errorf("invalid timezone %q", zone)
		}
	}
	for _, t := range []string{m.PrimaryTime, m.SecondaryTime} {
		if !utils.ValidateTimeFormat(t) {
			return fmt.Errorf("invalid time %q, expected HH:MM", t)
		}
	}
	if m.Duration <= 0 {
		return fmt.Errorf("duration must be > 0 (got %v)", m.Duration)
	}
	return nil
}
