package render

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dials/corenote/internal/constants"
	"github.com/dials/corenote/internal/models"
	"github.com/dials/corenote/internal/utils"
)

type frontMatter struct {
	Name string `yaml:"name"`
	Tags string `yaml:"tags"`
}

// Renderer produces the working agenda and the future meeting stub.
type Renderer struct {
	Tag     string // front matter tag
	SiteURL string // public notes site, e.g. https://hackmd.io
}

func NewRenderer(tag, siteURL string) *Renderer {
	return &Renderer{
		Tag:     tag,
		SiteURL: strings.TrimRight(siteURL, "/"),
	}
}

// MeetingTitle returns "<team> core meeting YYYY-MM-DD".
func MeetingTitle(team string, date time.Time) string {
	return fmt.Sprintf("%s core meeting %s", team, utils.FormatDate(date))
}

// NextMeetingText describes when the meeting after the new one takes place. A timezone
// conflict lists both candidate pairings so that someone can pick one or cancel.
func NextMeetingText(r models.TimezoneConflictResult) string {
	standard := fmt.Sprintf("%s, %s, %s", r.PrimaryDateLabel, r.PrimaryTimeText, r.SecondaryTimeText)
	if !r.HasConflict {
		return standard
	}
	alternate := fmt.Sprintf("%s, %s, %s", r.PrimaryDateLabel, r.AlternatePrimaryTimeText, r.AlternateSecondaryTimeText)
	return "\nDue to time zone changes the normal meeting time must change:\n\n" +
		standard + "\n\nor\n\n" + alternate + "\n"
}

// NoteURL is the public address of a note.
func (r *Renderer) NoteURL(noteID string) string {
	return r.SiteURL + "/" + noteID
}

// RenderAgenda builds the new working note: the carried over section followed by the next meeting text.
func (r *Renderer) RenderAgenda(title, carryOver, nextMeetingText string) (string, error) {
	header, err := r.header(title)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(carryOver)
	b.WriteString("\n\n")
	b.WriteString(nextMeetingSection(nextMeetingText))
	return b.String(), nil
}

// RenderFutureStub builds the placeholder committed to the knowledge base, linking to the working note.
func (r *Renderer) RenderFutureStub(title, noteID, nextMeetingText string) (string, error) {
	header, err := r.header(title)
	if err != nil {
		return "", err
	}

	noteURL := r.NoteURL(noteID)

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "[![hackmd-github-sync-badge](%s/badge)](%s)\n\n", noteURL, noteURL)
	fmt.Fprintf(&b, "This is a future meeting, please see the WIP agenda at [hackmd.io](%s)\n\n\n", noteURL)
	b.WriteString(nextMeetingSection(nextMeetingText))
	return b.String(), nil
}

func (r *Renderer) header(title string) (string, error) {
	fm, err := yaml.Marshal(frontMatter{Name: title, Tags: r.Tag})
	if err != nil {
		return "", fmt.Errorf("render front matter: %w", err)
	}
	return fmt.Sprintf("---\n%s---\n\n# %s\n\n", fm, title), nil
}

func nextMeetingSection(text string) string {
	return constants.NextMeetingMarker + "\n\n" + text + "\n"
}
