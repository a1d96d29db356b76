package scheduler

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/models"
	"github.com/dials/corenote/internal/utils"
)

// ErrNoMatch is returned by TitleParser.Parse for titles that are not meeting notes.
var ErrNoMatch = errors.New("title is not a meeting note")

// TitleParser recognizes "<team> meeting Y-M-D" and "<team> core meeting Y-M-D" titles.
type TitleParser struct {
	re *regexp.Regexp
}

func NewTitleParser(team string) *TitleParser {
	pattern := `(?i)^` + regexp.QuoteMeta(team) + ` (?:core )?meeting (\d+)-(\d+)-(\d+)`
	return &TitleParser{re: regexp.MustCompile(pattern)}
}

// Parse extracts the meeting date from a note title.
func (p *TitleParser) Parse(title string) (time.Time, error) {
	m := p.re.FindStringSubmatch(title)
	if m == nil {
		return time.Time{}, ErrNoMatch
	}

	var parts [3]int
	for i, raw := range m[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			// only overflow gets here, the groups are all digits
			return time.Time{}, fmt.Errorf("title %q: %w: %s out of range", title, apperrors.ErrInvalidDate, raw)
		}
		parts[i] = n
	}

	date, err := utils.NewDate(parts[0], parts[1], parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("title %q: %w", title, err)
	}
	return date, nil
}

// CollectMeetings parses every note title and returns the meeting records sorted by date,
// along with the titles that were not meeting notes. When two notes share a date the later
// one in the listing wins.
func (p *TitleParser) CollectMeetings(notes []models.Note) ([]models.MeetingRecord, []string, error) {
	byDate := make(map[time.Time]models.MeetingRecord)
	var ignored []string

	for _, note := range notes {
		date, err := p.Parse(note.Title)
		if errors.Is(err, ErrNoMatch) {
			ignored = append(ignored, note.Title)
			continue
		}
		if err != nil {
			return nil, ignored, err
		}
		byDate[date] = models.MeetingRecord{
			Date:       date,
			Title:      note.Title,
			ExternalID: note.ID,
		}
	}

	records := make([]models.MeetingRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, ignored, nil
}

// Latest returns the most recent meeting record.
func Latest(records []models.MeetingRecord) (models.MeetingRecord, bool) {
	if len(records) == 0 {
		return models.MeetingRecord{}, false
	}
	latest := records[0]
	for _, rec := range records[1:] {
		if rec.Date.After(latest.Date) {
			latest = rec
		}
	}
	return latest, true
}
