package calendar

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/dials/corenote/internal/constants"
)

const productID = "-//DIALS//" + constants.AppName + " " + constants.Version + "//EN"

// Meeting is a single calendar entry for a newly created meeting note.
type Meeting struct {
	Title    string
	Start    time.Time
	Duration time.Duration
	URL      string // agenda on the notes site
}

// Exporter writes meetings as iCalendar documents.
type Exporter struct {
	now   func() time.Time
	newID func() string
}

func NewExporter() *Exporter {
	return &Exporter{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Encode writes a VCALENDAR with one VEVENT to w. Times are emitted in UTC.
func (e *Exporter) Encode(w io.Writer, m Meeting) error {
	if m.Duration <= 0 {
		return fmt.Errorf("meeting duration must be > 0 (got %v)", m.Duration)
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, e.newID()+"@"+constants.AppName)
	event.Props.SetDateTime(ical.PropDateTimeStamp, e.now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, m.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, m.Start.Add(m.Duration).UTC())
	event.Props.SetText(ical.PropSummary, m.Title)
	if m.URL != "" {
		event.Props.SetText(ical.PropDescription, "Agenda: "+m.URL)
		event.Props.SetText(ical.PropURL, m.URL)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// WriteFile encodes the meeting into path, replacing any existing file.
func (e *Exporter) WriteFile(path string, m Meeting) error {
	var buf bytes.Buffer
	if err := e.Encode(&buf, m); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create calendar directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}
	return nil
}
