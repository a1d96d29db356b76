package render

import (
	"strings"
	"testing"
	"time"

	"github.com/dials/corenote/internal/models"
)

func newTestRenderer() *Renderer {
	return NewRenderer("core meeting", "https://hackmd.io/")
}

func TestMeetingTitle(t *testing.T) {
	got := MeetingTitle("DIALS", time.Date(2024, time.January, 24, 0, 0, 0, 0, time.UTC))
	if got != "DIALS core meeting 2024-01-24" {
		t.Errorf("MeetingTitle() = %q", got)
	}
}

func TestNextMeetingText(t *testing.T) {
	noConflict := models.TimezoneConflictResult{
		PrimaryDateLabel:  "Wednesday, February 7th",
		PrimaryTimeText:   "4pm (GMT)",
		SecondaryTimeText: "8am (PST)",
	}
	if got := NextMeetingText(noConflict); got != "Wednesday, February 7th, 4pm (GMT), 8am (PST)" {
		t.Errorf("NextMeetingText() = %q", got)
	}

	conflict := models.TimezoneConflictResult{
		PrimaryDateLabel:           "Wednesday, March 20th",
		PrimaryTimeText:            "4pm (GMT)",
		SecondaryTimeText:          "9am (PDT)",
		HasConflict:                true,
		AlternatePrimaryTimeText:   "3pm (GMT)",
		AlternateSecondaryTimeText: "8am (PDT)",
	}
	want := "\nDue to time zone changes the normal meeting time must change:\n\n" +
		"Wednesday, March 20th, 4pm (GMT), 9am (PDT)\n\nor\n\n" +
		"Wednesday, March 20th, 3pm (GMT), 8am (PDT)\n"
	if got := NextMeetingText(conflict); got != want {
		t.Errorf("NextMeetingText() = %q, want %q", got, want)
	}
}

func TestRenderAgenda(t *testing.T) {
	r := newTestRenderer()

	got, err := r.RenderAgenda(
		"DIALS core meeting 2024-01-24",
		"## Previous Actions\n- [ ] review PR\n",
		"Wednesday, February 7th, 4pm (GMT), 8am (PST)",
	)
	if err != nil {
		t.Fatalf("RenderAgenda() error = %v", err)
	}

	want := "---\n" +
		"name: DIALS core meeting 2024-01-24\n" +
		"tags: core meeting\n" +
		"---\n" +
		"\n" +
		"# DIALS core meeting 2024-01-24\n" +
		"\n" +
		"## Previous Actions\n- [ ] review PR\n" +
		"\n\n" +
		"### Next meeting\n" +
		"\n" +
		"Wednesday, February 7th, 4pm (GMT), 8am (PST)\n"
	if got != want {
		t.Errorf("RenderAgenda() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderFutureStub(t *testing.T) {
	r := newTestRenderer()

	got, err := r.RenderFutureStub(
		"DIALS core meeting 2024-01-24",
		"AbCdEf",
		"Wednesday, February 7th, 4pm (GMT), 8am (PST)",
	)
	if err != nil {
		t.Fatalf("RenderFutureStub() error = %v", err)
	}

	want := "---\n" +
		"name: DIALS core meeting 2024-01-24\n" +
		"tags: core meeting\n" +
		"---\n" +
		"\n" +
		"# DIALS core meeting 2024-01-24\n" +
		"\n" +
		"[![hackmd-github-sync-badge](https://hackmd.io/AbCdEf/badge)](https://hackmd.io/AbCdEf)\n" +
		"\n" +
		"This is a future meeting, please see the WIP agenda at [hackmd.io](https://hackmd.io/AbCdEf)\n" +
		"\n\n" +
		"### Next meeting\n" +
		"\n" +
		"Wednesday, February 7th, 4pm (GMT), 8am (PST)\n"
	if got != want {
		t.Errorf("RenderFutureStub() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := newTestRenderer()

	a, err := r.RenderFutureStub("DIALS core meeting 2024-01-24", "id", "text")
	if err != nil {
		t.Fatalf("RenderFutureStub() error = %v", err)
	}
	b, err := r.RenderFutureStub("DIALS core meeting 2024-01-24", "id", "text")
	if err != nil {
		t.Fatalf("RenderFutureStub() error = %v", err)
	}
	if a != b {
		t.Error("rendering the same stub twice gave different output")
	}
}

func TestRenderQuotesFrontMatter(t *testing.T) {
	r := NewRenderer("core meeting", "https://hackmd.io")

	got, err := r.RenderAgenda("DIALS: special", "## Previous Actions\n", "soon")
	if err != nil {
		t.Fatalf("RenderAgenda() error = %v", err)
	}
	// a colon followed by a space must not leave the front matter ambiguous
	if !strings.Contains(got, "name: 'DIALS: special'\n") && !strings.Contains(got, "name: \"DIALS: special\"\n") {
		t.Errorf("front matter not quoted:\n%s", got)
	}
}

func TestNoteURL(t *testing.T) {
	r := NewRenderer("core meeting", "https://hackmd.io///")
	if got := r.NoteURL("abc"); got != "https://hackmd.io/abc" {
		t.Errorf("NoteURL() = %q", got)
	}
}
