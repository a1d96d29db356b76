package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dials/corenote/internal/calendar"
	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/logger"
	"github.com/dials/corenote/internal/models"
	"github.com/dials/corenote/internal/render"
	"github.com/dials/corenote/internal/scheduler"
	"github.com/dials/corenote/internal/ui"
	"github.com/dials/corenote/internal/utils"
)

const (
	promptNextDate   = "Date of next meeting"
	promptCreateNote = "Create new note?"
	promptCommitFile = "Create new file in github?"
)

// Options are the per-team settings of a run.
type Options struct {
	Team            string // notes site team path
	TeamPrefix      string // leading word of meeting titles
	ReadPermission  string
	WritePermission string
	Zones           scheduler.ZonePair
	Location        *time.Location // where "today" is evaluated
	Repository      models.FileRef // Path is the directory of the future stubs
	CommitMessage   string
	ICSPath         string // optional calendar export
	MeetingDuration time.Duration
}

// Deps are the collaborators of a run. Snapshots and Calendar may be nil.
type Deps struct {
	Notes      NotesService
	Repository Repository
	Prompter   Prompter
	Renderer   *render.Renderer
	Snapshots  SnapshotWriter
	Calendar   CalendarWriter
	Out        io.Writer
	Now        func() time.Time
}

// Summary reports how far a run got.
type Summary struct {
	State     models.ScheduleState
	NoteID    string
	NoteURL   string
	FilePath  string
	CommitURL string
}

// Orchestrator creates the next meeting note and its knowledge base stub.
type Orchestrator struct {
	deps   Deps
	opts   Options
	parser *scheduler.TitleParser
	log    *log.Logger
}

func New(deps Deps, opts Options) *Orchestrator {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Orchestrator{
		deps:   deps,
		opts:   opts,
		parser: scheduler.NewTitleParser(opts.TeamPrefix),
		log:    logger.With("component", "orchestrator", "team", opts.Team),
	}
}

// Run performs one pass. The deliberate early exits are reported as
// ErrFutureMeetingExists, ErrUserDeclined and ErrAlreadyUpToDate; a note that
// was created stays created if a later step fails.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	last, err := o.latestMeeting(ctx)
	if err != nil {
		return summary, err
	}
	summary.State.LastMeetingDate = last.Date
	o.printf("Last meeting: %s\n", ui.Bold(last.Title))

	next, err := o.nextMeetingDate(last.Date)
	if err != nil {
		return summary, err
	}
	summary.State.NextMeetingDate = next
	o.log.Debug("Schedule", "last", utils.FormatDate(last.Date), "next", utils.FormatDate(next))

	previous, err := o.deps.Notes.GetNote(ctx, last.ExternalID)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch previous meeting %q: %w", last.Title, err)
	}
	carryOver, err := render.ExtractCarryOver(previous.Content)
	if err != nil {
		return summary, fmt.Errorf("previous meeting %q: %w", last.Title, err)
	}

	nextMeetingText, err := o.followingMeetingText(next)
	if err != nil {
		return summary, err
	}

	title := render.MeetingTitle(o.opts.TeamPrefix, next)
	note, err := o.createNote(ctx, title, carryOver, nextMeetingText)
	if err != nil {
		return summary, err
	}
	summary.NoteID = note.ID
	summary.NoteURL = o.deps.Renderer.NoteURL(note.ID)
	o.printf("Created %s\n", ui.Highlight(summary.NoteURL))

	o.exportCalendar(title, next, summary.NoteURL)

	ref := o.opts.Repository
	ref.Path = path.Join(o.opts.Repository.Path, utils.FormatDate(next)+".md")
	summary.FilePath = ref.Path

	commitURL, err := o.commitStub(ctx, ref, title, note.ID, nextMeetingText)
	if err != nil {
		return summary, err
	}
	summary.CommitURL = commitURL
	o.printf("Committed %s\n", ui.Highlight(commitURL))

	return summary, nil
}

func (o *Orchestrator) latestMeeting(ctx context.Context) (models.MeetingRecord, error) {
	notes, err := o.deps.Notes.ListTeamNotes(ctx, o.opts.Team)
	if err != nil {
		return models.MeetingRecord{}, fmt.Errorf("failed to list notes of team %s: %w", o.opts.Team, err)
	}
	o.log.Debug("Listed notes", "count", len(notes))

	if o.deps.Snapshots != nil {
		if err := o.deps.Snapshots.Save(notes); err != nil {
			o.log.Warn("Failed to write snapshot", "error", err)
		}
	}

	records, ignored, err := o.parser.CollectMeetings(notes)
	if err != nil {
		return models.MeetingRecord{}, err
	}
	for _, title := range ignored {
		o.printf("%s\n", ui.Muted("Ignoring: "+title))
	}

	last, ok := scheduler.Latest(records)
	if !ok {
		return models.MeetingRecord{}, fmt.Errorf("%w for %s", apperrors.ErrNoMeetings, o.opts.TeamPrefix)
	}
	return last, nil
}

func (o *Orchestrator) nextMeetingDate(last time.Time) (time.Time, error) {
	today := utils.TodayIn(o.deps.Now(), o.opts.Location)

	switch scheduler.Classify(last, today) {
	case scheduler.PositionFuture:
		o.printf("%s\n", ui.Warning("Meeting on "+utils.FormatDate(last)+" is still in the future, nothing to do"))
		return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrFutureMeetingExists, utils.FormatDate(last))
	case scheduler.PositionToday:
		o.printf("%s\n", ui.Muted("Meeting for today already exists"))
	}

	candidate := scheduler.ComputeNext(last)
	answer, err := o.deps.Prompter.Input(promptNextDate, utils.FormatDate(candidate))
	if err != nil {
		return time.Time{}, err
	}
	if answer == "" {
		return candidate, nil
	}

	override, err := utils.ParseDate(answer)
	if err != nil {
		return time.Time{}, err
	}
	o.log.Info("Next meeting date overridden", "computed", utils.FormatDate(candidate), "override", utils.FormatDate(override))
	return override, nil
}

func (o *Orchestrator) followingMeetingText(next time.Time) (string, error) {
	following := scheduler.ComputeFollowing(next)
	result, err := scheduler.Reconcile(following, o.opts.Zones)
	if err != nil {
		return "", fmt.Errorf("failed to reconcile meeting time for %s: %w", utils.FormatDate(following), err)
	}
	if result.HasConflict {
		o.printf("%s\n", ui.Warning(fmt.Sprintf("Time zone conflict on %s: %s vs %s",
			result.PrimaryDateLabel, result.SecondaryTimeText, result.AlternateSecondaryTimeText)))
	}
	return render.NextMeetingText(result), nil
}

func (o *Orchestrator) createNote(ctx context.Context, title, carryOver, nextMeetingText string) (models.Note, error) {
	agenda, err := o.deps.Renderer.RenderAgenda(title, carryOver, nextMeetingText)
	if err != nil {
		return models.Note{}, err
	}
	o.printf("%s\n", ui.Document(agenda))

	if err := o.confirm(promptCreateNote); err != nil {
		return models.Note{}, err
	}

	note, err := o.deps.Notes.CreateNote(ctx, o.opts.Team, models.NewNote{
		Title:           title,
		Content:         agenda,
		ReadPermission:  o.opts.ReadPermission,
		WritePermission: o.opts.WritePermission,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to create note %q: %w", title, err)
	}
	o.log.Info("Created note", "id", note.ID, "title", title)
	return note, nil
}

func (o *Orchestrator) exportCalendar(title string, next time.Time, noteURL string) {
	if o.opts.ICSPath == "" || o.deps.Calendar == nil {
		return
	}

	loc, err := utils.LoadLocation(o.opts.Zones.PrimaryZone)
	if err != nil {
		o.log.Warn("Skipping calendar export", "error", err)
		return
	}
	start, err := utils.CombineDateAndTime(next, o.opts.Zones.PrimaryTime, loc)
	if err != nil {
		o.log.Warn("Skipping calendar export", "error", err)
		return
	}

	err = o.deps.Calendar.WriteFile(o.opts.ICSPath, calendar.Meeting{
		Title:    title,
		Start:    start,
		Duration: o.opts.MeetingDuration,
		URL:      noteURL,
	})
	if err != nil {
		o.log.Warn("Failed to export calendar", "path", o.opts.ICSPath, "error", err)
		o.printf("%s\n", ui.Warning("Calendar export failed: "+err.Error()))
		return
	}
	o.printf("Wrote %s\n", o.opts.ICSPath)
}

func (o *Orchestrator) commitStub(ctx context.Context, ref models.FileRef, title, noteID, nextMeetingText string) (string, error) {
	stub, err := o.deps.Renderer.RenderFutureStub(title, noteID, nextMeetingText)
	if err != nil {
		return "", err
	}

	head, err := o.deps.Repository.QueryFileAtHead(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", ref.Path, err)
	}
	if head.Content != nil && *head.Content == stub {
		o.printf("%s\n", ui.Muted(ref.Path+" is already up to date"))
		return "", fmt.Errorf("%s: %w", ref.Path, apperrors.ErrAlreadyUpToDate)
	}
	o.printf("%s\n", ui.Document(stub))

	if err := o.confirm(promptCommitFile); err != nil {
		return "", err
	}

	url, err := o.deps.Repository.CommitFileChange(ctx, models.FileChange{
		FileRef:                ref,
		ExpectedHeadRevisionID: head.HeadRevisionID,
		Content:                stub,
		Message:                o.opts.CommitMessage,
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit %s: %w", ref.Path, err)
	}
	return url, nil
}

func (o *Orchestrator) confirm(title string) error {
	ok, err := o.deps.Prompter.Confirm(title)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserDeclined) {
			return err
		}
		return fmt.Errorf("prompt %q: %w", title, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", title, apperrors.ErrUserDeclined)
	}
	return nil
}

func (o *Orchestrator) printf(format string, args ...interface{}) {
	fmt.Fprintf(o.deps.Out, format, args...)
}
