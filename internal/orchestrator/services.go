package orchestrator

import (
	"context"

	"github.com/dials/corenote/internal/calendar"
	"github.com/dials/corenote/internal/models"
)

// NotesService is the notes site holding the working agendas.
type NotesService interface {
	ListTeamNotes(ctx context.Context, team string) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	CreateNote(ctx context.Context, team string, note models.NewNote) (models.Note, error)
}

// Repository is the knowledge base holding the future meeting stubs.
type Repository interface {
	QueryFileAtHead(ctx context.Context, ref models.FileRef) (models.FileAtHead, error)
	CommitFileChange(ctx context.Context, change models.FileChange) (string, error)
}

// Prompter asks the operator. Input returns "" when the placeholder is accepted.
type Prompter interface {
	Confirm(title string) (bool, error)
	Input(title, placeholder string) (string, error)
}

// SnapshotWriter keeps a copy of the raw note listing.
type SnapshotWriter interface {
	Save(v interface{}) error
}

// CalendarWriter exports the new meeting as an iCalendar file.
type CalendarWriter interface {
	WriteFile(path string, m calendar.Meeting) error
}
