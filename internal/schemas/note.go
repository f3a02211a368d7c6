package schemas

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"lockbox/internal/models"
)

// NoteCreate is the payload for creating a note.
type NoteCreate struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// NoteUpdate replaces the note content.
type NoteUpdate struct {
	Content string `json:"content" validate:"required,max=5000"`
}

var errNoteContentEmpty = errors.New("note content cannot be empty or whitespace only")

// Validate trims the content and rejects whitespace-only notes.
func (n *NoteCreate) Validate() error {
	trimmed := strings.TrimSpace(n.Content)
	if trimmed == "" {
		return errNoteContentEmpty
	}
	n.Content = trimmed
	return nil
}

// Validate trims the content and rejects whitespace-only notes.
func (n *NoteUpdate) Validate() error {
	trimmed := strings.TrimSpace(n.Content)
	if trimmed == "" {
		return errNoteContentEmpty
	}
	n.Content = trimmed
	return nil
}

// NoteResponse is the public view of a note.
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoteResponse(n *models.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Content: n.Content, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}
}

func NewNoteResponses(notes []models.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteResponse(&notes[i]))
	}
	return out
}
