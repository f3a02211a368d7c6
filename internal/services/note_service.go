package services

import (
	"context"

	"github.com/google/uuid"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
	"lockbox/internal/schemas"
)

// NoteService handles business logic for free-standing notes. Notes
// sit outside the ownership model, so no owner scoping applies.
type NoteService struct {
	noteRepo repositories.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo repositories.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// CreateNote creates a new note.
func (s *NoteService) CreateNote(ctx context.Context, input schemas.NoteCreate) (*models.Note, error) {
	note := &models.Note{
		Content: input.Content,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// GetNoteByID retrieves a note by id.
func (s *NoteService) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	return s.noteRepo.GetByID(ctx, id)
}

// GetAllNotes retrieves all notes.
func (s *NoteService) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepo.GetAll(ctx)
}

// UpdateNote replaces the content of an existing note. The fetch runs
// first, so a missing note returns ErrNotFound without any side effect.
func (s *NoteService) UpdateNote(ctx context.Context, id uuid.UUID, input schemas.NoteUpdate) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Content = input.Content
	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note by id.
func (s *NoteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return s.noteRepo.Delete(ctx, id)
}
