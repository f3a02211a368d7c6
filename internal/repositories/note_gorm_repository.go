package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lockbox/internal/models"
)

// GORMNoteRepository is a GORM implementation of NoteRepository.
type GORMNoteRepository struct {
	db *gorm.DB
}

// NewGORMNoteRepository creates a new instance of GORMNoteRepository.
func NewGORMNoteRepository(db *gorm.DB) *GORMNoteRepository {
	return &GORMNoteRepository{
		db: db,
	}
}

// Create persists a new note, generating an id when none is set.
func (r *GORMNoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// GetByID retrieves a note by its ID.
func (r *GORMNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}
	return &note, nil
}

// GetAll retrieves all notes.
func (r *GORMNoteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Update saves a previously fetched note.
func (r *GORMNoteRepository) Update(ctx context.Context, note *models.Note) error {
	res := r.db.WithContext(ctx).Save(note)
	if res.Error != nil {
		return fmt.Errorf("failed to update note %s: %w", note.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("note %s: %w", note.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a note by its ID.
func (r *GORMNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	return nil
}
