package repositories

import (
	"context"

	"github.com/google/uuid"

	"lockbox/internal/models"
)

// NoteRepository defines the interface for note data access. Notes sit
// outside the ownership model, so no owner scoping applies.
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
