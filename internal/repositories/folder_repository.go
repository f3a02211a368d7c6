package repositories

import (
	"context"

	"github.com/google/uuid"

	"lockbox/internal/models"
)

// FolderRepository defines the interface for folder data access. Every
// read and write is scoped by the owning user id.
type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Folder, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]models.Folder, error)
	Update(ctx context.Context, folder *models.Folder) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
