package repositories

import (
	"context"

	"github.com/google/uuid"

	"lockbox/internal/models"
)

// EntryFilter narrows entry listings. The zero value applies no folder
// filter; FolderID matches one folder exactly; UnfiledOnly keeps only
// entries without a folder. FolderID wins when both are set.
type EntryFilter struct {
	FolderID    *uuid.UUID
	UnfiledOnly bool
}

// PasswordEntryRepository defines the interface for entry data access.
// Every read and write is scoped by the owning user id.
type PasswordEntryRepository interface {
	Create(ctx context.Context, entry *models.PasswordEntry) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.PasswordEntry, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID, filter EntryFilter) ([]models.PasswordEntry, error)
	Update(ctx context.Context, entry *models.PasswordEntry) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
