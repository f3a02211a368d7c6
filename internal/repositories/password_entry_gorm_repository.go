package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lockbox/internal/models"
)

// GORMPasswordEntryRepository is a GORM implementation of
// PasswordEntryRepository.
type GORMPasswordEntryRepository struct {
	db *gorm.DB
}

// NewGORMPasswordEntryRepository creates a new instance of
// GORMPasswordEntryRepository.
func NewGORMPasswordEntryRepository(db *gorm.DB) *GORMPasswordEntryRepository {
	return &GORMPasswordEntryRepository{
		db: db,
	}
}

// Create persists a new entry, generating an id when none is set. A
// folder reference that vanished since validation trips the foreign key
// and comes back as ErrNotFound.
func (r *GORMPasswordEntryRepository) Create(ctx context.Context, entry *models.PasswordEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("folder for entry %s: %w", entry.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// GetByID retrieves an entry by id and owner. An entry owned by someone
// else looks exactly like a missing one.
func (r *GORMPasswordEntryRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.PasswordEntry, error) {
	var entry models.PasswordEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("entry %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entry %s: %w", id, err)
	}
	return &entry, nil
}

// ListByUser retrieves all entries owned by ownerID, narrowed by the
// filter.
func (r *GORMPasswordEntryRepository) ListByUser(ctx context.Context, ownerID uuid.UUID, filter EntryFilter) ([]models.PasswordEntry, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	switch {
	case filter.FolderID != nil:
		tx = tx.Where("folder_id = ?", *filter.FolderID)
	case filter.UnfiledOnly:
		tx = tx.Where("folder_id IS NULL")
	}

	var entries []models.PasswordEntry
	if err := tx.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Update saves an entry previously fetched with the ownership filter.
// Save writes every column, which is what the tri-state update
// semantics need: cleared fields must reach the database as NULL.
func (r *GORMPasswordEntryRepository) Update(ctx context.Context, entry *models.PasswordEntry) error {
	res := r.db.WithContext(ctx).Save(entry)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("folder for entry %s: %w", entry.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update entry %s: %w", entry.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry %s: %w", entry.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an entry by id and owner.
func (r *GORMPasswordEntryRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.PasswordEntry{}, "id = ? AND user_id = ?", id, ownerID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}
