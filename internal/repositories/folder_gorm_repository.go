package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lockbox/internal/models"
)

// GORMFolderRepository is a GORM implementation of FolderRepository.
type GORMFolderRepository struct {
	db *gorm.DB
}

// NewGORMFolderRepository creates a new instance of GORMFolderRepository.
func NewGORMFolderRepository(db *gorm.DB) *GORMFolderRepository {
	return &GORMFolderRepository{
		db: db,
	}
}

// Create persists a new folder, generating an id when none is set.
func (r *GORMFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if folder.ID == uuid.Nil {
		folder.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(folder).Error; err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// GetByID retrieves a folder by id and owner. A folder owned by someone
// else looks exactly like a missing one.
func (r *GORMFolderRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.WithContext(ctx).First(&folder, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("folder %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get folder %s: %w", id, err)
	}
	return &folder, nil
}

// ListByUser retrieves all folders owned by ownerID.
func (r *GORMFolderRepository) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]models.Folder, error) {
	var folders []models.Folder
	if err := r.db.WithContext(ctx).Find(&folders, "user_id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// Update saves a folder previously fetched with the ownership filter.
func (r *GORMFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	res := r.db.WithContext(ctx).Save(folder)
	if res.Error != nil {
		return fmt.Errorf("failed to update folder %s: %w", folder.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a folder after detaching its entries: the entries keep
// existing with their folder reference cleared. Both steps run in one
// transaction so a storage failure rolls everything back.
func (r *GORMFolderRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.PasswordEntry{}).
			Where("folder_id = ? AND user_id = ?", id, ownerID).
			Update("folder_id", nil).Error
		if err != nil {
			return fmt.Errorf("failed to detach entries of folder %s: %w", id, err)
		}
		res := tx.Delete(&models.Folder{}, "id = ? AND user_id = ?", id, ownerID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete folder %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("folder %s: %w", id, ErrNotFound)
		}
		return nil
	})
	return err
}
