package services

import (
	"context"

	"github.com/google/uuid"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
	"lockbox/internal/schemas"
)

// FolderService handles business logic for folders. Every operation is
// scoped to the owning user: a folder owned by someone else behaves
// exactly like a missing one.
type FolderService struct {
	folderRepo repositories.FolderRepository
}

// NewFolderService creates a new FolderService.
func NewFolderService(folderRepo repositories.FolderRepository) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
	}
}

// CreateFolder creates a folder owned by ownerID.
func (s *FolderService) CreateFolder(ctx context.Context, ownerID uuid.UUID, input schemas.FolderCreate) (*models.Folder, error) {
	folder := &models.Folder{
		UserID: ownerID,
		Name:   input.Name,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// GetFolder retrieves a folder by id and owner.
func (s *FolderService) GetFolder(ctx context.Context, id, ownerID uuid.UUID) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id, ownerID)
}

// ListFolders retrieves all folders owned by ownerID.
func (s *FolderService) ListFolders(ctx context.Context, ownerID uuid.UUID) ([]models.Folder, error) {
	return s.folderRepo.ListByUser(ctx, ownerID)
}

// UpdateFolder renames a folder. The ownership-scoped fetch runs first,
// so a missing or foreign folder returns ErrNotFound without any side
// effect.
func (s *FolderService) UpdateFolder(ctx context.Context, id, ownerID uuid.UUID, input schemas.FolderUpdate) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	folder.Name = input.Name
	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes a folder owned by ownerID. Entries filed in the
// folder survive with their folder reference cleared.
func (s *FolderService) DeleteFolder(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.folderRepo.Delete(ctx, id, ownerID)
}
