package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lockbox/internal/models"
	"lockbox/internal/repositories"
	"lockbox/internal/schemas"
	"lockbox/pkg/cryptox"
)

// PasswordEntryService handles business logic for password entries.
// Secrets are sealed before they reach storage and unsealed only by
// the explicit reveal flow. Every operation is scoped to the owning
// user.
type PasswordEntryService struct {
	entryRepo  repositories.PasswordEntryRepository
	folderRepo repositories.FolderRepository
	box        *cryptox.Box
}

// NewPasswordEntryService creates a new PasswordEntryService.
func NewPasswordEntryService(entryRepo repositories.PasswordEntryRepository, folderRepo repositories.FolderRepository, box *cryptox.Box) *PasswordEntryService {
	return &PasswordEntryService{
		entryRepo:  entryRepo,
		folderRepo: folderRepo,
		box:        box,
	}
}

// CreateEntry creates an entry owned by ownerID. A supplied folder id
// must name a folder of the same owner; a foreign folder fails with
// ErrNotFound exactly like a missing one. A supplied secret is sealed
// before persisting.
func (s *PasswordEntryService) CreateEntry(ctx context.Context, ownerID uuid.UUID, input schemas.PasswordEntryCreate) (*models.PasswordEntry, error) {
	if input.FolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *input.FolderID, ownerID); err != nil {
			return nil, err
		}
	}

	entry := &models.PasswordEntry{
		UserID:     ownerID,
		FolderID:   input.FolderID,
		Name:       input.Name,
		Username:   input.Username,
		WebsiteURL: input.WebsiteURL,
		Notes:      input.Notes,
	}
	if input.Password != nil {
		sealed, err := s.box.Seal(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to seal secret: %w", err)
		}
		entry.Secret = &sealed
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetEntry retrieves an entry by id and owner. The secret stays
// sealed; use RevealSecret for the plaintext.
func (s *PasswordEntryService) GetEntry(ctx context.Context, id, ownerID uuid.UUID) (*models.PasswordEntry, error) {
	return s.entryRepo.GetByID(ctx, id, ownerID)
}

// RevealSecret retrieves an entry together with its unsealed secret.
// This is the only flow that returns the plaintext.
func (s *PasswordEntryService) RevealSecret(ctx context.Context, id, ownerID uuid.UUID) (*models.PasswordEntry, *string, error) {
	entry, err := s.entryRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if entry.Secret == nil {
		return entry, nil, nil
	}

	plaintext, err := s.box.Open(*entry.Secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open secret of entry %s: %w", id, err)
	}
	return entry, &plaintext, nil
}

// ListEntries retrieves the entries owned by ownerID, narrowed by the
// filter: everything, one exact folder, or only unfiled entries.
func (s *PasswordEntryService) ListEntries(ctx context.Context, ownerID uuid.UUID, filter repositories.EntryFilter) ([]models.PasswordEntry, error) {
	return s.entryRepo.ListByUser(ctx, ownerID, filter)
}

// UpdateEntry applies a partial update. The ownership-scoped fetch runs
// first, so a missing or foreign entry returns ErrNotFound without any
// side effect. Exactly the fields present in the payload change: absent
// fields keep their stored values, null and empty values overwrite. A
// newly supplied secret is re-sealed and a newly supplied folder
// reference re-validated against the owner.
func (s *PasswordEntryService) UpdateEntry(ctx context.Context, id, ownerID uuid.UUID, input schemas.PasswordEntryUpdate) (*models.PasswordEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name.Set && input.Name.Valid {
		entry.Name = input.Name.Value
	}
	if input.Username.Set {
		entry.Username = input.Username.Ptr()
	}
	if input.Password.Set {
		if input.Password.Valid {
			sealed, err := s.box.Seal(input.Password.Value)
			if err != nil {
				return nil, fmt.Errorf("failed to seal secret: %w", err)
			}
			entry.Secret = &sealed
		} else {
			entry.Secret = nil
		}
	}
	if input.WebsiteURL.Set {
		entry.WebsiteURL = input.WebsiteURL.Ptr()
	}
	if input.Notes.Set {
		entry.Notes = input.Notes.Ptr()
	}
	if input.FolderID.Set {
		if input.FolderID.Valid {
			if _, err := s.folderRepo.GetByID(ctx, input.FolderID.Value, ownerID); err != nil {
				return nil, err
			}
		}
		entry.FolderID = input.FolderID.Ptr()
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry owned by ownerID.
func (s *PasswordEntryService) DeleteEntry(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.entryRepo.Delete(ctx, id, ownerID)
}
