package schemas

import (
	"errors"

	"github.com/google/uuid"

	"lockbox/internal/models"
)

// PasswordEntryCreate is the payload for creating an entry. Only the
// name is required; a supplied folder must belong to the same owner.
type PasswordEntryCreate struct {
	Name       string     `json:"name" validate:"required,min=1,max=100"`
	Username   *string    `json:"username" validate:"omitempty,max=100"`
	Password   *string    `json:"password"`
	WebsiteURL *string    `json:"website_url" validate:"omitempty,max=500"`
	Notes      *string    `json:"notes"`
	FolderID   *uuid.UUID `json:"folder_id"`
}

// PasswordEntryUpdate is a partial update. Every field is tri-state:
// absent fields are left untouched, while null or empty values
// overwrite the stored ones.
type PasswordEntryUpdate struct {
	Name       Optional[string]    `json:"name" validate:"omitempty,max=100"`
	Username   Optional[string]    `json:"username" validate:"omitempty,max=100"`
	Password   Optional[string]    `json:"password"`
	WebsiteURL Optional[string]    `json:"website_url" validate:"omitempty,max=500"`
	Notes      Optional[string]    `json:"notes"`
	FolderID   Optional[uuid.UUID] `json:"folder_id"`
}

var errEntryNameEmpty = errors.New("name cannot be empty")

// Validate enforces the rules the tag layer cannot express: the name
// attribute is required on the entity, so a supplied name must be
// non-null and non-empty.
func (u *PasswordEntryUpdate) Validate() error {
	if u.Name.Set && (!u.Name.Valid || u.Name.Value == "") {
		return errEntryNameEmpty
	}
	return nil
}

// PasswordEntryResponse is the public view of an entry. The secret is
// withheld; RevealSecret flows use PasswordEntryWithPassword instead.
type PasswordEntryResponse struct {
	EntryID    uuid.UUID  `json:"entry_id"`
	UserID     uuid.UUID  `json:"user_id"`
	FolderID   *uuid.UUID `json:"folder_id"`
	Name       string     `json:"name"`
	Username   *string    `json:"username"`
	WebsiteURL *string    `json:"website_url"`
	Notes      *string    `json:"notes"`
}

// PasswordEntryWithPassword carries the unsealed secret on top of the
// regular response shape.
type PasswordEntryWithPassword struct {
	PasswordEntryResponse
	Password *string `json:"password"`
}

func NewPasswordEntryResponse(e *models.PasswordEntry) PasswordEntryResponse {
	return PasswordEntryResponse{
		EntryID:    e.ID,
		UserID:     e.UserID,
		FolderID:   e.FolderID,
		Name:       e.Name,
		Username:   e.Username,
		WebsiteURL: e.WebsiteURL,
		Notes:      e.Notes,
	}
}

func NewPasswordEntryResponses(entries []models.PasswordEntry) []PasswordEntryResponse {
	out := make([]PasswordEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewPasswordEntryResponse(&entries[i]))
	}
	return out
}

func NewPasswordEntryWithPassword(e *models.PasswordEntry, password *string) PasswordEntryWithPassword {
	return PasswordEntryWithPassword{
		PasswordEntryResponse: NewPasswordEntryResponse(e),
		Password:              password,
	}
}
