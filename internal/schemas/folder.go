package schemas

import (
	"github.com/google/uuid"

	"lockbox/internal/models"
)

// FolderCreate is the payload for creating a folder.
type FolderCreate struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// FolderUpdate replaces the folder name.
type FolderUpdate struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// FolderResponse is the public view of a folder.
type FolderResponse struct {
	FolderID uuid.UUID `json:"folder_id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
}

func NewFolderResponse(f *models.Folder) FolderResponse {
	return FolderResponse{FolderID: f.ID, UserID: f.UserID, Name: f.Name}
}

func NewFolderResponses(folders []models.Folder) []FolderResponse {
	out := make([]FolderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, NewFolderResponse(&folders[i]))
	}
	return out
}
