package models

import (
	"time"

	"github.com/google/uuid"
)

// Folder groups password entries for a single user. The owner reference
// is immutable after creation.
type Folder struct {
	ID        uuid.UUID `json:"folder_id" gorm:"primaryKey;type:varchar(36)"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:varchar(36);index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a folder detaches its entries instead of deleting them.
	Entries []PasswordEntry `json:"-" gorm:"foreignKey:FolderID;constraint:OnDelete:SET NULL"`
}
