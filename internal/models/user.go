package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns folders and password entries. The
// credential is stored as a bcrypt hash and never serialized.
type User struct {
	ID           uuid.UUID `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(50);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Deleting a user hard-deletes everything it owns.
	Folders []Folder        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Entries []PasswordEntry `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
