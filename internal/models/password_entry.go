package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordEntry is a stored credential owned by a user and optionally
// filed in one of that user's folders. The secret column holds the
// sealed form and is withheld from serialization.
type PasswordEntry struct {
	ID         uuid.UUID  `json:"entry_id" gorm:"primaryKey;type:varchar(36)"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:varchar(36);index;not null"`
	FolderID   *uuid.UUID `json:"folder_id" gorm:"type:varchar(36);index"`
	Name       string     `json:"name" gorm:"type:varchar(100);not null"`
	Username   *string    `json:"username" gorm:"type:varchar(100)"`
	Secret     *string    `json:"-" gorm:"type:text"`
	WebsiteURL *string    `json:"website_url" gorm:"type:varchar(500)"`
	Notes      *string    `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
