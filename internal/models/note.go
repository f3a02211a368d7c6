package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-standing text note. Notes sit outside the ownership
// model and are visible to every caller.
type Note struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
