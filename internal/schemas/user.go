package schemas

import (
	"github.com/google/uuid"

	"lockbox/internal/models"
)

// UserCreate is the registration payload. The raw password is hashed
// before it reaches storage.
type UserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the public view of a user. The credential hash is
// never included.
type UserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{UserID: u.ID, Username: u.Username}
}
