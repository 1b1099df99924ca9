package dto

import (
	"time"

	"github.com/Rendyseptch/Login-app/internal/auth/domain"
)

// UserOutput is the public view of a user. The password hash never leaves
// the service layer.
type UserOutput struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// NewUserOutputWithCreatedAt is used by /me and /check-session, which also
// return the account creation time.
func NewUserOutputWithCreatedAt(u *domain.User) UserOutput {
	out := NewUserOutput(u)
	out.CreatedAt = &u.CreatedAt
	return out
}
