package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Rendyseptch/Login-app/internal/auth/domain UserRepository

// UserRepository is the credential store. Finders return (nil, nil) when no
// row matches; FindByID never loads the password hash.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
