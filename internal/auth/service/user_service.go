package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rendyseptch/Login-app/internal/auth/domain"
	"github.com/Rendyseptch/Login-app/internal/auth/dto"
	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenManager
}

func NewUserService(repo domain.UserRepository, tokens TokenManager) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	existing, err = s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create maps unique violations itself, so the pre-check racing another
	// registration still ends in a duplicate error rather than a 500.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Int64("user_id", user.ID).Msg("user registered")

	return user, nil
}

// Login resolves the identifier as an email first and falls back to a
// username lookup. Unknown identifier and wrong password both return
// ErrInvalidCredentials so callers cannot probe which accounts exist.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.repo.FindByEmail(ctx, input.Login)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		user, err = s.repo.FindByUsername(ctx, input.Login)
		if err != nil {
			return nil, "", err
		}
	}

	if user == nil || !VerifyPassword(input.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	log.Info().Int64("user_id", user.ID).Msg("login successful")

	return user, token, nil
}

// CurrentUser loads the public fields for a verified user ID. A missing row
// (account deleted after token issuance) is ErrUserNotFound.
func (s *UserService) CurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return user, nil
}
