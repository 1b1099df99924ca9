package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rendyseptch/Login-app/internal/auth/domain"
	repo "github.com/Rendyseptch/Login-app/internal/auth/repository/postgres"
	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	now := time.Now()
	user := &domain.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("success assigns id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		err := r.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("duplicate email constraint", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	})

	t.Run("duplicate username constraint", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_username_key",
			})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
		assert.False(t, apperrors.IsDuplicate(err))
	})
}

func TestFindByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), "alice", "a@x.com", "hash", time.Now(), time.Now()))

		user, err := r.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("a@x.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("a@x.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.FindByEmail(ctx, "a@x.com")
		assert.Error(t, err)
	})
}

func TestFindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), "alice", "a@x.com", "hash", time.Now(), time.Now()))

		user, err := r.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs("alice").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// FindByID serves token-authenticated lookups and must not load the hash.
func TestFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success without password hash", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, created_at").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "created_at"}).
				AddRow(int64(1), "alice", "a@x.com", time.Now()))

		user, err := r.FindByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, created_at").
			WithArgs(int64(2)).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}
