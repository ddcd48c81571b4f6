package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"nhaf/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func staff(username string, admin bool) *models.User {
	return &models.User{Username: username, Email: username + "@nhaf.example", Password: "hash", IsAdmin: admin}
}

func TestUserRepository_Lookups(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	sita := staff("sita", false)
	require.NoError(t, repo.Create(ctx, sita))

	byID, err := repo.GetByID(ctx, sita.ID)
	require.NoError(t, err)
	assert.Equal(t, "sita", byID.Username)

	_, err = repo.GetByID(ctx, 999)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	byEmail, err := repo.GetByEmail(ctx, "sita@nhaf.example")
	require.NoError(t, err)
	assert.Equal(t, sita.ID, byEmail.ID)

	missing, err := repo.GetByEmail(ctx, "ghost@nhaf.example")
	assert.NoError(t, err, "unknown logins are not errors")
	assert.Nil(t, missing)

	missing, err = repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_ListAndCountAdmins(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	for _, u := range []*models.User{staff("ram", true), staff("hari", false), staff("gita", true)} {
		require.NoError(t, repo.Create(ctx, u))
	}

	users, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	var names []string
	for _, u := range users {
		names = append(names, u.Username)
	}
	assert.Equal(t, []string{"gita", "hari", "ram"}, names)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "hari", page[0].Username)

	n, err := repo.CountAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	a, b := staff("anita", false), staff("bikash", false)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	b.Email = a.Email
	err := repo.Update(ctx, b)
	assert.Equal(t, models.CodeConflict, models.ErrorCode(err))

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(repo.Delete(ctx, a.ID)))
}

func TestUserRepository_PostgresQueries(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE id = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnError(errors.New("connection timeout"))
	_, err := repo.GetByID(ctx, 1)
	assert.Equal(t, models.CodeInternal, models.ErrorCode(err))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"idx_users_email\""})
	mock.ExpectRollback()
	err = repo.Create(ctx, staff("taken", false))
	assert.Equal(t, models.CodeConflict, models.ErrorCode(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: chat_settings.id")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}
