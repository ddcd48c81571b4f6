package service

import (
	"context"
	"testing"

	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Namaste-Nepal-2025!"

// stubUserRepo keeps staff accounts in a map.
type stubUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) CountAdmins(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

func TestCreateStaff(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	ctx := context.Background()

	user, err := svc.CreateStaff(ctx, CreateStaffInput{
		Username: "office",
		Email:    "  Office@NHAF.org ",
		Password: strongPassword,
		IsAdmin:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "office@nhaf.org", user.Email)
	assert.NotEqual(t, strongPassword, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(strongPassword)))

	found, err := svc.FindByLogin(ctx, "OFFICE@nhaf.org")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	found, err = svc.FindByLogin(ctx, "office")
	require.NoError(t, err)
	require.NotNil(t, found)

	_, err = svc.CreateStaff(ctx, CreateStaffInput{Username: "office", Email: "other@nhaf.org", Password: strongPassword})
	assertErrorCode(t, err, models.CodeConflict)
	_, err = svc.CreateStaff(ctx, CreateStaffInput{Username: "other", Email: "office@nhaf.org", Password: strongPassword})
	assertErrorCode(t, err, models.CodeConflict)
	_, err = svc.CreateStaff(ctx, CreateStaffInput{Username: "weak", Email: "weak@nhaf.org", Password: "password"})
	assertValidationError(t, err)
}

func TestChangePassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	ctx := context.Background()
	user, err := svc.CreateStaff(ctx, CreateStaffInput{Username: "office", Email: "office@nhaf.org", Password: strongPassword})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "Another-Pass-2025!")
	assertErrorCode(t, err, models.CodeUnauthorized)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, strongPassword, "Another-Pass-2025!"))
	stored, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Another-Pass-2025!")))
}

func TestLastAdminIsKept(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	ctx := context.Background()
	admin, err := svc.CreateStaff(ctx, CreateStaffInput{Username: "admin", Email: "admin@nhaf.org", Password: strongPassword, IsAdmin: true})
	require.NoError(t, err)
	staff, err := svc.CreateStaff(ctx, CreateStaffInput{Username: "staff", Email: "staff@nhaf.org", Password: strongPassword})
	require.NoError(t, err)

	_, err = svc.SetAdmin(ctx, admin.ID, false)
	assertErrorCode(t, err, models.CodeConflict)
	assertErrorCode(t, svc.DeleteUser(ctx, admin.ID), models.CodeConflict)

	promoted, err := svc.SetAdmin(ctx, staff.ID, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	demoted, err := svc.SetAdmin(ctx, admin.ID, false)
	require.NoError(t, err)
	assert.False(t, demoted.IsAdmin)
	require.NoError(t, svc.DeleteUser(ctx, admin.ID))

	users, err := svc.ListUsers(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
