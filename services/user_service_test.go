package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akkor-hotel-backend/auth"
	"akkor-hotel-backend/models"
)

func TestUserCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	u, err := svc.Create("alice@example.com", "alice", "hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", u.Password)
	assert.True(t, auth.CheckPassword("hunter2", u.Password))
}

func TestUserCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	_, err := svc.Create("alice@example.com", "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Create("alice@example.com", "other", "pw")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.Create("other@example.com", "alice", "pw")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserCreateOverlongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	_, err := svc.Create("alice@example.com", "alice", strings.Repeat("a", 80))
	assert.ErrorIs(t, err, ErrInvalidPassword)

	// Nothing may be persisted with an unusable hash.
	u, err := svc.GetByPseudo("alice")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserUpdateOverlongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	u, err := svc.Create("alice@example.com", "alice", "pw")
	require.NoError(t, err)
	oldHash := u.Password

	long := strings.Repeat("a", 80)
	_, err = svc.Update(u.ID, UserPatch{Password: &long})
	assert.ErrorIs(t, err, ErrInvalidPassword)

	reloaded, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, oldHash, reloaded.Password)
}

func TestUserGetAbsence(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	u, err := svc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.GetByPseudo("ghost")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	u, err := svc.Create("alice@example.com", "alice", "pw")
	require.NoError(t, err)
	oldHash := u.Password

	newPseudo := "alice2"
	updated, err := svc.Update(u.ID, UserPatch{Pseudo: &newPseudo})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alice2", updated.Pseudo)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, oldHash, updated.Password)

	newPassword := "newpw"
	updated, err = svc.Update(u.ID, UserPatch{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, updated.Password)
	assert.True(t, auth.CheckPassword("newpw", updated.Password))
}

func TestUserUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	pseudo := "nobody"
	u, err := svc.Update(99, UserPatch{Pseudo: &pseudo})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	roles := NewUserRoleService(db)
	svc := NewUserService(db, roles)
	bookings := NewBookingService(db, NewRoomService(db), roles)

	u, err := svc.Create("alice@example.com", "alice", "pw")
	require.NoError(t, err)
	_, room := seedHotelWithRoom(t, db)

	_, err = roles.Assign(u.ID, true)
	require.NoError(t, err)
	_, err = bookings.Create(u.ID, room.ID, date(2026, 9, 1), date(2026, 9, 5), 2, false)
	require.NoError(t, err)

	deleted, err := svc.Delete(u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	role, err := roles.GetByUser(u.ID)
	require.NoError(t, err)
	assert.Nil(t, role)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, NewUserRoleService(db))

	deleted, err := svc.Delete(123)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserListIncludesAdminFlag(t *testing.T) {
	db := newTestDB(t)
	roles := NewUserRoleService(db)
	svc := NewUserService(db, roles)

	alice, err := svc.Create("alice@example.com", "alice", "pw")
	require.NoError(t, err)
	_, err = svc.Create("bob@example.com", "bob", "pw")
	require.NoError(t, err)
	_, err = roles.Assign(alice.ID, true)
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	byPseudo := map[string]UserWithRole{}
	for _, v := range list {
		byPseudo[v.Pseudo] = v
	}
	assert.True(t, byPseudo["alice"].IsAdmin)
	assert.False(t, byPseudo["bob"].IsAdmin)
}
