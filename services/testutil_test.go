package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"akkor-hotel-backend/config"
	"akkor-hotel-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, pseudo string) *models.User {
	t.Helper()
	svc := NewUserService(db, NewUserRoleService(db))
	u, err := svc.Create(email, pseudo, "secret123")
	require.NoError(t, err)
	return u
}

func seedHotelWithRoom(t *testing.T, db *gorm.DB) (*models.Hotel, *models.Room) {
	t.Helper()
	hotels := NewHotelService(db)
	rooms := NewRoomService(db)
	h := &models.Hotel{Name: "Grand Duc", Address: "12 Rue de la Paix, Paris"}
	require.NoError(t, hotels.Create(h))
	r := &models.Room{HotelID: h.ID, Price: 120.50, NumberOfBeds: 2}
	require.NoError(t, rooms.Create(r))
	return h, r
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
