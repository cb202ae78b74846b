package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"akkor-hotel-backend/models"
)

type BookingService struct {
	db    *gorm.DB
	rooms *RoomService
	roles *UserRoleService
}

func NewBookingService(db *gorm.DB, rooms *RoomService, roles *UserRoleService) *BookingService {
	return &BookingService{db: db, rooms: rooms, roles: roles}
}

type BookingPatch struct {
	RoomID    *uint
	StartDate *time.Time
	EndDate   *time.Time
	NbrPeople *int
	Breakfast *bool
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := s.db.First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns every booking for admins and only the caller's own rows
// otherwise. The ownership filter lives here rather than in the route
// layer because it depends on entity data.
func (s *BookingService) List(callerID uint) ([]models.Booking, error) {
	isAdmin, err := s.roles.IsAdmin(callerID)
	if err != nil {
		return nil, err
	}
	q := s.db.Model(&models.Booking{})
	if !isAdmin {
		q = q.Where("user_id = ?", callerID)
	}
	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Create persists a booking owned by userID. The referenced room must
// exist; the check runs before anything is written.
func (s *BookingService) Create(userID, roomID uint, start, end time.Time, nbrPeople int, breakfast bool) (*models.Booking, error) {
	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	b := &models.Booking{
		UserID:    userID,
		RoomID:    roomID,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
		NbrPeople: nbrPeople,
		Breakfast: breakfast,
	}
	if err := s.db.Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// Update merges the patch and returns the updated booking, or nil when
// the id does not exist. The room reference is not re-validated here,
// matching creation-only existence checking.
func (s *BookingService) Update(id uint, patch BookingPatch) (*models.Booking, error) {
	b, err := s.GetByID(id)
	if err != nil || b == nil {
		return nil, err
	}
	if patch.RoomID != nil {
		b.RoomID = *patch.RoomID
	}
	if patch.StartDate != nil {
		b.StartDate = datatypes.Date(*patch.StartDate)
	}
	if patch.EndDate != nil {
		b.EndDate = datatypes.Date(*patch.EndDate)
	}
	if patch.NbrPeople != nil {
		b.NbrPeople = *patch.NbrPeople
	}
	if patch.Breakfast != nil {
		b.Breakfast = *patch.Breakfast
	}
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookingService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
