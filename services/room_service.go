package services

import (
	"errors"

	"gorm.io/gorm"

	"akkor-hotel-backend/models"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

type RoomPatch struct {
	Price        *float64
	NumberOfBeds *int
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var r models.Room
	err := s.db.First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RoomService) ListByHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Where("hotel_id = ?", hotelID).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Create(r *models.Room) error {
	return s.db.Create(r).Error
}

func (s *RoomService) Update(id uint, patch RoomPatch) (*models.Room, error) {
	r, err := s.GetByID(id)
	if err != nil || r == nil {
		return nil, err
	}
	if patch.Price != nil {
		r.Price = *patch.Price
	}
	if patch.NumberOfBeds != nil {
		r.NumberOfBeds = *patch.NumberOfBeds
	}
	if err := s.db.Save(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes the room and its bookings in one transaction.
func (s *RoomService) Delete(id uint) (bool, error) {
	r, err := s.GetByID(id)
	if err != nil || r == nil {
		return false, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
