package services

import (
	"errors"

	"gorm.io/gorm"

	"akkor-hotel-backend/models"
)

const defaultHotelPageSize = 10

type HotelService struct {
	db *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

// HotelFilter narrows the listing; empty strings impose no restriction.
type HotelFilter struct {
	Name    string
	Address string
	Limit   int
	Offset  int
}

// NullableString is a patch field for a nullable column: Set reports
// that the field was present in the payload, and a nil Value clears the
// column. This keeps explicit nulls distinct from omission.
type NullableString struct {
	Set   bool
	Value *string
}

type NullableFloat64 struct {
	Set   bool
	Value *float64
}

type HotelPatch struct {
	Name        *string
	Address     *string
	Description NullableString
	Rating      NullableFloat64
	Breakfast   *bool
}

func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var h models.Hotel
	err := s.db.First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// List applies case-insensitive substring filters on name and address
// with limit/offset pagination (limit defaults to 10).
func (s *HotelService) List(filter HotelFilter) ([]models.Hotel, error) {
	q := s.db.Model(&models.Hotel{})
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		q = q.Where("LOWER(address) LIKE LOWER(?)", "%"+filter.Address+"%")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHotelPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var hotels []models.Hotel
	if err := q.Limit(limit).Offset(offset).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *HotelService) Create(h *models.Hotel) error {
	return s.db.Create(h).Error
}

func (s *HotelService) Update(id uint, patch HotelPatch) (*models.Hotel, error) {
	h, err := s.GetByID(id)
	if err != nil || h == nil {
		return nil, err
	}
	if patch.Name != nil {
		h.Name = *patch.Name
	}
	if patch.Address != nil {
		h.Address = *patch.Address
	}
	if patch.Description.Set {
		h.Description = patch.Description.Value
	}
	if patch.Rating.Set {
		h.Rating = patch.Rating.Value
	}
	if patch.Breakfast != nil {
		h.Breakfast = *patch.Breakfast
	}
	if err := s.db.Save(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes the hotel, its rooms and, transitively, the bookings of
// those rooms in one transaction.
func (s *HotelService) Delete(id uint) (bool, error) {
	h, err := s.GetByID(id)
	if err != nil || h == nil {
		return false, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var roomIDs []uint
		if err := tx.Model(&models.Room{}).Where("hotel_id = ?", id).Pluck("id", &roomIDs).Error; err != nil {
			return err
		}
		if len(roomIDs) > 0 {
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("hotel_id = ?", id).Delete(&models.Room{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Hotel{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
