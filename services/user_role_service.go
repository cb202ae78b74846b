package services

import (
	"errors"

	"gorm.io/gorm"

	"akkor-hotel-backend/models"
)

type UserRoleService struct {
	db *gorm.DB
}

func NewUserRoleService(db *gorm.DB) *UserRoleService {
	return &UserRoleService{db: db}
}

// GetByUser returns the user's role row, or nil when none exists.
func (s *UserRoleService) GetByUser(userID uint) (*models.UserRole, error) {
	var role models.UserRole
	err := s.db.First(&role, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Assign creates or replaces the single role row for a user.
func (s *UserRoleService) Assign(userID uint, isAdmin bool) (*models.UserRole, error) {
	role, err := s.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if role != nil {
		role.IsAdmin = isAdmin
		if err := s.db.Save(role).Error; err != nil {
			return nil, err
		}
		return role, nil
	}
	role = &models.UserRole{UserID: userID, IsAdmin: isAdmin}
	if err := s.db.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// Delete removes the user's role row. Returns false when there was none.
func (s *UserRoleService) Delete(userID uint) (bool, error) {
	res := s.db.Where("user_id = ?", userID).Delete(&models.UserRole{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsAdmin reports whether the user has a role row with is_admin set. No
// row means not admin.
func (s *UserRoleService) IsAdmin(userID uint) (bool, error) {
	role, err := s.GetByUser(userID)
	if err != nil {
		return false, err
	}
	return role != nil && role.IsAdmin, nil
}
