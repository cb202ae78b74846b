package services

import (
	"errors"

	"gorm.io/gorm"

	"akkor-hotel-backend/auth"
	"akkor-hotel-backend/models"
)

type UserService struct {
	db    *gorm.DB
	roles *UserRoleService
}

func NewUserService(db *gorm.DB, roles *UserRoleService) *UserService {
	return &UserService{db: db, roles: roles}
}

// UserPatch applies only the fields that were present in the request
// body. A non-nil Password is a plain password and gets re-hashed.
type UserPatch struct {
	Email    *string
	Pseudo   *string
	Password *string
}

// UserWithRole is the listing/login view: profile plus admin flag.
type UserWithRole struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Pseudo  string `json:"pseudo"`
	IsAdmin bool   `json:"is_admin"`
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByPseudo returns the raw user row, including the password hash, for
// credential verification.
func (s *UserService) GetByPseudo(pseudo string) (*models.User, error) {
	var u models.User
	err := s.db.First(&u, "pseudo = ?", pseudo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) GetWithRole(id uint) (*UserWithRole, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	return s.withRole(u)
}

func (s *UserService) GetByPseudoWithRole(pseudo string) (*UserWithRole, error) {
	u, err := s.GetByPseudo(pseudo)
	if err != nil || u == nil {
		return nil, err
	}
	return s.withRole(u)
}

func (s *UserService) withRole(u *models.User) (*UserWithRole, error) {
	isAdmin, err := s.roles.IsAdmin(u.ID)
	if err != nil {
		return nil, err
	}
	return &UserWithRole{ID: u.ID, Email: u.Email, Pseudo: u.Pseudo, IsAdmin: isAdmin}, nil
}

func (s *UserService) List() ([]UserWithRole, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]UserWithRole, 0, len(users))
	for i := range users {
		view, err := s.withRole(&users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func (s *UserService) Create(email, pseudo, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	u := &models.User{
		Email:    email,
		Pseudo:   pseudo,
		Password: hash,
	}
	if err := s.db.Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Update merges the patch field by field and returns the updated user, or
// nil when the id does not exist.
func (s *UserService) Update(id uint, patch UserPatch) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Pseudo != nil {
		u.Pseudo = *patch.Pseudo
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, ErrInvalidPassword
		}
		u.Password = hash
	}
	if err := s.db.Save(u).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Delete removes the user together with their role row and bookings in
// one transaction.
func (s *UserService) Delete(id uint) (bool, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return false, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) IsAdmin(id uint) (bool, error) {
	return s.roles.IsAdmin(id)
}
