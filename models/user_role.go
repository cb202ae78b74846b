package models

// UserRole is the admin sentinel: at most one row per user, and the
// absence of a row means "not admin".
type UserRole struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"uniqueIndex;not null" json:"user_id"`
	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"`
}

func (UserRole) TableName() string { return "user_roles" }
