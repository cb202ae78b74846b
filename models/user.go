package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Pseudo   string `gorm:"uniqueIndex;size:100;not null" json:"pseudo"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized

	Roles    []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Bookings []Booking  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
