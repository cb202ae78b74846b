package models

import "gorm.io/datatypes"

// Booking holds plain calendar dates; no overlap or capacity validation
// is applied, several bookings may coexist for the same room and range.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	RoomID    uint           `gorm:"index;not null" json:"room_id"`
	StartDate datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate   datatypes.Date `gorm:"not null" json:"end_date"`
	NbrPeople int            `gorm:"not null" json:"nbr_people"`
	Breakfast bool           `gorm:"not null;default:false" json:"breakfast"`
}
