package models

type Room struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	HotelID      uint    `gorm:"index;not null" json:"hotel_id"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	NumberOfBeds int     `gorm:"not null" json:"number_of_beds"`

	Bookings []Booking `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}
