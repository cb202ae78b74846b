package models

type Hotel struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Address     string   `gorm:"size:255;not null" json:"address"`
	Description *string  `gorm:"type:text" json:"description"`
	Rating      *float64 `gorm:"type:decimal(2,1)" json:"rating"`
	Breakfast   bool     `gorm:"not null;default:false" json:"breakfast"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
}
