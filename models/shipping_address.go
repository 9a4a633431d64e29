package models

import (
	"errors"

	"gorm.io/gorm"
)

type ShippingAddress struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	FullName         string `gorm:"not null" json:"full_name"`
	Email            string `gorm:"not null" json:"email"`
	StreetAddress    string `gorm:"not null" json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
	City             string `json:"city"`
	UserID           *uint  `gorm:"index" json:"user_id"`
}

// CreateDefaultShippingAddress gives a freshly registered user a placeholder
// address to edit later. Called by the registration workflow; a second call
// for the same user is a no-op.
func CreateDefaultShippingAddress(db *gorm.DB, user *User) (*ShippingAddress, error) {
	var existing ShippingAddress
	err := db.Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	address := ShippingAddress{
		FullName:         "Noname",
		Email:            "email@example.com",
		StreetAddress:    "fill address",
		ApartmentAddress: "fill address",
		Country:          "",
		UserID:           &user.ID,
	}
	if err := db.Create(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}
