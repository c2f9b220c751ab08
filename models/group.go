package models

import "gorm.io/gorm"

type Group struct {
	gorm.Model
	Name      string     `gorm:"not null;unique"`
	Budget    int        `gorm:"not null;default:0"`
	Users     []User     `gorm:"constraint:OnDelete:SET NULL;"`
	CartItems []CartItem `gorm:"constraint:OnDelete:CASCADE;"`
}
