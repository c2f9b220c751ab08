package models

import "gorm.io/gorm"

// ExpiresAt が 0 のトークンは期限なし
type BlacklistedToken struct {
	gorm.Model
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
