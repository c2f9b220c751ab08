package models

import "time"

// CartItem はグループ共有カートの1行。名前はグループ内で一意。
// 論理削除は一意制約と衝突するため gorm.Model は使わない。
type CartItem struct {
	ID          uint   `gorm:"primarykey"`
	GroupID     uint   `gorm:"not null;uniqueIndex:idx_cart_items_group_name"`
	Name        string `gorm:"not null;uniqueIndex:idx_cart_items_group_name"`
	Category    string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Price       float64
	Contributor string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
