package repositories

import (
	"context"
	"gin-grocery/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindAll(ctx context.Context, groupID uint) ([]models.CartItem, error)
	AddOrIncrement(ctx context.Context, item models.CartItem) (bool, error)
	DeleteByName(ctx context.Context, groupID uint, name string) error
	DeleteAll(ctx context.Context, groupID uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindAll(ctx context.Context, groupID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

// AddOrIncrement は同名アイテムがあれば数量を加算し、なければ作成する。
// 作成した場合は true を返す。
func (r *CartRepository) AddOrIncrement(ctx context.Context, item models.CartItem) (bool, error) {
	db := r.db.WithContext(ctx)

	updated, err := increment(db, item)
	if err != nil || updated {
		return false, err
	}

	if err := db.Create(&item).Error; err != nil {
		if !isDuplicateKey(err) {
			return false, err
		}
		// 同時に同名アイテムが作られた
		updated, err = increment(db, item)
		if err != nil {
			return false, err
		}
		if !updated {
			return false, gorm.ErrRecordNotFound
		}
		return false, nil
	}
	return true, nil
}

func increment(db *gorm.DB, item models.CartItem) (bool, error) {
	updates := map[string]interface{}{
		"quantity": gorm.Expr("quantity + ?", item.Quantity),
	}
	if item.Price > 0 {
		updates["price"] = item.Price
	}

	result := db.Model(&models.CartItem{}).
		Where("group_id = ? AND name = ?", item.GroupID, item.Name).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CartRepository) DeleteByName(ctx context.Context, groupID uint, name string) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND name = ?", groupID, name).
		Delete(&models.CartItem{})
	return result.Error
}

func (r *CartRepository) DeleteAll(ctx context.Context, groupID uint) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&models.CartItem{})
	return result.Error
}
