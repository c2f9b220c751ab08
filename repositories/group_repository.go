package repositories

import (
	"context"
	"gin-grocery/models"

	"gorm.io/gorm"
)

type IGroupRepository interface {
	CreateWithOwner(ctx context.Context, name string, ownerEmail string) (*models.Group, error)
	AddMember(ctx context.Context, groupID uint, userID uint) error
	FindByName(ctx context.Context, name string) (*models.Group, error)
	FindByID(ctx context.Context, groupID uint) (*models.Group, error)
	ListMemberNames(ctx context.Context, groupID uint) ([]string, error)
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) IGroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithOwner はグループ作成とオーナーの割り当てを1トランザクションで行う。
// 名前の重複は ErrDuplicate、オーナー不在は gorm.ErrRecordNotFound、
// オーナーが既にグループ所属なら ErrAlreadyAssigned。
func (r *GroupRepository) CreateWithOwner(ctx context.Context, name string, ownerEmail string) (*models.Group, error) {
	group := models.Group{Name: name, Budget: 0}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return translate(err)
		}

		var owner models.User
		if err := tx.First(&owner, "email = ?", ownerEmail).Error; err != nil {
			return err
		}

		return assignGroup(tx, group.ID, owner.ID)
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID uint, userID uint) error {
	return assignGroup(r.db.WithContext(ctx), groupID, userID)
}

// 未所属のユーザーだけを更新するので、競合した場合も二重所属にはならない
func assignGroup(db *gorm.DB, groupID uint, userID uint) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND group_id IS NULL", userID).
		Update("group_id", groupID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyAssigned
	}
	return nil
}

func (r *GroupRepository) FindByName(ctx context.Context, name string) (*models.Group, error) {
	var group models.Group
	result := r.db.WithContext(ctx).First(&group, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, groupID uint) (*models.Group, error) {
	var group models.Group
	result := r.db.WithContext(ctx).First(&group, "id = ?", groupID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) ListMemberNames(ctx context.Context, groupID uint) ([]string, error) {
	names := []string{}
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("group_id = ?", groupID).
		Order("id").
		Pluck("username", &names)
	if result.Error != nil {
		return nil, result.Error
	}
	return names, nil
}
