package services

import (
	"context"
	"errors"
	"gin-grocery/constants"
	"gin-grocery/dto"
	"gin-grocery/models"
	"gin-grocery/repositories"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

type ICartService interface {
	GetCart(ctx context.Context, requesterEmail string) ([]models.CartItem, error)
	AddItem(ctx context.Context, requesterEmail string, input dto.AddCartItemInput) ([]models.CartItem, bool, error)
	DeleteItem(ctx context.Context, requesterEmail string, name string) ([]models.CartItem, error)
	ClearCart(ctx context.Context, requesterEmail string) error
}

type CartService struct {
	repository     repositories.ICartRepository
	authRepository repositories.IAuthRepository
}

func NewCartService(repository repositories.ICartRepository, authRepository repositories.IAuthRepository) ICartService {
	return &CartService{repository: repository, authRepository: authRepository}
}

func (s *CartService) groupIDFor(ctx context.Context, requesterEmail string) (uint, error) {
	user, err := s.authRepository.FindUser(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, NewValidationError(constants.ErrNotInGroup)
		}
		return 0, err
	}
	if user.GroupID == nil {
		return 0, NewValidationError(constants.ErrNotInGroup)
	}
	return *user.GroupID, nil
}

func (s *CartService) GetCart(ctx context.Context, requesterEmail string) ([]models.CartItem, error) {
	groupID, err := s.groupIDFor(ctx, requesterEmail)
	if err != nil {
		return nil, err
	}
	return s.repository.FindAll(ctx, groupID)
}

// AddItem は追加後のカートと、新規作成だったかどうかを返す
func (s *CartService) AddItem(ctx context.Context, requesterEmail string, input dto.AddCartItemInput) ([]models.CartItem, bool, error) {
	name := strings.TrimSpace(input.Item)
	if name == "" {
		return nil, false, NewValidationError(constants.ErrItemNameRequired)
	}

	groupID, err := s.groupIDFor(ctx, requesterEmail)
	if err != nil {
		return nil, false, err
	}

	item := models.CartItem{
		GroupID:     groupID,
		Name:        name,
		Category:    constants.DefaultCategory,
		Quantity:    constants.DefaultQuantity,
		Contributor: constants.DefaultContributor,
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		item.Category = category
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, false, NewValidationError("Quantity must be at least 1")
		}
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, false, NewValidationError("Price must not be negative")
		}
		item.Price = *input.Price
	}
	if contributor := strings.TrimSpace(input.Username); contributor != "" {
		item.Contributor = contributor
	}

	created, err := s.repository.AddOrIncrement(ctx, item)
	if err != nil {
		return nil, false, err
	}
	slog.InfoContext(ctx, "Cart item saved", "group_id", groupID, "item", name, "quantity", item.Quantity, "created", created)

	items, err := s.repository.FindAll(ctx, groupID)
	if err != nil {
		return nil, false, err
	}
	return items, created, nil
}

// DeleteItem は存在しない名前でもエラーにしない
func (s *CartService) DeleteItem(ctx context.Context, requesterEmail string, name string) ([]models.CartItem, error) {
	groupID, err := s.groupIDFor(ctx, requesterEmail)
	if err != nil {
		return nil, err
	}

	if err := s.repository.DeleteByName(ctx, groupID, name); err != nil {
		return nil, err
	}
	return s.repository.FindAll(ctx, groupID)
}

func (s *CartService) ClearCart(ctx context.Context, requesterEmail string) error {
	groupID, err := s.groupIDFor(ctx, requesterEmail)
	if err != nil {
		return err
	}
	return s.repository.DeleteAll(ctx, groupID)
}
