package services

import (
	"context"
	"errors"
	"gin-grocery/constants"
	"gin-grocery/models"
	"gin-grocery/repositories"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

type IGroupService interface {
	CreateGroup(ctx context.Context, name string, requesterEmail string) (*GroupInfo, error)
	JoinGroup(ctx context.Context, name string, requesterEmail string) (*GroupInfo, error)
	GetGroupInfo(ctx context.Context, requesterEmail string) (*GroupInfo, error)
}

type GroupInfo struct {
	ID      uint
	Name    string
	Budget  int
	Members []string
}

type GroupService struct {
	repository     repositories.IGroupRepository
	authRepository repositories.IAuthRepository
}

func NewGroupService(repository repositories.IGroupRepository, authRepository repositories.IAuthRepository) IGroupService {
	return &GroupService{repository: repository, authRepository: authRepository}
}

func (s *GroupService) CreateGroup(ctx context.Context, name string, requesterEmail string) (*GroupInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError(constants.ErrGroupNameRequired)
	}

	group, err := s.repository.CreateWithOwner(ctx, name, requesterEmail)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, NewConflictError(constants.ErrGroupExists)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, NewNotFoundError(constants.ErrUserNotFound)
		case errors.Is(err, repositories.ErrAlreadyAssigned):
			return nil, NewConflictError(constants.ErrAlreadyInGroup)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "Group created", "group_id", group.ID, "name", group.Name)
	return s.groupInfo(ctx, group)
}

func (s *GroupService) JoinGroup(ctx context.Context, name string, requesterEmail string) (*GroupInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError(constants.ErrGroupNameRequired)
	}

	group, err := s.repository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(constants.ErrGroupNotFound)
		}
		return nil, err
	}

	user, err := s.authRepository.FindUser(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(constants.ErrUserNotFound)
		}
		return nil, err
	}

	if err := s.repository.AddMember(ctx, group.ID, user.ID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyAssigned) {
			return nil, NewConflictError(constants.ErrAlreadyInGroup)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "User joined group", "group_id", group.ID, "user_id", user.ID)
	return s.groupInfo(ctx, group)
}

func (s *GroupService) GetGroupInfo(ctx context.Context, requesterEmail string) (*GroupInfo, error) {
	user, err := s.authRepository.FindUser(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(constants.ErrNoGroup)
		}
		return nil, err
	}
	if user.GroupID == nil {
		return nil, NewNotFoundError(constants.ErrNoGroup)
	}

	group, err := s.repository.FindByID(ctx, *user.GroupID)
	if err != nil {
		return nil, err
	}
	return s.groupInfo(ctx, group)
}

func (s *GroupService) groupInfo(ctx context.Context, group *models.Group) (*GroupInfo, error) {
	members, err := s.repository.ListMemberNames(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return &GroupInfo{
		ID:      group.ID,
		Name:    group.Name,
		Budget:  group.Budget,
		Members: members,
	}, nil
}
