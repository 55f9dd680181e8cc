package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"

	"gorm.io/gorm"
)

type GroupService struct {
	groupRepo repository.GroupRepository
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if err := validation.ValidateGroupSlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	group := &models.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("Slug is already taken")
		}
		return nil, err
	}

	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "Group", slug)
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context, limit, offset int) ([]*models.Group, error) {
	return s.groupRepo.List(ctx, limit, offset)
}
