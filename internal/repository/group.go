package repository

import (
	"context"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	List(ctx context.Context, limit, offset int) ([]*models.Group, error)
	Delete(ctx context.Context, id uint) error
}

// groupRepository implements GroupRepository
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	group, err := cache.Aside(ctx, cache.GroupKey(slug), cache.GroupTTL, func() (models.Group, error) {
		var g models.Group
		err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error
		return g, err
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context, limit, offset int) ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Limit(limit).
		Offset(offset).
		Find(&groups).Error
	return groups, err
}

// Delete removes the group row. Posts pointing at it keep their rows with
// group_id set to NULL by the FK referential action.
func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Group{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateGroup(ctx, group.Slug)
	return nil
}
