package repository

import (
	"context"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListAll(ctx context.Context) ([]*models.Post, error)
	ListByGroupID(ctx context.Context, groupID uint) ([]*models.Post, error)
	ListByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error)
	ListFeed(ctx context.Context, userID uint) ([]*models.Post, error)
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// listQuery is the shared base for every post listing: author and group
// preloaded, newest first with ID as tiebreaker for posts sharing a pub_date.
func (r *postRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id DESC")
}

func (r *postRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByGroupID(ctx context.Context, groupID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).
		Where("group_id = ?", groupID).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listQuery(ctx).
		Where("author_id = ?", authorID).
		Find(&posts).Error
	return posts, err
}

// ListFeed returns posts authored by users the given user follows,
// newest first. A user with no follow edges gets an empty feed.
func (r *postRepository) ListFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Order("posts.pub_date DESC, posts.id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
