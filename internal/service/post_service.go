// Package service contains the business rules sitting between HTTP handlers
// and repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/repository"

	"gorm.io/gorm"
)

const maxPostLen = 10000

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// UpdatePostInput carries a partial update. Nil pointer fields mean
// "leave unchanged"; ClearGroup detaches the post from its group.
type UpdatePostInput struct {
	PostID       uint
	ActingUserID uint
	Text         *string
	GroupID      *uint
	ClearGroup   bool
	ImageURL     *string
}

type ListPostsInput struct {
	GroupSlug      string
	AuthorUsername string
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// notFound translates the repository's record-not-found into the API error.
func notFound(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 10000 characters)")
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.NewValidationError("Group does not exist")
		}
		return nil, err
	}

	grouped := "no"
	if in.GroupID != nil {
		grouped = "yes"
	}
	observability.PostsCreated.WithLabelValues(grouped).Inc()

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Post", id)
	}
	return post, nil
}

// UpdatePost applies the supplied fields to the post. Only the author may
// edit; everyone else gets a forbidden error with the post untouched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, notFound(err, "Post", in.PostID)
	}

	if post.AuthorID != in.ActingUserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Text != nil {
		if strings.TrimSpace(*in.Text) == "" {
			return nil, models.NewValidationError("Text is required")
		}
		if len(*in.Text) > maxPostLen {
			return nil, models.NewValidationError("Post too long (max 10000 characters)")
		}
		post.Text = *in.Text
	}
	if in.ClearGroup {
		post.GroupID = nil
		post.Group = nil
	} else if in.GroupID != nil {
		post.GroupID = in.GroupID
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.NewValidationError("Group does not exist")
		}
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, postID, actingUserID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return notFound(err, "Post", postID)
	}
	if post.AuthorID != actingUserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ListPosts returns posts newest first, optionally narrowed to one group or
// one author. An unknown slug or username is a not-found error, not an empty
// listing.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	switch {
	case in.GroupSlug != "":
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, notFound(err, "Group", in.GroupSlug)
		}
		return s.postRepo.ListByGroupID(ctx, group.ID)
	case in.AuthorUsername != "":
		author, err := s.userRepo.GetByUsername(ctx, in.AuthorUsername)
		if err != nil {
			return nil, notFound(err, "User", in.AuthorUsername)
		}
		return s.postRepo.ListByAuthorID(ctx, author.ID)
	default:
		return s.postRepo.ListAll(ctx)
	}
}

func (s *PostService) CountPosts(ctx context.Context, authorID uint) (int64, error) {
	return s.postRepo.CountByAuthorID(ctx, authorID)
}

// ListFeed returns posts by authors the user follows, newest first.
func (s *PostService) ListFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "feed.list")
	defer span.End()

	posts, err := s.postRepo.ListFeed(ctx, userID)
	if err != nil {
		span.SetError(err)
	}
	return posts, err
}
