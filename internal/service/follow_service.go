package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/repository"

	"gorm.io/gorm"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type FollowInput struct {
	UserID         uint
	AuthorUsername string
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow adds a follow edge from the user to the named author.
// Following yourself or someone you already follow is silently ignored;
// both leave the graph exactly as it was.
func (s *FollowService) Follow(ctx context.Context, in FollowInput) error {
	author, err := s.userRepo.GetByUsername(ctx, in.AuthorUsername)
	if err != nil {
		return notFound(err, "User", in.AuthorUsername)
	}

	if author.ID == in.UserID {
		return nil
	}

	err = s.followRepo.Create(ctx, &models.Follow{
		UserID:   in.UserID,
		AuthorID: author.ID,
	})
	if err != nil {
		// A concurrent call won the race for the same edge; the desired
		// state already holds.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	observability.FollowEdgeChanges.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the follow edge. Removing an edge that never existed
// succeeds without complaint.
func (s *FollowService) Unfollow(ctx context.Context, in FollowInput) error {
	author, err := s.userRepo.GetByUsername(ctx, in.AuthorUsername)
	if err != nil {
		return notFound(err, "User", in.AuthorUsername)
	}

	if err := s.followRepo.Delete(ctx, in.UserID, author.ID); err != nil {
		return err
	}

	observability.FollowEdgeChanges.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether userID follows the named author.
// Anonymous callers (userID zero) never follow anyone.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, authorUsername string) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return false, notFound(err, "User", authorUsername)
	}

	return s.followRepo.Exists(ctx, userID, author.ID)
}
