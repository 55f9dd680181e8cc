package server

import (
	"errors"

	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfile returns an author's profile: the user record, their post count,
// and whether the caller follows them. Anonymous callers get following=false.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userRepo.GetByUsername(c.UserContext(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondServiceError(c, models.NewNotFoundError("User", username))
		}
		return respondServiceError(c, err)
	}

	postCount, err := s.postService.CountPosts(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	following := false
	if viewerID, ok := s.optionalUserID(c); ok {
		following, err = s.followService.IsFollowing(c.UserContext(), viewerID, username)
		if err != nil {
			return respondServiceError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"user":       user,
		"post_count": postCount,
		"following":  following,
	})
}

// GetProfilePosts returns one page of the author's posts, newest first.
func (s *Server) GetProfilePosts(c *fiber.Ctx) error {
	username := c.Params("username")
	page := pageNumber(c)

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{AuthorUsername: username})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pagination.Paginate(posts, s.config.PageSize, page))
}
