package server

import (
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FollowUser makes the caller follow the named author. Following yourself or
// an author you already follow changes nothing and still succeeds.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	err := s.followService.Follow(c.UserContext(), service.FollowInput{
		UserID:         userID,
		AuthorUsername: c.Params("username"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": true})
}

// UnfollowUser removes the caller's follow edge to the named author.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	err := s.followService.Unfollow(c.UserContext(), service.FollowInput{
		UserID:         userID,
		AuthorUsername: c.Params("username"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"following": false})
}
