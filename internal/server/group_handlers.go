package server

import (
	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createGroupRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// GetGroups lists groups alphabetically by title.
func (s *Server) GetGroups(c *fiber.Ctx) error {
	page := pageNumber(c)
	offset := (page - 1) * s.config.PageSize

	groups, err := s.groupService.ListGroups(c.UserContext(), s.config.PageSize, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"items": groups,
		"page":  page,
	})
}

// GetGroup returns one group by slug.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupService.GetGroup(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(group)
}

// GetGroupPosts returns one page of the group's posts, newest first.
// An unknown slug is 404, never an empty listing.
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")
	page := pageNumber(c)

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{GroupSlug: slug})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pagination.Paginate(posts, s.config.PageSize, page))
}

// CreateGroup creates a new group.
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(c.UserContext(), service.CreateGroupInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}
