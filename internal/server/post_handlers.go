package server

import (
	"encoding/json"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group_id"`
	ImageURL string `json:"image_url"`
}

type updatePostRequest struct {
	Text       *string `json:"text"`
	GroupID    *uint   `json:"group_id"`
	ClearGroup bool    `json:"clear_group"`
	ImageURL   *string `json:"image_url"`
}

// GetPosts returns one page of posts, newest first. Without filters this is
// the landing page and its rendered body is cached for the configured TTL, so
// new posts may take up to that long to appear. Filtered listings are always
// rendered fresh.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	groupSlug := c.Query("group")
	authorUsername := c.Query("author")
	page := pageNumber(c)
	landing := groupSlug == "" && authorUsername == ""

	if landing {
		if body, ok := s.pageCache.Get(c.UserContext(), cache.LandingPageKey(page)); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(body)
		}
	}

	posts, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		GroupSlug:      groupSlug,
		AuthorUsername: authorUsername,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	pg := pagination.Paginate(posts, s.config.PageSize, page)
	body, err := json.Marshal(pg)
	if err != nil {
		return respondServiceError(c, err)
	}

	if landing {
		// Key by the page the paginator actually served: an out-of-range
		// request clamps to the last page and must share its cache entry.
		s.pageCache.Store(c.UserContext(), cache.LandingPageKey(pg.Number), body)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// GetPost returns a single post with its author and group, plus the author's
// total post count for the detail page sidebar.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	authorPostCount, err := s.postService.CountPosts(c.UserContext(), post.AuthorID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":              post,
		"author_post_count": authorPostCount,
	})
}

// CreatePost creates a post authored by the authenticated user. The author
// always comes from the token; nothing in the body can reassign it.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost applies a partial edit to the caller's own post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := idParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:       id,
		ActingUserID: userID,
		Text:         req.Text,
		GroupID:      req.GroupID,
		ClearGroup:   req.ClearGroup,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost removes the caller's own post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := idParam(c, "id")
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), id, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFeed returns one page of posts by authors the caller follows.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := pageNumber(c)

	posts, err := s.postService.ListFeed(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pagination.Paginate(posts, s.config.PageSize, page))
}
