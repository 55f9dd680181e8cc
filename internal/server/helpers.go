package server

import (
	"strconv"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps an application error to its HTTP status.
func statusForError(err error) int {
	appErr, ok := err.(*models.AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}

	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError writes the error with the status its code implies.
// Errors that are not AppErrors are wrapped as internal so their details do
// not leak to clients.
func respondServiceError(c *fiber.Ctx, err error) error {
	if _, ok := err.(*models.AppError); !ok {
		err = models.NewInternalError(err)
	}
	return models.RespondWithError(c, statusForError(err), err)
}

// pageNumber reads the "page" query parameter. Absent or malformed values
// resolve to page 1; range clamping happens in the pagination package.
func pageNumber(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam parses the named route parameter as an unsigned ID.
func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}
