package middleware

import (
	"logistics-requests/errs"
	"logistics-requests/logger"
	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the fiber.Config hook. Anything a handler returns instead
// of writing a response ends up here, including fiber's own 404 and 405.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := errs.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.Error(c.Method()+" "+c.OriginalURL(), err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: errs.PublicMessage(err),
		Status:  status,
	})
}
