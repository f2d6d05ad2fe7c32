package controllers

import (
	"strings"

	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/logger"
	shipmentService "logistics-requests/services/shipment"
	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

// Fail writes err as an ApiResponse. Server errors are logged with action
// and answered with the generic message only.
func Fail(c *fiber.Ctx, action string, err error) error {
	status := errs.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.Error(action, err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: errs.PublicMessage(err),
		Status:  status,
	})
}

func BadBody(c *fiber.Ctx, err error) error {
	logger.Debug("invalid request body: " + err.Error())
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Message: "Invalid request body",
		Status:  fiber.StatusBadRequest,
	})
}

// Locale picks the label language from ?lang= or Accept-Language.
func Locale(c *fiber.Ctx) string {
	if lang := strings.ToLower(c.Query("lang")); lang == constants.LocaleEN || lang == constants.LocaleRU {
		return lang
	}
	if c.AcceptsLanguages(constants.LocaleRU, constants.LocaleEN) == constants.LocaleEN {
		return constants.LocaleEN
	}
	return constants.LocaleRU
}

// Paging reads ?page= and ?limit= with the list defaults applied.
func Paging(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	if page > shipmentService.MaxPage {
		page = shipmentService.MaxPage
	}
	limit = c.QueryInt("limit", shipmentService.DefaultLimit)
	if limit < 1 {
		limit = shipmentService.DefaultLimit
	}
	if limit > shipmentService.MaxLimit {
		limit = shipmentService.MaxLimit
	}
	return page, limit
}
