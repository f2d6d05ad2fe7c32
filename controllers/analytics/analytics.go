package analytics

import (
	"bytes"
	"fmt"
	"time"

	"logistics-requests/controllers"
	"logistics-requests/errs"
	"logistics-requests/middleware"
	shipmentModel "logistics-requests/models/shipment"
	analyticsService "logistics-requests/services/analytics"
	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsController struct {
	service *analyticsService.Service
}

func NewAnalyticsController(service *analyticsService.Service) *AnalyticsController {
	return &AnalyticsController{service: service}
}

func parseQuery(c *fiber.Ctx) (analyticsService.Query, error) {
	q := analyticsService.Query{
		Period: c.Query("period"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	if raw := c.Query("status"); raw != "" && raw != "all" {
		s, ok := shipmentModel.ParseStatus(raw)
		if !ok {
			return q, errs.Validation("unknown status %q", raw)
		}
		q.Status = &s
	}
	raw := c.Query("category")
	if raw == "" {
		raw = c.Query("type")
	}
	if raw != "" && raw != "all" {
		cat, ok := shipmentModel.ParseCategory(raw)
		if !ok {
			return q, errs.Validation("unknown category %q", raw)
		}
		q.Category = &cat
	}
	return q, nil
}

// Analytics returns the aggregate for a period. Manager only.
func (h *AnalyticsController) Analytics(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "analytics", err)
	}
	q, err := parseQuery(c)
	if err != nil {
		return controllers.Fail(c, "analytics", err)
	}
	summary, err := h.service.Summary(c.UserContext(), actor, q)
	if err != nil {
		return controllers.Fail(c, "analytics", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Analytics fetched successfully",
		Status:  fiber.StatusOK,
		Data:    summary,
	})
}

// Reports returns the monthly breakdown, or an Excel file with format=xlsx.
func (h *AnalyticsController) Reports(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "reports", err)
	}
	q, err := parseQuery(c)
	if err != nil {
		return controllers.Fail(c, "reports", err)
	}
	report, err := h.service.Report(c.UserContext(), actor, q)
	if err != nil {
		return controllers.Fail(c, "reports", err)
	}

	if c.Query("format") != "xlsx" {
		return c.JSON(types.ApiResponse{
			Message: "Report generated successfully",
			Status:  fiber.StatusOK,
			Data:    report,
		})
	}

	var buf bytes.Buffer
	if err := analyticsService.WriteXLSX(report, &buf); err != nil {
		return controllers.Fail(c, "reports xlsx", err)
	}
	c.Attachment(fmt.Sprintf("report_%s.xlsx", time.Now().Format("02.01.2006")))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}
