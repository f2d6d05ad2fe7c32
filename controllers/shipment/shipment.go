package shipment

import (
	"time"

	"logistics-requests/controllers"
	"logistics-requests/errs"
	"logistics-requests/middleware"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/access"
	"logistics-requests/services/analytics"
	shipmentService "logistics-requests/services/shipment"
	"logistics-requests/types"
	shipmentTypes "logistics-requests/types/shipment"
	"logistics-requests/utils"

	"github.com/gofiber/fiber/v2"
)

type ShipmentController struct {
	service *shipmentService.Service
}

func NewShipmentController(service *shipmentService.Service) *ShipmentController {
	return &ShipmentController{service: service}
}

// ParseFilter reads the list query: status, category (or type), search,
// from/to dates, page and limit.
func ParseFilter(c *fiber.Ctx) (shipmentService.Filter, error) {
	var f shipmentService.Filter
	if raw := c.Query("status"); raw != "" && raw != "all" {
		s, ok := shipmentModel.ParseStatus(raw)
		if !ok {
			return f, errs.Validation("unknown status %q", raw)
		}
		f.Status = &s
	}
	raw := c.Query("category")
	if raw == "" {
		raw = c.Query("type")
	}
	if raw != "" && raw != "all" {
		cat, ok := shipmentModel.ParseCategory(raw)
		if !ok {
			return f, errs.Validation("unknown category %q", raw)
		}
		f.Category = &cat
	}
	w, err := analytics.ResolveWindow("", c.Query("from"), c.Query("to"), time.Now())
	if err != nil {
		return f, err
	}
	f.From, f.To = w.From, w.To
	f.Search = c.Query("search")
	f.Page, f.Limit = controllers.Paging(c)
	return f, nil
}

func (h *ShipmentController) Index(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "list shipment requests", err)
	}
	f, err := ParseFilter(c)
	if err != nil {
		return controllers.Fail(c, "list shipment requests", err)
	}

	rows, total, err := h.service.List(c.UserContext(), actor, f)
	if err != nil {
		return controllers.Fail(c, "list shipment requests", err)
	}
	locale := controllers.Locale(c)
	views := make([]shipmentTypes.RequestView, 0, len(rows))
	for i := range rows {
		views = append(views, shipmentTypes.NewRequestView(&rows[i], locale))
	}

	return c.JSON(types.ApiResponse{
		Message: "Shipment requests fetched successfully",
		Status:  fiber.StatusOK,
		Data:    views,
		Meta: &types.Pagination{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, f.Limit),
		},
	})
}

func (h *ShipmentController) Store(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "create shipment request", err)
	}
	var req shipmentTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "create shipment request", err)
	}

	created, err := h.service.Create(c.UserContext(), actor, req.ToInput())
	if err != nil {
		return controllers.Fail(c, "create shipment request", err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Shipment request created successfully",
		Status:  fiber.StatusCreated,
		Data:    shipmentTypes.NewRequestView(created, controllers.Locale(c)),
	})
}

func (h *ShipmentController) Show(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return controllers.Fail(c, "show shipment request", err)
	}
	req, err := h.service.Get(c.UserContext(), actor, id)
	if err != nil {
		return controllers.Fail(c, "show shipment request", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Shipment request fetched successfully",
		Status:  fiber.StatusOK,
		Data:    shipmentTypes.NewRequestView(req, controllers.Locale(c)),
	})
}

func (h *ShipmentController) Update(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return controllers.Fail(c, "update shipment request", err)
	}
	var req shipmentTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "update shipment request", err)
	}

	updated, err := h.service.Update(c.UserContext(), actor, id, req.ToInput())
	if err != nil {
		return controllers.Fail(c, "update shipment request", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Shipment request updated successfully",
		Status:  fiber.StatusOK,
		Data:    shipmentTypes.NewRequestView(updated, controllers.Locale(c)),
	})
}

func (h *ShipmentController) Destroy(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return controllers.Fail(c, "delete shipment request", err)
	}
	if err := h.service.Delete(c.UserContext(), actor, id); err != nil {
		return controllers.Fail(c, "delete shipment request", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Shipment request deleted successfully",
		Status:  fiber.StatusOK,
	})
}

func (h *ShipmentController) History(c *fiber.Ctx) error {
	actor, id, err := actorAndID(c)
	if err != nil {
		return controllers.Fail(c, "shipment request history", err)
	}
	events, err := h.service.History(c.UserContext(), actor, id)
	if err != nil {
		return controllers.Fail(c, "shipment request history", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Status history fetched successfully",
		Status:  fiber.StatusOK,
		Data:    shipmentTypes.NewStatusEventViews(events, controllers.Locale(c)),
	})
}

// Stats is the dashboard summary over everything the caller can see.
func (h *ShipmentController) Stats(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "shipment stats", err)
	}
	f, err := ParseFilter(c)
	if err != nil {
		return controllers.Fail(c, "shipment stats", err)
	}
	stats, err := h.service.Stats(c.UserContext(), actor, f)
	if err != nil {
		return controllers.Fail(c, "shipment stats", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Stats fetched successfully",
		Status:  fiber.StatusOK,
		Data:    stats,
	})
}

func actorAndID(c *fiber.Ctx) (actor access.Actor, id uint, err error) {
	actor, err = middleware.MustActor(c)
	if err != nil {
		return actor, 0, err
	}
	id, err = utils.ParseID(c.Params("id"))
	return actor, id, err
}
