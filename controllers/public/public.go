package public

import (
	"logistics-requests/controllers"
	shipmentService "logistics-requests/services/shipment"
	"logistics-requests/types"
	shipmentTypes "logistics-requests/types/shipment"
	"logistics-requests/utils"

	"github.com/gofiber/fiber/v2"
)

// PublicController serves the unauthenticated intake and tracking forms.
// Nothing it returns may include phones, addresses, prices or owners.
type PublicController struct {
	service *shipmentService.Service
}

func NewPublicController(service *shipmentService.Service) *PublicController {
	return &PublicController{service: service}
}

func (h *PublicController) Store(c *fiber.Ctx) error {
	var req shipmentTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "public create", err)
	}

	created, err := h.service.CreatePublic(c.UserContext(), req.ToInput())
	if err != nil {
		return controllers.Fail(c, "public create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Shipment request accepted",
		Status:  fiber.StatusCreated,
		Data:    shipmentTypes.NewTrackingView(created),
	})
}

func (h *PublicController) TrackByNumber(c *fiber.Ctx) error {
	req, err := h.service.TrackByNumber(c.UserContext(), c.Params("number"))
	if err != nil {
		return controllers.Fail(c, "track by number", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Shipment request found",
		Status:  fiber.StatusOK,
		Data:    shipmentTypes.NewTrackingView(req),
	})
}

// Track accepts {"request_number": ...} or {"phone": ...}. A number yields
// one view, a phone yields a list.
func (h *PublicController) Track(c *fiber.Ctx) error {
	var req shipmentTypes.TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "track", err)
	}

	if req.RequestNumber != "" {
		found, err := h.service.TrackByNumber(c.UserContext(), req.RequestNumber)
		if err != nil {
			return controllers.Fail(c, "track by number", err)
		}
		return c.JSON(types.ApiResponse{
			Message: "Shipment request found",
			Status:  fiber.StatusOK,
			Data:    shipmentTypes.NewTrackingView(found),
		})
	}

	phone, _ := utils.NormalizePhone(req.Phone)
	rows, err := h.service.TrackByPhone(c.UserContext(), phone)
	if err != nil {
		return controllers.Fail(c, "track by phone", err)
	}
	views := make([]shipmentTypes.TrackingView, 0, len(rows))
	for i := range rows {
		views = append(views, shipmentTypes.NewTrackingView(&rows[i]))
	}
	return c.JSON(types.ApiResponse{
		Message: "Shipment requests found",
		Status:  fiber.StatusOK,
		Data:    views,
	})
}
