package user

import (
	"logistics-requests/controllers"
	"logistics-requests/middleware"
	userService "logistics-requests/services/user"
	"logistics-requests/types"
	userTypes "logistics-requests/types/user"
	"logistics-requests/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	service *userService.Service
}

func NewUserController(service *userService.Service) *UserController {
	return &UserController{service: service}
}

// Index lists users, manager only.
func (h *UserController) Index(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "list users", err)
	}
	page, limit := controllers.Paging(c)

	users, total, err := h.service.List(c.UserContext(), actor, (page-1)*limit, limit)
	if err != nil {
		return controllers.Fail(c, "list users", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "Users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    users,
		Meta: &types.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, limit),
		},
	})
}

// UpdateRole changes role and active flag of another user.
func (h *UserController) UpdateRole(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "update role", err)
	}
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return controllers.Fail(c, "update role", err)
	}
	var req userTypes.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "update role", err)
	}

	u, err := h.service.UpdateRole(c.UserContext(), actor, id, userService.UpdateRoleInput{
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return controllers.Fail(c, "update role", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "User updated successfully",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}
