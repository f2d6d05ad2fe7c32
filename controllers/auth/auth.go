package auth

import (
	"time"

	"logistics-requests/controllers"
	"logistics-requests/middleware"
	authService "logistics-requests/services/auth"
	"logistics-requests/types"
	authTypes "logistics-requests/types/auth"
	"logistics-requests/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	service      *authService.Service
	secureCookie bool
}

func NewAuthController(service *authService.Service, secureCookie bool) *AuthController {
	return &AuthController{service: service, secureCookie: secureCookie}
}

func (h *AuthController) setAccessCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessCookie,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "login", err)
	}

	session, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return controllers.Fail(c, "login", err)
	}
	h.setAccessCookie(c, session.Token, session.ExpiresAt)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   session.Token,
		Data: authTypes.LoginResponse{
			ExpiresAt: session.ExpiresAt,
			User:      session.User,
		},
	})
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return controllers.BadBody(c, err)
	}
	if err := req.Validate(); err != nil {
		return controllers.Fail(c, "register", err)
	}
	phone, _ := utils.NormalizePhone(req.Phone)

	u, err := h.service.Register(c.UserContext(), authService.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		Age:       req.Age,
		Phone:     phone,
	})
	if err != nil {
		return controllers.Fail(c, "register", err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "User registered successfully",
		Status:  fiber.StatusCreated,
		Data:    u,
	})
}

func (h *AuthController) Me(c *fiber.Ctx) error {
	actor, err := middleware.MustActor(c)
	if err != nil {
		return controllers.Fail(c, "me", err)
	}
	u, err := h.service.Me(c.UserContext(), actor.UserID)
	if err != nil {
		return controllers.Fail(c, "me", err)
	}
	return c.JSON(types.ApiResponse{
		Message: "User profile",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setAccessCookie(c, "", time.Unix(0, 0))
	return c.JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}
