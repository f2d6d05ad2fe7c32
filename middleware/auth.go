package middleware

import (
	"context"
	"errors"
	"strings"

	"logistics-requests/constants"
	"logistics-requests/errs"
	userModel "logistics-requests/models/user"
	"logistics-requests/services/access"
	"logistics-requests/services/auth"
	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

// AccessCookie is the cookie checked when no Authorization header is sent.
const AccessCookie = "access"

// SessionStore loads the account a token was issued for.
type SessionStore interface {
	FindByID(ctx context.Context, id uint) (*userModel.User, error)
}

// IsAuthenticated verifies the bearer token (or the access cookie), reloads
// the account and stores it as an access.Actor in c.Locals. Role and active
// flag come from the stored user, so a demotion or deactivation applies to
// tokens already issued.
func IsAuthenticated(tokens *auth.TokenManager, users SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if header := c.Get(fiber.HeaderAuthorization); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				return unauthorized(c, "Invalid authorization header format")
			}
			token = strings.TrimSpace(parts[1])
		} else {
			token = c.Cookies(AccessCookie)
		}
		if token == "" {
			return unauthorized(c, "Authorization token missing")
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			return unauthorized(c, "Session expired. Login again.")
		}

		u, err := users.FindByID(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return unauthorized(c, "Session expired. Login again.")
			}
			return err
		}
		if !u.CanLogin() {
			return unauthorized(c, "Account is disabled")
		}

		c.Locals(constants.LocalsActor, access.Actor{
			UserID:   u.ID,
			Username: u.Username,
			Role:     u.Role,
		})
		return c.Next()
	}
}

// RequireRole must run after IsAuthenticated.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return unauthorized(c, "Authorization token missing")
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Insufficient permissions",
			Status:  fiber.StatusForbidden,
		})
	}
}

// ActorFrom returns the caller stored by IsAuthenticated.
func ActorFrom(c *fiber.Ctx) (access.Actor, bool) {
	actor, ok := c.Locals(constants.LocalsActor).(access.Actor)
	return actor, ok
}

// MustActor is for handlers mounted behind IsAuthenticated.
func MustActor(c *fiber.Ctx) (access.Actor, error) {
	actor, ok := ActorFrom(c)
	if !ok {
		return access.Actor{}, errs.ErrUnauthorized
	}
	return actor, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: msg,
		Status:  fiber.StatusUnauthorized,
	})
}
