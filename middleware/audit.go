package middleware

import (
	"time"

	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/logger"
	"logistics-requests/utils"

	"github.com/gofiber/fiber/v2"
)

// AuditLog queues one entry per request on the async logger. It has to be
// registered before IsAuthenticated runs so it can read the actor afterwards.
func AuditLog(l *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = errs.HTTPStatus(err)
		}

		var userID *uint
		if actor, ok := ActorFrom(c); ok {
			id := actor.UserID
			userID = &id
		}
		requestID, _ := c.Locals(constants.LocalsRequestID).(string)

		l.Log(utils.CreateSanitizedLogEntry(c, requestID, userID, status, started))
		return err
	}
}
