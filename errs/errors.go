package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("status transition not allowed")
)

// GenericMessage is the only text a client sees for a 500.
const GenericMessage = "Internal server error"

type detailed struct {
	kind error
	msg  string
}

func (e *detailed) Error() string { return e.msg }
func (e *detailed) Unwrap() error { return e.kind }

// Validation returns an ErrValidation carrying a client-facing message.
func Validation(format string, args ...any) error {
	return &detailed{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound naming the missing thing.
func NotFound(what string) error {
	return &detailed{kind: ErrNotFound, msg: what + " not found"}
}

// Forbidden returns an ErrForbidden with a specific reason.
func Forbidden(reason string) error {
	return &detailed{kind: ErrForbidden, msg: reason}
}

// Transition returns an ErrInvalidTransition describing the rejected move.
func Transition(from, to string) error {
	return &detailed{kind: ErrInvalidTransition, msg: fmt.Sprintf("cannot change status from %s to %s", from, to)}
}

// HTTPStatus maps an error chain onto the API's status codes.
func HTTPStatus(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidTransition):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to the client for err.
func PublicMessage(err error) string {
	status := HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		return GenericMessage
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return "Invalid username or password"
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
