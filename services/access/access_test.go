package access

import (
	"testing"

	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/models/shipment"

	"github.com/stretchr/testify/assert"
)

func owned(by uint) *shipment.ShipmentRequest {
	return &shipment.ShipmentRequest{UserID: &by}
}

var (
	manager  = Actor{UserID: 1, Role: constants.RoleManager}
	employee = Actor{UserID: 2, Role: constants.RoleEmployee}
)

func TestManagerIsUnrestricted(t *testing.T) {
	r := owned(99)
	assert.NoError(t, CanView(manager, r))
	assert.NoError(t, CanModify(manager, r))
	assert.NoError(t, CanDelete(manager, r))
	assert.NoError(t, CanSetPricing(manager))
	assert.NoError(t, RequireManager(manager))
}

func TestEmployeeOwnsOnlyTheirRequests(t *testing.T) {
	assert.NoError(t, CanView(employee, owned(2)))
	assert.NoError(t, CanModify(employee, owned(2)))

	assert.ErrorIs(t, CanView(employee, owned(3)), errs.ErrForbidden)
	assert.ErrorIs(t, CanModify(employee, owned(3)), errs.ErrForbidden)
	assert.ErrorIs(t, CanModify(employee, &shipment.ShipmentRequest{}), errs.ErrForbidden, "unowned public request")
}

func TestEmployeeCannotDeleteEvenOwnRequest(t *testing.T) {
	assert.ErrorIs(t, CanDelete(employee, owned(2)), errs.ErrForbidden)
	assert.ErrorIs(t, CanDelete(employee, owned(3)), errs.ErrForbidden)
}

func TestEmployeeCannotSetPricing(t *testing.T) {
	assert.ErrorIs(t, CanSetPricing(employee), errs.ErrForbidden)
	assert.ErrorIs(t, RequireManager(employee), errs.ErrForbidden)
}
