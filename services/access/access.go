package access

import (
	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/models/shipment"

	"gorm.io/gorm"
)

// Actor is the authenticated caller as carried through request context.
type Actor struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (a Actor) IsManager() bool {
	return a.Role == constants.RoleManager
}

// CanView allows managers everything and employees their own requests.
func CanView(a Actor, r *shipment.ShipmentRequest) error {
	if a.IsManager() || r.IsOwnedBy(a.UserID) {
		return nil
	}
	return errs.Forbidden("you do not have access to this request")
}

// CanModify has the same rule as CanView.
func CanModify(a Actor, r *shipment.ShipmentRequest) error {
	if a.IsManager() || r.IsOwnedBy(a.UserID) {
		return nil
	}
	return errs.Forbidden("you can only modify your own requests")
}

// CanDelete is manager-only regardless of ownership.
func CanDelete(a Actor, _ *shipment.ShipmentRequest) error {
	if a.IsManager() {
		return nil
	}
	return errs.Forbidden("only managers can delete requests")
}

// CanSetPricing guards price_kzt, price_notes and transport_info.
func CanSetPricing(a Actor) error {
	if a.IsManager() {
		return nil
	}
	return errs.Forbidden("only managers can set pricing and transport")
}

func RequireManager(a Actor) error {
	if a.IsManager() {
		return nil
	}
	return errs.Forbidden("manager role required")
}

// Scope restricts a shipment_requests query to what a may see.
func Scope(db *gorm.DB, a Actor) *gorm.DB {
	if a.IsManager() {
		return db
	}
	return db.Where("shipment_requests.user_id = ?", a.UserID)
}
