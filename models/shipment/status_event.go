package shipment

import (
	"time"
)

// StatusEvent records one status change of a shipment request.
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ShipmentRequestID uint `gorm:"not null;index" json:"shipment_request_id"`

	// FromStatus is empty for the creation event.
	FromStatus Status    `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus   Status    `gorm:"type:varchar(20);not null" json:"to_status"`
	ChangedBy  *uint     `gorm:"index" json:"changed_by"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (StatusEvent) TableName() string {
	return "shipment_status_events"
}
