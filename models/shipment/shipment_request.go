package shipment

import (
	"time"

	"logistics-requests/models/user"

	"github.com/shopspring/decimal"
)

// ShipmentRequest is a single cargo delivery job from intake to delivery or cancellation.
type ShipmentRequest struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestNumber string   `gorm:"type:varchar(32);not null;uniqueIndex" json:"request_number"`
	Category      Category `gorm:"type:varchar(20);not null;index" json:"category"`
	Status        Status   `gorm:"type:varchar(20);not null;default:new;index" json:"status"`

	UserID *uint      `gorm:"index" json:"user_id"`
	User   *user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`

	ClientName     string `gorm:"type:varchar(255);not null" json:"client_name"`
	ClientPhone    string `gorm:"type:varchar(20);not null;index" json:"client_phone"`
	RecipientName  string `gorm:"type:varchar(255)" json:"recipient_name"`
	RecipientPhone string `gorm:"type:varchar(20);index" json:"recipient_phone"`

	PickupAddress   string `gorm:"type:text;not null" json:"pickup_address"`
	DeliveryAddress string `gorm:"type:text;not null" json:"delivery_address"`
	FromCity        string `gorm:"type:varchar(120)" json:"from_city"`
	ToCity          string `gorm:"type:varchar(120)" json:"to_city"`

	CargoName        string           `gorm:"type:varchar(255);not null" json:"cargo_name"`
	CargoWeightKg    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"cargo_weight_kg"`
	CargoVolumeM3    *decimal.Decimal `gorm:"type:numeric(10,3)" json:"cargo_volume_m3"`
	CargoDescription string           `gorm:"type:text" json:"cargo_description"`

	PriceKzt      *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price_kzt"`
	PriceNotes    string           `gorm:"type:text" json:"price_notes"`
	TransportInfo string           `gorm:"type:text" json:"transport_info"`
	Comment       string           `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShipmentRequest) TableName() string {
	return "shipment_requests"
}

// IsOwnedBy reports whether userID created the request.
func (r *ShipmentRequest) IsOwnedBy(userID uint) bool {
	return r.UserID != nil && *r.UserID == userID
}
