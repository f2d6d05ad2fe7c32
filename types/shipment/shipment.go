package shipment

import (
	"time"

	"logistics-requests/constants"
	"logistics-requests/errs"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/lifecycle"
	shipmentService "logistics-requests/services/shipment"
	"logistics-requests/utils"

	"github.com/shopspring/decimal"
)

// CreateRequest is the body of both the authenticated and the public intake.
// "type" is accepted as an older name for category.
type CreateRequest struct {
	Category         string           `json:"category" validate:"required_without=Type,omitempty,category"`
	Type             string           `json:"type" validate:"omitempty,category"`
	ClientName       string           `json:"client_name" validate:"required,max=255"`
	ClientPhone      string           `json:"client_phone" validate:"required,kzphone"`
	RecipientName    string           `json:"recipient_name" validate:"omitempty,max=255"`
	RecipientPhone   string           `json:"recipient_phone" validate:"omitempty,kzphone"`
	PickupAddress    string           `json:"pickup_address" validate:"required,max=500"`
	DeliveryAddress  string           `json:"delivery_address" validate:"required,max=500"`
	FromCity         string           `json:"from_city" validate:"omitempty,max=100"`
	ToCity           string           `json:"to_city" validate:"omitempty,max=100"`
	CargoName        string           `json:"cargo_name" validate:"required,max=255"`
	CargoWeightKg    *decimal.Decimal `json:"cargo_weight_kg"`
	CargoVolumeM3    *decimal.Decimal `json:"cargo_volume_m3"`
	CargoDescription string           `json:"cargo_description" validate:"omitempty,max=2000"`
	Comment          string           `json:"comment" validate:"omitempty,max=2000"`
	PriceKzt         *decimal.Decimal `json:"price_kzt"`
	PriceNotes       string           `json:"price_notes" validate:"omitempty,max=2000"`
	TransportInfo    string           `json:"transport_info" validate:"omitempty,max=2000"`
}

func (req *CreateRequest) Validate() error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	for name, v := range map[string]*decimal.Decimal{
		"cargo_weight_kg": req.CargoWeightKg,
		"cargo_volume_m3": req.CargoVolumeM3,
		"price_kzt":       req.PriceKzt,
	} {
		if v != nil && v.IsNegative() {
			return errs.Validation("%s must not be negative", name)
		}
	}
	return nil
}

func (req *CreateRequest) category() shipmentModel.Category {
	raw := req.Category
	if raw == "" {
		raw = req.Type
	}
	c, _ := shipmentModel.ParseCategory(raw)
	return c
}

// ToInput must be called after Validate.
func (req *CreateRequest) ToInput() shipmentService.CreateInput {
	category := req.category()
	clientPhone, _ := utils.NormalizePhone(req.ClientPhone)
	recipientPhone, _ := utils.NormalizePhone(req.RecipientPhone)

	return shipmentService.CreateInput{
		Category:         category,
		ClientName:       req.ClientName,
		ClientPhone:      clientPhone,
		RecipientName:    req.RecipientName,
		RecipientPhone:   recipientPhone,
		PickupAddress:    req.PickupAddress,
		DeliveryAddress:  req.DeliveryAddress,
		FromCity:         req.FromCity,
		ToCity:           req.ToCity,
		CargoName:        req.CargoName,
		CargoWeightKg:    req.CargoWeightKg,
		CargoVolumeM3:    req.CargoVolumeM3,
		CargoDescription: req.CargoDescription,
		Comment:          req.Comment,
		PriceKzt:         req.PriceKzt,
		PriceNotes:       req.PriceNotes,
		TransportInfo:    req.TransportInfo,
	}
}

// UpdateRequest is a partial update; absent fields keep their value.
type UpdateRequest struct {
	Category         *string          `json:"category" validate:"omitempty,category"`
	Status           *string          `json:"status" validate:"omitempty,status"`
	StatusComment    string           `json:"status_comment" validate:"omitempty,max=2000"`
	PriceKzt         *decimal.Decimal `json:"price_kzt"`
	ClearPrice       bool             `json:"clear_price"`
	PriceNotes       *string          `json:"price_notes" validate:"omitempty,max=2000"`
	TransportInfo    *string          `json:"transport_info" validate:"omitempty,max=2000"`
	ClientName       *string          `json:"client_name" validate:"omitempty,min=1,max=255"`
	ClientPhone      *string          `json:"client_phone" validate:"omitempty,kzphone"`
	RecipientName    *string          `json:"recipient_name" validate:"omitempty,max=255"`
	RecipientPhone   *string          `json:"recipient_phone" validate:"omitempty,kzphone"`
	PickupAddress    *string          `json:"pickup_address" validate:"omitempty,min=1,max=500"`
	DeliveryAddress  *string          `json:"delivery_address" validate:"omitempty,min=1,max=500"`
	FromCity         *string          `json:"from_city" validate:"omitempty,max=100"`
	ToCity           *string          `json:"to_city" validate:"omitempty,max=100"`
	CargoName        *string          `json:"cargo_name" validate:"omitempty,min=1,max=255"`
	CargoWeightKg    *decimal.Decimal `json:"cargo_weight_kg"`
	CargoVolumeM3    *decimal.Decimal `json:"cargo_volume_m3"`
	CargoDescription *string          `json:"cargo_description" validate:"omitempty,max=2000"`
	Comment          *string          `json:"comment" validate:"omitempty,max=2000"`
}

func (req *UpdateRequest) Validate() error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}
	if req.PriceKzt != nil && req.PriceKzt.IsNegative() {
		return errs.Validation("price_kzt must not be negative")
	}
	if req.CargoWeightKg != nil && req.CargoWeightKg.IsNegative() {
		return errs.Validation("cargo_weight_kg must not be negative")
	}
	if req.CargoVolumeM3 != nil && req.CargoVolumeM3.IsNegative() {
		return errs.Validation("cargo_volume_m3 must not be negative")
	}
	return nil
}

func (req *UpdateRequest) ToInput() shipmentService.UpdateInput {
	in := shipmentService.UpdateInput{
		StatusComment:    req.StatusComment,
		PriceKzt:         req.PriceKzt,
		ClearPrice:       req.ClearPrice,
		PriceNotes:       req.PriceNotes,
		TransportInfo:    req.TransportInfo,
		ClientName:       req.ClientName,
		RecipientName:    req.RecipientName,
		PickupAddress:    req.PickupAddress,
		DeliveryAddress:  req.DeliveryAddress,
		FromCity:         req.FromCity,
		ToCity:           req.ToCity,
		CargoName:        req.CargoName,
		CargoWeightKg:    req.CargoWeightKg,
		CargoVolumeM3:    req.CargoVolumeM3,
		CargoDescription: req.CargoDescription,
		Comment:          req.Comment,
	}
	if req.Category != nil {
		c, _ := shipmentModel.ParseCategory(*req.Category)
		in.Category = &c
	}
	if req.Status != nil {
		s, _ := shipmentModel.ParseStatus(*req.Status)
		in.Status = &s
	}
	if req.ClientPhone != nil {
		p, _ := utils.NormalizePhone(*req.ClientPhone)
		in.ClientPhone = &p
	}
	if req.RecipientPhone != nil {
		p, _ := utils.NormalizePhone(*req.RecipientPhone)
		in.RecipientPhone = &p
	}
	return in
}

// TrackRequest looks a shipment up by number or by phone.
type TrackRequest struct {
	RequestNumber string `json:"request_number" validate:"required_without=Phone,omitempty,max=32"`
	Phone         string `json:"phone" validate:"required_without=RequestNumber,omitempty,kzphone"`
}

func (req *TrackRequest) Validate() error {
	return utils.ValidateStruct(req)
}

// TrackingView is what unauthenticated callers see of a request.
type TrackingView struct {
	RequestNumber string    `json:"request_number"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	Category      string    `json:"category"`
	CargoName     string    `json:"cargo_name"`
	FromCity      string    `json:"from_city,omitempty"`
	ToCity        string    `json:"to_city,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewTrackingView(r *shipmentModel.ShipmentRequest) TrackingView {
	return TrackingView{
		RequestNumber: r.RequestNumber,
		Status:        string(r.Status),
		StatusLabel:   lifecycle.DisplayName(r.Status, constants.LocaleRU),
		Category:      string(r.Category),
		CargoName:     r.CargoName,
		FromCity:      r.FromCity,
		ToCity:        r.ToCity,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// RequestView is the authenticated representation with a display label.
type RequestView struct {
	*shipmentModel.ShipmentRequest
	StatusLabel  string   `json:"status_label"`
	NextStatuses []string `json:"next_statuses"`
}

func NewRequestView(r *shipmentModel.ShipmentRequest, locale string) RequestView {
	next := lifecycle.NextStatuses(r.Status)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}
	return RequestView{
		ShipmentRequest: r,
		StatusLabel:     lifecycle.DisplayName(r.Status, locale),
		NextStatuses:    names,
	}
}

// StatusEventView is a history row with labels.
type StatusEventView struct {
	shipmentModel.StatusEvent
	FromLabel string `json:"from_label,omitempty"`
	ToLabel   string `json:"to_label"`
}

func NewStatusEventViews(events []shipmentModel.StatusEvent, locale string) []StatusEventView {
	out := make([]StatusEventView, 0, len(events))
	for _, ev := range events {
		v := StatusEventView{StatusEvent: ev, ToLabel: lifecycle.DisplayName(ev.ToStatus, locale)}
		if ev.FromStatus != "" {
			v.FromLabel = lifecycle.DisplayName(ev.FromStatus, locale)
		}
		out = append(out, v)
	}
	return out
}
