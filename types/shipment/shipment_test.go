package shipment

import (
	"encoding/json"
	"testing"
	"time"

	"logistics-requests/errs"
	shipmentModel "logistics-requests/models/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateRequest {
	return CreateRequest{
		Type:            "local",
		ClientName:      "Aigerim",
		ClientPhone:     "8 701 123 45 67",
		PickupAddress:   "Kabanbay batyr 1",
		DeliveryAddress: "Mangilik El 20",
		CargoName:       "Boxes",
	}
}

func TestCreateRequestAcceptsTypeAliasAndNormalizesPhone(t *testing.T) {
	req := validCreate()
	require.NoError(t, req.Validate())

	in := req.ToInput()
	assert.Equal(t, shipmentModel.CategoryAstana, in.Category)
	assert.Equal(t, "+77011234567", in.ClientPhone)
	assert.Equal(t, "", in.RecipientPhone)
}

func TestCreateRequestValidation(t *testing.T) {
	req := validCreate()
	req.Type = ""
	assert.ErrorIs(t, req.Validate(), errs.ErrValidation, "category is required")

	req = validCreate()
	req.ClientPhone = "12345"
	assert.ErrorIs(t, req.Validate(), errs.ErrValidation)

	req = validCreate()
	neg := decimal.NewFromInt(-5)
	req.PriceKzt = &neg
	assert.EqualError(t, req.Validate(), "price_kzt must not be negative")
}

func TestTrackRequestNeedsNumberOrPhone(t *testing.T) {
	assert.ErrorIs(t, (&TrackRequest{}).Validate(), errs.ErrValidation)
	assert.NoError(t, (&TrackRequest{RequestNumber: "AST-2025-001"}).Validate())
	assert.NoError(t, (&TrackRequest{Phone: "+77011234567"}).Validate())
}

func TestTrackingViewIsRedacted(t *testing.T) {
	price := decimal.NewFromInt(9000)
	owner := uint(4)
	r := &shipmentModel.ShipmentRequest{
		RequestNumber:   "INT-2025-003",
		Status:          shipmentModel.StatusInTransit,
		Category:        shipmentModel.CategoryIntercity,
		ClientPhone:     "+77011234567",
		PickupAddress:   "secret street",
		CargoName:       "Piano",
		FromCity:        "Astana",
		ToCity:          "Almaty",
		PriceKzt:        &price,
		UserID:          &owner,
		CreatedAt:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		DeliveryAddress: "another secret",
	}
	raw, err := json.Marshal(NewTrackingView(r))
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"status_label":"В пути"`)
	for _, leaked := range []string{"+77011234567", "secret street", "another secret", "9000", "user_id"} {
		assert.NotContains(t, body, leaked)
	}
}

func TestUpdateRequestParsesAliases(t *testing.T) {
	status := "transit"
	phone := "87017770000"
	req := UpdateRequest{Status: &status, ClientPhone: &phone}
	require.NoError(t, req.Validate())

	in := req.ToInput()
	assert.Equal(t, shipmentModel.StatusInTransit, *in.Status)
	assert.Equal(t, "+77017770000", *in.ClientPhone)
	assert.Nil(t, in.Category)
}
