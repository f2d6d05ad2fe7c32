package lifecycle

import (
	"logistics-requests/models/shipment"

	"github.com/shopspring/decimal"
)

// Stats is the dashboard/analytics summary of a set of requests.
type Stats struct {
	Total         int64                       `json:"total"`
	ByStatus      map[shipment.Status]int64   `json:"by_status"`
	ByCategory    map[shipment.Category]int64 `json:"by_category"`
	RevenueSum    decimal.Decimal             `json:"revenue_sum"`
	PricedCount   int64                       `json:"priced_count"`
	AvgOrderValue decimal.Decimal             `json:"avg_order_value"`
}

func emptyStats() Stats {
	st := Stats{
		ByStatus:      make(map[shipment.Status]int64),
		ByCategory:    make(map[shipment.Category]int64),
		RevenueSum:    decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	for _, s := range shipment.GetAllStatuses() {
		st.ByStatus[s] = 0
	}
	for _, c := range shipment.GetAllCategories() {
		st.ByCategory[c] = 0
	}
	return st
}

// Aggregate reduces requests into Stats. Requests without a price count
// toward totals but are left out of revenue and of the average's denominator.
func Aggregate(requests []shipment.ShipmentRequest) Stats {
	st := emptyStats()
	for i := range requests {
		r := &requests[i]
		st.Total++
		st.ByStatus[r.Status]++
		st.ByCategory[r.Category]++
		if r.PriceKzt != nil {
			st.RevenueSum = st.RevenueSum.Add(*r.PriceKzt)
			st.PricedCount++
		}
	}
	if st.PricedCount > 0 {
		st.AvgOrderValue = st.RevenueSum.Div(decimal.NewFromInt(st.PricedCount)).Round(2)
	}
	return st
}
