package analytics

import (
	"sort"

	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/lifecycle"

	"github.com/jinzhu/now"
)

const monthLayout = "2006-01"

// MonthRow is the aggregate of requests created in one calendar month.
type MonthRow struct {
	Month string `json:"month"`
	lifecycle.Stats
}

// Report is a per-month breakdown plus the total over the whole window.
type Report struct {
	Window Window          `json:"window"`
	Months []MonthRow      `json:"months"`
	Total  lifecycle.Stats `json:"total"`
}

// BuildReport groups rows by creation month, oldest first.
func BuildReport(w Window, rows []shipmentModel.ShipmentRequest) Report {
	buckets := make(map[string][]shipmentModel.ShipmentRequest)
	for _, r := range rows {
		key := now.With(r.CreatedAt).BeginningOfMonth().Format(monthLayout)
		buckets[key] = append(buckets[key], r)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	months := make([]MonthRow, 0, len(keys))
	for _, k := range keys {
		months = append(months, MonthRow{Month: k, Stats: lifecycle.Aggregate(buckets[k])})
	}
	return Report{Window: w, Months: months, Total: lifecycle.Aggregate(rows)}
}
