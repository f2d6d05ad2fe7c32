package lifecycle

import (
	"logistics-requests/constants"
	"logistics-requests/errs"
	"logistics-requests/models/shipment"
)

var labels = map[string]map[shipment.Status]string{
	constants.LocaleRU: {
		shipment.StatusNew:        "Новая",
		shipment.StatusProcessing: "В обработке",
		shipment.StatusAssigned:   "Назначена",
		shipment.StatusInTransit:  "В пути",
		shipment.StatusDelivered:  "Доставлена",
		shipment.StatusCancelled:  "Отменена",
	},
	constants.LocaleEN: {
		shipment.StatusNew:        "New",
		shipment.StatusProcessing: "Processing",
		shipment.StatusAssigned:   "Assigned",
		shipment.StatusInTransit:  "In transit",
		shipment.StatusDelivered:  "Delivered",
		shipment.StatusCancelled:  "Cancelled",
	},
}

// rank orders the happy path; cancelled is outside it.
var rank = map[shipment.Status]int{
	shipment.StatusNew:        0,
	shipment.StatusProcessing: 1,
	shipment.StatusAssigned:   2,
	shipment.StatusInTransit:  3,
	shipment.StatusDelivered:  4,
}

func IsTerminal(s shipment.Status) bool {
	return s == shipment.StatusDelivered || s == shipment.StatusCancelled
}

// DisplayName returns the label for s in locale, falling back to Russian.
// Unknown statuses are returned as is.
func DisplayName(s shipment.Status, locale string) string {
	set, ok := labels[locale]
	if !ok {
		set = labels[constants.LocaleRU]
	}
	if label, ok := set[s]; ok {
		return label
	}
	return string(s)
}

// CanTransition allows staying put, moving forward along
// new → processing → assigned → in_transit → delivered (skips included),
// and cancelling any request that is not finished yet.
func CanTransition(from, to shipment.Status) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	if IsTerminal(from) {
		return false
	}
	if to == shipment.StatusCancelled {
		return true
	}
	return rank[to] > rank[from]
}

// ValidateTransition is CanTransition as an error.
func ValidateTransition(from, to shipment.Status) error {
	if !to.IsValid() {
		return errs.Validation("invalid status %q", string(to))
	}
	if !CanTransition(from, to) {
		return errs.Transition(string(from), string(to))
	}
	return nil
}

// NextStatuses lists where a request in s may go.
func NextStatuses(s shipment.Status) []shipment.Status {
	var out []shipment.Status
	for _, to := range shipment.GetAllStatuses() {
		if to != s && CanTransition(s, to) {
			out = append(out, to)
		}
	}
	return out
}
