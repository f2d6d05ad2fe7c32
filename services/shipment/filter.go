package shipment

import (
	"strings"
	"time"

	shipmentModel "logistics-requests/models/shipment"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range.
	MaxPage = 100000
)

// Filter narrows list, stats and analytics queries.
type Filter struct {
	Status   *shipmentModel.Status
	Category *shipmentModel.Category
	// Search is matched case-insensitively against number, cargo name and addresses.
	Search string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Normalize clamps paging to sane bounds.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	f.Search = strings.TrimSpace(f.Search)
}

func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a substring ILIKE with wildcards escaped.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
