package shipment

import "strings"

type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusAssigned   Status = "assigned"
	StatusInTransit  Status = "in_transit"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus accepts the canonical values plus the "transit" spelling.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "transit" {
		s = StatusInTransit
	}
	return s, s.IsValid()
}

// GetAllStatuses returns statuses in lifecycle order.
func GetAllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusProcessing,
		StatusAssigned,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}

type Category string

const (
	CategoryAstana    Category = "astana"
	CategoryIntercity Category = "intercity"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return c == CategoryAstana || c == CategoryIntercity
}

// ParseCategory accepts "local" as the older name for astana.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "local" {
		c = CategoryAstana
	}
	return c, c.IsValid()
}

func GetAllCategories() []Category {
	return []Category{CategoryAstana, CategoryIntercity}
}
