package shipment

import "time"

// RequestCounter is the last sequence issued for one (prefix, year) partition.
type RequestCounter struct {
	Prefix    string    `gorm:"type:varchar(8);primaryKey" json:"prefix"`
	Year      int       `gorm:"primaryKey" json:"year"`
	LastSeq   int       `gorm:"not null;default:0" json:"last_seq"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RequestCounter) TableName() string {
	return "request_counters"
}
