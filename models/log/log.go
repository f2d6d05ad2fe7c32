package log

import (
	"time"
)

// Log is an audited API call.
type Log struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID   string    `gorm:"type:varchar(64);index" json:"request_id"`
	Method      string    `gorm:"type:varchar(10);not null" json:"method"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	IP          string    `gorm:"type:varchar(64)" json:"ip"`
	RequestBody string    `gorm:"type:text" json:"request_body"`
	StatusCode  int       `gorm:"type:int" json:"status_code"`
	DurationMs  int64     `gorm:"type:bigint" json:"duration_ms"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string {
	return "logs"
}
