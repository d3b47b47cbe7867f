package log

import (
	"time"
)

// RequestLog represents an HTTP request/response log entry.
type RequestLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method          string    `gorm:"type:varchar(10);not null" json:"method"`
	URL             string    `gorm:"type:text;not null" json:"url"`
	RequestBody     string    `gorm:"type:text" json:"request_body"`
	RequestHeaders  string    `gorm:"type:text" json:"request_headers"`
	ResponseBody    string    `gorm:"type:text" json:"response_body"`
	ResponseHeaders string    `gorm:"type:text" json:"response_headers"`
	StatusCode      int       `gorm:"type:int" json:"status_code"`
	LatencyMs       int64     `gorm:"type:bigint" json:"latency_ms"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the RequestLog model
func (RequestLog) TableName() string {
	return "request_logs"
}
