package main

import (
	"time"
)

// RequestLogModel is one Twitter API lookup. Response bodies are never stored.
type RequestLogModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestUUID  string    `gorm:"column:request_uuid;uniqueIndex" json:"request_uuid"`
	Endpoint     string    `gorm:"column:endpoint;index" json:"endpoint"`
	ResourceID   string    `gorm:"column:resource_id;index" json:"resource_id"`
	URL          string    `gorm:"column:url" json:"url"`
	StatusCode   int       `gorm:"column:status_code;index" json:"status_code"`
	DurationMS   int64     `gorm:"column:duration_ms" json:"duration_ms"`
	IsSuccess    bool      `gorm:"column:is_success" json:"is_success"`
	ErrorMessage string    `gorm:"column:error_message" json:"error_message,omitempty"`
	RequestedAt  time.Time `gorm:"column:requested_at;index" json:"requested_at"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (RequestLogModel) TableName() string {
	return "request_logs"
}

// NotificationLogModel tracks lookups forwarded to Telegram
type NotificationLogModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ResourceType string    `gorm:"column:resource_type;index" json:"resource_type"` // "tweet", "user"
	ResourceID   string    `gorm:"column:resource_id;index" json:"resource_id"`
	ChatID       int64     `gorm:"column:chat_id;index" json:"chat_id"`
	IsSuccess    bool      `gorm:"column:is_success" json:"is_success"`
	ErrorMessage string    `gorm:"column:error_message" json:"error_message,omitempty"`
	SentAt       time.Time `gorm:"column:sent_at;index" json:"sent_at"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

const (
	RESOURCE_TYPE_TWEET = "tweet"
	RESOURCE_TYPE_USER  = "user"
)
