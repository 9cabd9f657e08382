package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/grutapig/twitterlookup/twitterapi"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LoggingService struct {
	db *gorm.DB
}

// NewLoggingService opens (or creates) the request audit database
func NewLoggingService(dbPath string) (*LoggingService, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to logging database: %w", err)
	}

	service := &LoggingService{
		db: db,
	}

	if err := service.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run logging migrations: %w", err)
	}

	return service, nil
}

func (s *LoggingService) runMigrations() error {
	return s.db.AutoMigrate(
		&RequestLogModel{},
		&NotificationLogModel{},
	)
}

// Request Logging Methods

// RecordRequest stores one finished lookup. It satisfies twitterapi.RequestRecorder.
func (s *LoggingService) RecordRequest(ctx context.Context, record twitterapi.RequestRecord) error {
	requestLog := RequestLogModel{
		RequestUUID: uuid.NewString(),
		Endpoint:    record.Endpoint,
		ResourceID:  record.ResourceID,
		URL:         record.URL,
		StatusCode:  record.StatusCode,
		DurationMS:  record.Duration.Milliseconds(),
		IsSuccess:   record.Err == nil,
		RequestedAt: record.StartedAt,
	}
	if record.Err != nil {
		requestLog.ErrorMessage = record.Err.Error()
	}

	return s.db.WithContext(ctx).Create(&requestLog).Error
}

// GetRecentRequests returns the newest lookups first
func (s *LoggingService) GetRecentRequests(limit int) ([]RequestLogModel, error) {
	var requests []RequestLogModel
	err := s.db.Order("requested_at DESC").Order("id DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

// GetRequestsByResource returns every lookup of one tweet or user id
func (s *LoggingService) GetRequestsByResource(resourceID string) ([]RequestLogModel, error) {
	var requests []RequestLogModel
	err := s.db.Where("resource_id = ?", resourceID).Order("requested_at ASC").Find(&requests).Error
	return requests, err
}

// GetRequestStats summarizes lookups of the last N days
func (s *LoggingService) GetRequestStats(days int) (map[string]interface{}, error) {
	startDate := time.Now().AddDate(0, 0, -days)

	var totalRequests int64
	var successfulRequests int64
	var avgDuration float64

	err := s.db.Model(&RequestLogModel{}).
		Where("requested_at >= ?", startDate).
		Count(&totalRequests).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&RequestLogModel{}).
		Where("requested_at >= ? AND is_success = ?", startDate, true).
		Count(&successfulRequests).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&RequestLogModel{}).
		Where("requested_at >= ?", startDate).
		Select("COALESCE(AVG(duration_ms), 0)").
		Scan(&avgDuration).Error
	if err != nil {
		return nil, err
	}

	successRate := 0.0
	if totalRequests > 0 {
		successRate = float64(successfulRequests) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"total_requests":      totalRequests,
		"successful_requests": successfulRequests,
		"failed_requests":     totalRequests - successfulRequests,
		"success_rate":        successRate,
		"avg_duration_ms":     avgDuration,
	}, nil
}

// Notification Logging Methods

func (s *LoggingService) LogNotification(resourceType, resourceID string, chatID int64, sendErr error) error {
	notificationLog := NotificationLogModel{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ChatID:       chatID,
		IsSuccess:    sendErr == nil,
		SentAt:       time.Now(),
	}
	if sendErr != nil {
		notificationLog.ErrorMessage = sendErr.Error()
	}
	return s.db.Create(&notificationLog).Error
}

func (s *LoggingService) GetNotificationsByResource(resourceID string) ([]NotificationLogModel, error) {
	var notifications []NotificationLogModel
	err := s.db.Where("resource_id = ?", resourceID).Order("sent_at ASC").Find(&notifications).Error
	return notifications, err
}

// Cleanup Methods

// CleanupOldLogs deletes records older than the given number of days
func (s *LoggingService) CleanupOldLogs(days int) error {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	slog.Info("cleaning up logging database", "days", days, "before", cutoffDate.Format("2006-01-02"))

	result := s.db.Where("created_at < ?", cutoffDate).Delete(&RequestLogModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup request logs: %w", result.Error)
	}
	slog.Info("cleaned up request log records", "count", result.RowsAffected)

	result = s.db.Where("created_at < ?", cutoffDate).Delete(&NotificationLogModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup notification logs: %w", result.Error)
	}
	slog.Info("cleaned up notification log records", "count", result.RowsAffected)

	return nil
}

// VacuumDatabase runs VACUUM command to reclaim space
func (s *LoggingService) VacuumDatabase() error {
	slog.Debug("running VACUUM on logging database")
	err := s.db.Exec("VACUUM").Error
	if err != nil {
		return fmt.Errorf("failed to vacuum logging database: %w", err)
	}
	return nil
}

// GetDatabaseStats returns database statistics
func (s *LoggingService) GetDatabaseStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var requestCount int64
	if err := s.db.Model(&RequestLogModel{}).Count(&requestCount).Error; err != nil {
		return nil, err
	}
	stats["request_logs"] = requestCount

	var notificationCount int64
	if err := s.db.Model(&NotificationLogModel{}).Count(&notificationCount).Error; err != nil {
		return nil, err
	}
	stats["notification_logs"] = notificationCount

	var oldestRequest RequestLogModel
	s.db.Order("created_at ASC").Limit(1).Find(&oldestRequest)
	if oldestRequest.ID != 0 {
		stats["oldest_record"] = oldestRequest.CreatedAt.Format("2006-01-02 15:04:05")
	}

	var newestRequest RequestLogModel
	s.db.Order("created_at DESC").Limit(1).Find(&newestRequest)
	if newestRequest.ID != 0 {
		stats["newest_record"] = newestRequest.CreatedAt.Format("2006-01-02 15:04:05")
	}

	return stats, nil
}

// Close closes the logging database connection
func (s *LoggingService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
