package main

import (
	"fmt"
	"log/slog"
)

// CleanupService trims the audit database: delete, then VACUUM, then report.
type CleanupService struct {
	loggingService *LoggingService
}

func NewCleanupService(loggingService *LoggingService) *CleanupService {
	return &CleanupService{
		loggingService: loggingService,
	}
}

func (cs *CleanupService) Run(days int) (map[string]interface{}, error) {
	if days < 0 {
		return nil, fmt.Errorf("days should not be negative: %d", days)
	}
	slog.Info("starting cleanup of old log records", "days", days)

	if err := cs.loggingService.CleanupOldLogs(days); err != nil {
		return nil, fmt.Errorf("error during cleanup: %w", err)
	}

	if err := cs.loggingService.VacuumDatabase(); err != nil {
		return nil, fmt.Errorf("error during VACUUM: %w", err)
	}

	stats, err := cs.loggingService.GetDatabaseStats()
	if err != nil {
		return nil, fmt.Errorf("error getting database stats: %w", err)
	}

	slog.Info("cleanup completed", "stats", stats)
	return stats, nil
}
